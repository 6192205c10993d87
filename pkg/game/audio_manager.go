package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/luckypick/pkg/config"
)

// 音效ID
const (
	// SoundSpin 旋转开始的呼啸声
	SoundSpin = "spin"

	// SoundShatter 卡片爆裂的碎裂声
	SoundShatter = "shatter"

	// SoundWin 胜利钟声（三音琶音），带去重窗口
	SoundWin = "win"

	// SoundPop 彩带爆开的轻响
	SoundPop = "pop"

	// SoundClick 按钮点击声
	SoundClick = "click"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理所有音效的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 胜利钟声的去重：窗口期内的重复触发是空操作
//
// 设计原则：
//   - 中心化管理：所有音频播放都通过 AudioManager
//   - 与设置联动：自动应用 SettingsManager 中的音量设置
//   - 无资源文件：全部音效由 SoundBank 在启动时合成
//   - 降级容错：audioContext 为 nil 时（无声环境/无头测试）静默跳过，流程不受影响
type AudioManager struct {
	audioContext    *audio.Context           // ebiten 音频上下文，可为 nil（降级模式）
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
	bank            *SoundBank               // 合成音效库

	// 去重时钟：由场景每帧 Update(dt) 推进，不依赖挂钟
	now          float64
	lastWinChime float64
	winFired     bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（降级模式，所有播放变为空操作）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}

	if ctx == nil {
		log.Printf("[AudioManager] Warning: no audio context, sounds disabled")
		return am
	}

	am.bank = NewSoundBank(ctx.SampleRate())
	return am
}

// Update 推进去重时钟
// 由场景在每帧更新时调用
func (am *AudioManager) Update(dt float64) {
	am.now += dt
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放后停止
//
// 参数：
//   - soundID: 音效ID（如 SoundClick, SoundShatter）
//
// 返回：
//   - bool: 是否实际开始播放
func (am *AudioManager) PlaySound(soundID string) bool {
	// 检查音效是否启用
	if am.settingsManager != nil {
		if !am.settingsManager.GetSettings().SoundEnabled {
			return false
		}
	}

	// 获取或创建播放器
	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	// 设置音量
	player.SetVolume(am.getSoundVolume())

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// PlayWinChime 触发胜利钟声
//
// 返回值表示触发是否被接受：去重窗口（config.WinChimeDebounce）内的
// 重复触发返回 false 且什么都不发生。接受的触发在降级模式下同样记录
// 时间戳：去重语义与是否真的出声无关。
func (am *AudioManager) PlayWinChime() bool {
	if am.winFired && am.now-am.lastWinChime < config.WinChimeDebounce {
		return false
	}
	am.winFired = true
	am.lastWinChime = am.now

	am.PlaySound(SoundWin)
	return true
}

// SetSoundVolume 设置音效音量
// 此方法会影响后续播放的所有音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}

	// 更新所有缓存的播放器
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	// 降级模式
	if am.audioContext == nil || am.bank == nil {
		return nil
	}

	// 检查缓存
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	// 从合成音效库取 PCM 数据
	pcm := am.bank.PCM(soundID)
	if pcm == nil {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	player := am.audioContext.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
