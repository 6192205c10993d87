package game

import (
	"testing"
)

// TestNewAudioManagerNilContext 测试无音频上下文时的降级模式
func TestNewAudioManagerNilContext(t *testing.T) {
	am := NewAudioManager(nil, nil)
	if am == nil {
		t.Fatal("NewAudioManager 返回了 nil")
	}

	// 降级模式下播放应该静默失败，不 panic
	if am.PlaySound(SoundClick) {
		t.Error("无音频上下文时 PlaySound 应该返回 false")
	}
}

// TestPlayWinChimeDebounce 测试胜利钟声的去重窗口
// 窗口期内的重复触发必须是空操作，与是否真的出声无关
func TestPlayWinChimeDebounce(t *testing.T) {
	am := NewAudioManager(nil, nil)

	if !am.PlayWinChime() {
		t.Fatal("首次触发应该被接受")
	}

	if am.PlayWinChime() {
		t.Error("窗口期内的立即重复触发应该被拒绝")
	}

	// 推进 0.5 秒，仍在窗口内
	am.Update(0.5)
	if am.PlayWinChime() {
		t.Error("0.5 秒后仍在窗口内，应该被拒绝")
	}

	// 再推进 0.6 秒（累计 1.1 秒），超出窗口
	am.Update(0.6)
	if !am.PlayWinChime() {
		t.Error("超出窗口后的触发应该被接受")
	}

	// 新一轮窗口立即生效
	if am.PlayWinChime() {
		t.Error("新触发后窗口期内的重复应该被拒绝")
	}
}

// TestPlayWinChimeFirstTrigger 测试时钟为零时的首次触发
// 首次触发不应该被尚未发生过的钟声"去重"掉
func TestPlayWinChimeFirstTrigger(t *testing.T) {
	am := NewAudioManager(nil, nil)

	// 不推进时钟，now == 0
	if !am.PlayWinChime() {
		t.Error("时钟为零时的首次触发应该被接受")
	}
}

// TestGetSoundVolumeDefault 测试无设置管理器时的默认音量
func TestGetSoundVolumeDefault(t *testing.T) {
	am := NewAudioManager(nil, nil)

	if got := am.GetSoundVolume(); got != 0.8 {
		t.Errorf("默认音量 = %v, 期望 0.8", got)
	}
}

// TestAudioManagerUsesSettingsVolume 测试音量从设置管理器读取
func TestAudioManagerUsesSettingsVolume(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetSoundVolume(0.3)

	am := NewAudioManager(nil, sm)
	if got := am.GetSoundVolume(); got != 0.3 {
		t.Errorf("音量 = %v, 期望 0.3", got)
	}

	am.SetSoundVolume(0.9)
	if got := sm.GetSettings().SoundVolume; got != 0.9 {
		t.Errorf("SetSoundVolume 后设置中的音量 = %v, 期望 0.9", got)
	}
}

// TestSoundBankAllSounds 测试音效库包含全部音效
func TestSoundBankAllSounds(t *testing.T) {
	sb := NewSoundBank(48000)

	sounds := []string{SoundSpin, SoundShatter, SoundWin, SoundPop, SoundClick}
	for _, id := range sounds {
		pcm := sb.PCM(id)
		if pcm == nil {
			t.Errorf("音效 %s 缺失", id)
			continue
		}
		if len(pcm) == 0 {
			t.Errorf("音效 %s 的 PCM 数据为空", id)
		}
		// 立体声 16 位：每个采样 4 字节
		if len(pcm)%4 != 0 {
			t.Errorf("音效 %s 的 PCM 长度 %d 不是 4 的倍数", id, len(pcm))
		}
	}
}

// TestSoundBankUnknownSound 测试未知音效ID
func TestSoundBankUnknownSound(t *testing.T) {
	sb := NewSoundBank(48000)
	if sb.PCM("nonexistent") != nil {
		t.Error("未知音效ID应该返回 nil")
	}
}

// TestSoundBankDeterministic 测试合成结果的确定性
// 噪声使用固定种子，重复构建必须得到完全相同的字节
func TestSoundBankDeterministic(t *testing.T) {
	a := NewSoundBank(48000)
	b := NewSoundBank(48000)

	for _, id := range []string{SoundShatter, SoundSpin, SoundWin} {
		pcmA := a.PCM(id)
		pcmB := b.PCM(id)
		if len(pcmA) != len(pcmB) {
			t.Fatalf("音效 %s 两次合成长度不同: %d vs %d", id, len(pcmA), len(pcmB))
		}
		for i := range pcmA {
			if pcmA[i] != pcmB[i] {
				t.Fatalf("音效 %s 在字节 %d 处不一致", id, i)
			}
		}
	}
}

// TestWinChimeDuration 测试琶音的总时长
// 最后一个音在 0.24 秒处开始，持续 0.5 秒
func TestWinChimeDuration(t *testing.T) {
	sb := NewSoundBank(48000)
	pcm := sb.PCM(SoundWin)

	wantSamples := int(0.24*48000) + int(0.5*48000)
	if got := len(pcm) / 4; got != wantSamples {
		t.Errorf("琶音采样数 = %d, 期望 %d", got, wantSamples)
	}
}
