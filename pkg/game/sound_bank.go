package game

import (
	"encoding/binary"
	"math"

	"github.com/gonewx/luckypick/pkg/utils"
)

// 波形类型
const (
	waveSine = iota
	waveSquare
	waveNoise
)

// SoundBank 合成音效库
// 启动时用振荡器和包络合成全部音效，不依赖任何资源文件。
// 合成结果是 16 位小端立体声 PCM，可直接交给 audio.Context.NewPlayerFromBytes。
type SoundBank struct {
	sampleRate int
	pcm        map[string][]byte
}

// NewSoundBank 创建并合成所有音效
//
// 参数：
//   - sampleRate: 音频上下文的采样率（Hz）
func NewSoundBank(sampleRate int) *SoundBank {
	sb := &SoundBank{
		sampleRate: sampleRate,
		pcm:        make(map[string][]byte),
	}

	sb.pcm[SoundSpin] = sb.toPCM(sb.generateSpinSound())
	sb.pcm[SoundShatter] = sb.toPCM(sb.generateShatterSound())
	sb.pcm[SoundWin] = sb.toPCM(sb.generateWinChime())
	sb.pcm[SoundPop] = sb.toPCM(sb.generatePopSound())
	sb.pcm[SoundClick] = sb.toPCM(sb.generateClickSound())

	return sb
}

// PCM 获取指定音效的 PCM 数据
// 未知音效ID返回 nil
func (sb *SoundBank) PCM(soundID string) []byte {
	return sb.pcm[soundID]
}

// oscillator 生成原始波形采样（单声道，单位增益）
// 噪声使用固定种子，重复构建得到完全相同的字节
func (sb *SoundBank) oscillator(waveType int, freq, duration float64) []float64 {
	samples := int(duration * float64(sb.sampleRate))
	buf := make([]float64, samples)
	noise := utils.NewSeededRand(9001)

	phase := 0.0
	phaseInc := freq / float64(sb.sampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveNoise:
			buf[i] = noise.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// sweep 生成频率线性滑动的正弦波（单声道，单位增益）
func (sb *SoundBank) sweep(freqStart, freqEnd, duration float64) []float64 {
	samples := int(duration * float64(sb.sampleRate))
	buf := make([]float64, samples)

	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		freq := freqStart + (freqEnd-freqStart)*t
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += freq / float64(sb.sampleRate)
	}
	return buf
}

// applyEnvelope 原地应用起音/释放包络
func (sb *SoundBank) applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(sb.sampleRate))
	releaseSamples := int(releaseSec * float64(sb.sampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixAt 把 src 按偏移时间叠加进 dst，必要时扩展 dst
func (sb *SoundBank) mixAt(dst, src []float64, offsetSec, scale float64) []float64 {
	offset := int(offsetSec * float64(sb.sampleRate))
	needed := offset + len(src)
	if needed > len(dst) {
		extended := make([]float64, needed)
		copy(extended, dst)
		dst = extended
	}
	for i, v := range src {
		dst[offset+i] += v * scale
	}
	return dst
}

// generateSpinSound 旋转呼啸：上滑正弦叠加少量噪声
func (sb *SoundBank) generateSpinSound() []float64 {
	buf := sb.sweep(180.0, 420.0, 0.6)
	sb.applyEnvelope(buf, 0.08, 0.35)

	noise := sb.oscillator(waveNoise, 0, 0.6)
	sb.applyEnvelope(noise, 0.15, 0.4)

	return sb.mixAt(buf, noise, 0, 0.15)
}

// generateShatterSound 卡片碎裂：快速衰减的噪声爆发
func (sb *SoundBank) generateShatterSound() []float64 {
	buf := sb.oscillator(waveNoise, 0, 0.35)
	sb.applyEnvelope(buf, 0.005, 0.3)
	return buf
}

// generateWinChime 胜利钟声：C5-E5-G5 三音琶音，每个音带一个八度泛音
func (sb *SoundBank) generateWinChime() []float64 {
	notes := []float64{523.25, 659.25, 783.99} // C5, E5, G5
	noteDuration := 0.5
	noteGap := 0.12

	var buf []float64
	for i, freq := range notes {
		fund := sb.oscillator(waveSine, freq, noteDuration)
		sb.applyEnvelope(fund, 0.01, 0.4)

		over := sb.oscillator(waveSine, freq*2, noteDuration)
		sb.applyEnvelope(over, 0.01, 0.3)

		offset := float64(i) * noteGap
		buf = sb.mixAt(buf, fund, offset, 0.7)
		buf = sb.mixAt(buf, over, offset, 0.2)
	}
	return buf
}

// generatePopSound 彩带轻响：短促的高音方波
func (sb *SoundBank) generatePopSound() []float64 {
	buf := sb.oscillator(waveSquare, 880.0, 0.08)
	sb.applyEnvelope(buf, 0.002, 0.06)
	return buf
}

// generateClickSound 按钮点击：极短的高频正弦
func (sb *SoundBank) generateClickSound() []float64 {
	buf := sb.oscillator(waveSine, 1200.0, 0.03)
	sb.applyEnvelope(buf, 0.002, 0.02)
	return buf
}

// toPCM 把单声道浮点采样转成交织立体声 16 位小端 PCM
func (sb *SoundBank) toPCM(in []float64) []byte {
	out := make([]byte, len(in)*4)
	for i, v := range in {
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}

		i16 := int16(v * 32767)
		idx := i * 4
		binary.LittleEndian.PutUint16(out[idx:], uint16(i16))   // 左声道
		binary.LittleEndian.PutUint16(out[idx+2:], uint16(i16)) // 右声道
	}
	return out
}
