package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率
// ebiten 的 audio.Context 在整个进程中只能创建一次，采样率统一在这里定义
const SampleRate = 44100

// 提示音参数
const (
	chimeDuration = 0.6   // 秒
	chimeAttack   = 0.01  // 起音时间（秒），避免爆音
	chimeDecay    = 5.0   // 指数衰减系数
	chimeBaseFreq = 880.0 // A5
)

// chimeNotes 提示音由两个音叠加（A5 + E6）
var chimeNotes = []float64{chimeBaseFreq, chimeBaseFreq * 1.5}

// AudioManager 音频管理器
// 职责：
//   - 在完全揭晓时播放提示音
//   - 根据配置启用/禁用音效并控制音量
//
// 提示音在创建时合成为 PCM 数据，不依赖外部音频文件。
type AudioManager struct {
	context *audio.Context // 音频上下文，可为 nil（无音频设备或测试环境）
	chime   []byte         // 16-bit 立体声 PCM
	enabled bool           // 是否启用音效
	volume  float64        // 音量 0.0 ~ 1.0
	player  *audio.Player  // 当前提示音播放器
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（可为 nil，此时 PlayChime 静默返回 false）
//   - enabled: 是否启用音效
//   - volume: 音量 0.0 ~ 1.0
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, enabled bool, volume float64) *AudioManager {
	return &AudioManager{
		context: ctx,
		chime:   generateChime(SampleRate, chimeDuration),
		enabled: enabled,
		volume:  clampVolume(volume),
	}
}

// PlayChime 播放揭晓提示音
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayChime() bool {
	if !am.enabled {
		return false
	}
	if am.context == nil {
		log.Printf("[AudioManager] No audio context, chime skipped")
		return false
	}

	if am.player == nil {
		am.player = am.context.NewPlayerFromBytes(am.chime)
	}
	am.player.SetVolume(am.volume)
	if err := am.player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind chime: %v", err)
	}
	am.player.Play()
	return true
}

// SetEnabled 启用或禁用音效
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// SetVolume 设置音量（自动限制在 0.0 ~ 1.0）
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = clampVolume(volume)
	if am.player != nil {
		am.player.SetVolume(am.volume)
	}
}

// Enabled 是否启用音效
func (am *AudioManager) Enabled() bool {
	return am.enabled
}

// Volume 当前音量
func (am *AudioManager) Volume() float64 {
	return am.volume
}

// generateChime 合成提示音
//
// 输出为 ebiten 要求的格式：16-bit 小端有符号整数，双声道交错。
// 包络为短起音 + 指数衰减，首尾采样均为 0。
func generateChime(sampleRate int, seconds float64) []byte {
	n := int(float64(sampleRate) * seconds)
	buf := make([]byte, n*4)
	amp := 0.8 / float64(len(chimeNotes))

	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)

		env := math.Exp(-chimeDecay * t)
		if t < chimeAttack {
			env *= t / chimeAttack
		}
		// 末尾 5% 线性收尾
		if tail := float64(n-1-i) / (float64(n) * 0.05); tail < 1 {
			env *= tail
		}

		var v float64
		for _, f := range chimeNotes {
			v += math.Sin(2 * math.Pi * f * t)
		}
		s := int16(v * amp * env * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
