package game

import (
	"encoding/binary"
	"testing"
)

func sampleAt(buf []byte, i int) (left, right int16) {
	return int16(binary.LittleEndian.Uint16(buf[i*4:])), int16(binary.LittleEndian.Uint16(buf[i*4+2:]))
}

// TestGenerateChime 测试提示音合成
func TestGenerateChime(t *testing.T) {
	buf := generateChime(SampleRate, chimeDuration)

	wantSamples := int(SampleRate * chimeDuration)
	if len(buf) != wantSamples*4 {
		t.Fatalf("len(buf) = %d, want %d", len(buf), wantSamples*4)
	}

	if l, r := sampleAt(buf, 0); l != 0 || r != 0 {
		t.Errorf("first sample = (%d, %d), want silence", l, r)
	}
	if l, r := sampleAt(buf, wantSamples-1); l != 0 || r != 0 {
		t.Errorf("last sample = (%d, %d), want silence", l, r)
	}

	var peak int16
	for i := 0; i < wantSamples; i++ {
		l, r := sampleAt(buf, i)
		if l != r {
			t.Fatalf("sample %d: channels differ (%d, %d)", i, l, r)
		}
		if l < 0 {
			l = -l
		}
		if l > peak {
			peak = l
		}
	}
	if peak < 1000 {
		t.Errorf("peak amplitude %d too quiet", peak)
	}
}

// TestAudioManagerNoContext 测试无音频上下文时的行为
func TestAudioManagerNoContext(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		volume  float64
		wantVol float64
	}{
		{"enabled", true, 0.5, 0.5},
		{"disabled", false, 0.5, 0.5},
		{"volume clamped high", true, 3, 1},
		{"volume clamped low", true, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am := NewAudioManager(nil, tt.enabled, tt.volume)
			if am.PlayChime() {
				t.Error("PlayChime without a context should return false")
			}
			if am.Volume() != tt.wantVol {
				t.Errorf("Volume() = %v, want %v", am.Volume(), tt.wantVol)
			}
			if am.Enabled() != tt.enabled {
				t.Errorf("Enabled() = %v, want %v", am.Enabled(), tt.enabled)
			}
		})
	}
}
