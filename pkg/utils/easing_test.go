package utils

import (
	"math"
	"testing"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3
		{"终点", 1.0, 1.0},
		{"低于下限", -1, 0.0},
		{"超出上限", 2, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EaseOutCubic(tt.input); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEaseOutBack(t *testing.T) {
	if got := EaseOutBack(0); math.Abs(got) > 1e-9 {
		t.Errorf("EaseOutBack(0) = %v, 期望 0", got)
	}
	if got := EaseOutBack(1); math.Abs(got-1) > 1e-9 {
		t.Errorf("EaseOutBack(1) = %v, 期望 1", got)
	}

	// 中途会越过 1
	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = math.Max(peak, EaseOutBack(float64(i)/100))
	}
	if peak <= 1 {
		t.Errorf("EaseOutBack 峰值 = %v, 期望大于 1", peak)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{0.6, 1, 0.5, 0.8},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}
