package utils

import (
	"testing"
)

// TestPointInRect 测试矩形命中检测
func TestPointInRect(t *testing.T) {
	// 以一张 120x160 的卡片为例，左上角在 (100, 50)
	rx, ry, rw, rh := 100.0, 50.0, 120.0, 160.0

	tests := []struct {
		name     string
		px, py   float64
		expected bool
	}{
		{"中心命中", 160, 130, true},
		{"左上角命中", 100, 50, true},
		{"右边界不命中", 220, 130, false},
		{"下边界不命中", 160, 210, false},
		{"矩形左侧", 50, 130, false},
		{"矩形上方", 160, 10, false},
		{"右下角内侧", 219.9, 209.9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PointInRect(tt.px, tt.py, rx, ry, rw, rh)
			if result != tt.expected {
				t.Errorf("PointInRect(%v, %v) = %v, 期望 %v", tt.px, tt.py, result, tt.expected)
			}
		})
	}
}
