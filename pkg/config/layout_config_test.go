package config

import (
	"math"
	"testing"
)

// TestCardSlotAngle 测试卡片环位角度分布
func TestCardSlotAngle(t *testing.T) {
	t.Run("首张卡片在正上方", func(t *testing.T) {
		angle := CardSlotAngle(0, 4)
		if math.Abs(angle-(-math.Pi/2)) > 1e-9 {
			t.Errorf("CardSlotAngle(0, 4) = %v, 期望 -π/2", angle)
		}
	})

	t.Run("均匀分布", func(t *testing.T) {
		n := 6
		step := 2 * math.Pi / float64(n)
		for i := 1; i < n; i++ {
			diff := CardSlotAngle(i, n) - CardSlotAngle(i-1, n)
			if math.Abs(diff-step) > 1e-9 {
				t.Errorf("相邻卡片角度差 = %v, 期望 %v", diff, step)
			}
		}
	})

	t.Run("非法数量", func(t *testing.T) {
		if CardSlotAngle(0, 0) != 0 {
			t.Error("count=0 时应返回 0")
		}
	})
}

// TestCardSlotPosition 测试卡片环位坐标
func TestCardSlotPosition(t *testing.T) {
	t.Run("首张卡片在中心正上方", func(t *testing.T) {
		x, y := CardSlotPosition(0, 4)
		if math.Abs(x-StageCenterX) > 1e-9 {
			t.Errorf("x = %v, 期望 %v", x, StageCenterX)
		}
		if math.Abs(y-(StageCenterY-CardRingRadius)) > 1e-9 {
			t.Errorf("y = %v, 期望 %v", y, StageCenterY-CardRingRadius)
		}
	})

	t.Run("所有卡片到中心距离相等", func(t *testing.T) {
		for count := MinOptions; count <= MaxOptions; count++ {
			for i := 0; i < count; i++ {
				x, y := CardSlotPosition(i, count)
				dist := math.Hypot(x-StageCenterX, y-StageCenterY)
				if math.Abs(dist-CardRingRadius) > 1e-9 {
					t.Errorf("卡片 %d/%d 到中心距离 = %v, 期望 %v", i, count, dist, CardRingRadius)
				}
			}
		}
	})
}
