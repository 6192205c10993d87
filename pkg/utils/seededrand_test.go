package utils

import (
	"math"
	"testing"
)

// TestSeededRandDeterminism 测试相同种子产生相同序列
func TestSeededRandDeterminism(t *testing.T) {
	seeds := []uint64{0, 1, 42, 12345, 233279}

	for _, seed := range seeds {
		r1 := NewSeededRand(seed)
		r2 := NewSeededRand(seed)

		for i := 0; i < 100; i++ {
			v1 := r1.Float64()
			v2 := r2.Float64()
			if v1 != v2 {
				t.Errorf("种子 %d 第 %d 次取值不一致: %v != %v", seed, i, v1, v2)
				break
			}
		}
	}
}

// TestSeededRandSequence 测试已知序列
// LCG 递推：s = (s*9301 + 49297) mod 233280
func TestSeededRandSequence(t *testing.T) {
	r := NewSeededRand(42)

	// 手工计算的前三项状态
	// s1 = (42*9301 + 49297) mod 233280 = 439939 mod 233280 = 206659
	// s2 = (206659*9301 + 49297) mod 233280 = 1922184656 mod 233280 = 190736
	// s3 = (190736*9301 + 49297) mod 233280 = 1774084833 mod 233280 = 223713
	expected := []float64{
		206659.0 / 233280.0,
		190736.0 / 233280.0,
		223713.0 / 233280.0,
	}

	for i, want := range expected {
		got := r.Float64()
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("第 %d 项 = %v, 期望 %v", i+1, got, want)
		}
	}
}

// TestSeededRandZeroSeed 测试种子为 0 时序列不退化
func TestSeededRandZeroSeed(t *testing.T) {
	r := NewSeededRand(0)

	allZero := true
	seen := make(map[float64]bool)
	for i := 0; i < 50; i++ {
		v := r.Float64()
		if v != 0 {
			allZero = false
		}
		seen[v] = true
	}

	if allZero {
		t.Error("种子 0 不应该产生全零序列")
	}
	if len(seen) < 40 {
		t.Errorf("种子 0 的序列多样性不足: 50 次只出现 %d 个不同值", len(seen))
	}
}

// TestSeededRandRange01 测试取值范围 [0, 1)
func TestSeededRandRange01(t *testing.T) {
	r := NewSeededRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Errorf("第 %d 次取值 %v 超出 [0, 1) 范围", i, v)
			break
		}
	}
}

// TestSeededRandRange 测试区间取值
func TestSeededRandRange(t *testing.T) {
	r := NewSeededRand(99)

	tests := []struct {
		name string
		min  float64
		max  float64
	}{
		{"碎片速度", 120.0, 300.0},
		{"负数区间", -50.0, 50.0},
		{"单位区间", 0.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				v := r.Range(tt.min, tt.max)
				if v < tt.min || v >= tt.max {
					t.Errorf("Range(%v, %v) = %v 超出范围", tt.min, tt.max, v)
					break
				}
			}
		})
	}
}

// TestSeededRandIntN 测试整数取值
func TestSeededRandIntN(t *testing.T) {
	r := NewSeededRand(5)

	t.Run("范围正确", func(t *testing.T) {
		counts := make([]int, 8)
		for i := 0; i < 800; i++ {
			idx := r.IntN(8)
			if idx < 0 || idx >= 8 {
				t.Fatalf("IntN(8) = %d 超出 [0, 8) 范围", idx)
			}
			counts[idx]++
		}
		// 800 次取值 8 个桶，每个桶都应该被命中
		for i, c := range counts {
			if c == 0 {
				t.Errorf("索引 %d 从未被选中", i)
			}
		}
	})

	t.Run("非法参数", func(t *testing.T) {
		if got := r.IntN(0); got != 0 {
			t.Errorf("IntN(0) = %d, 期望 0", got)
		}
		if got := r.IntN(-3); got != 0 {
			t.Errorf("IntN(-3) = %d, 期望 0", got)
		}
	})
}

// TestSeededRandAngle 测试角度取值范围 [0, 2π)
func TestSeededRandAngle(t *testing.T) {
	r := NewSeededRand(2024)
	for i := 0; i < 500; i++ {
		a := r.Angle()
		if a < 0 || a >= 2*math.Pi {
			t.Errorf("Angle() = %v 超出 [0, 2π) 范围", a)
			break
		}
	}
}
