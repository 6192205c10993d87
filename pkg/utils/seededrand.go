package utils

import "math"

// SeededRand 可复现的伪随机数生成器
//
// 采用线性同余法（LCG），参数为经典的 9301 / 49297 / 233280 组合。
// 相同种子产生完全相同的序列，用于：
//   - 回放同一次抽取结果（--seed 参数）
//   - 碎片爆裂等粒子效果的确定性测试
//
// 注意：此生成器不适合任何密码学用途。
type SeededRand struct {
	state uint64
}

// NewSeededRand 创建指定种子的随机数生成器
// 种子为 0 也是合法的：增量 49297 保证序列不会退化为全零
func NewSeededRand(seed uint64) *SeededRand {
	return &SeededRand{state: seed % 233280}
}

// Float64 返回 [0, 1) 区间内的下一个伪随机数
func (r *SeededRand) Float64() float64 {
	r.state = (r.state*9301 + 49297) % 233280
	return float64(r.state) / 233280.0
}

// Range 返回 [min, max) 区间内的伪随机数
func (r *SeededRand) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// IntN 返回 [0, n) 区间内的伪随机整数
// n <= 0 时返回 0
func (r *SeededRand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	idx := int(r.Float64() * float64(n))
	// Float64 严格小于 1，但乘法舍入可能把结果顶到 n
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// Angle 返回 [0, 2π) 区间内的伪随机角度
func (r *SeededRand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}
