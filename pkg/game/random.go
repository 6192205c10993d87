package game

import (
	"math/rand"
	"time"
)

// RandomSource 随机数来源
// 抽奖结果从这里取随机数。生产环境用时间种子的 math/rand；
// 测试注入确定性来源（utils.SeededRand 也满足此接口）。
// 抽象出来源是为了让结果可复现地测试，而不影响动画批次的种子回放。
type RandomSource interface {
	// Float64 返回 [0.0, 1.0) 区间的随机数
	Float64() float64
}

// NewTimeSource 创建时间种子的随机来源
// 每次启动的抽奖结果都不同
func NewTimeSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
