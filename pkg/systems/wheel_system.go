package systems

import (
	"log"
	"math"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/utils"
)

// SegmentForAngle 把指针系角度映射到扇区下标
//
// 角度从顶部指针起顺时针度量；扇区 0 从指针处开始顺时针排布，
// 每个扇区宽 2π/count。刚好落在扇区边界的角度属于后一个扇区
// （0 属于扇区 0，恰好一个扇区宽属于扇区 1）。
// 任何输入都返回 [0, count) 内的下标，不会越界。
func SegmentForAngle(pointerAngle float64, count int) int {
	if count <= 0 {
		return 0
	}

	width := 2 * math.Pi / float64(count)
	norm := math.Mod(pointerAngle, 2*math.Pi)
	if norm < 0 {
		norm += 2 * math.Pi
	}

	seg := int(norm / width)
	// norm 严格小于 2π，但除法舍入可能把结果顶到 count
	if seg >= count {
		seg = count - 1
	}
	return seg
}

// SegmentAtRotation 返回转盘顺时针转过 rotation 后指针所指的扇区
//
// 转盘转过 θ 后，指针对准的是盘面上角度 (2π − θ) mod 2π 的位置。
func SegmentAtRotation(rotation float64, count int) int {
	norm := math.Mod(rotation, 2*math.Pi)
	if norm < 0 {
		norm += 2 * math.Pi
	}
	pointer := math.Mod(2*math.Pi-norm, 2*math.Pi)
	return SegmentForAngle(pointer, count)
}

// TargetRotationForSegment 反推一个让指针停在指定扇区内的目标转角
//
// 目标 = 起点 + 完整圈数（默认 4–6 圈）+ 对齐扇区内落点所需的增量。
// 落点避开扇区边界（两侧各留 15% 边距），返回值恒大于起点。
// 随机数消耗顺序：圈数、扇区内落点。
func TargetRotationForSegment(start float64, segment, count int, rng *utils.SeededRand) float64 {
	if count <= 0 {
		return start
	}
	if segment < 0 {
		segment = 0
	}
	if segment >= count {
		segment = count - 1
	}

	t := config.ActiveTuning.Wheel
	width := 2 * math.Pi / float64(count)

	fullRotations := t.ExtraRotationsMin + rng.Float64()*t.ExtraRotationsRange
	pointer := (float64(segment) + 0.15 + 0.7*rng.Float64()) * width

	desiredNorm := math.Mod(2*math.Pi-pointer, 2*math.Pi)

	startNorm := math.Mod(start, 2*math.Pi)
	if startNorm < 0 {
		startNorm += 2 * math.Pi
	}

	delta := math.Mod(desiredNorm-startNorm, 2*math.Pi)
	if delta < 0 {
		delta += 2 * math.Pi
	}

	return start + fullRotations*2*math.Pi + delta
}

// WheelSystem 转盘动画系统
//
// 只做可视化：按缓动曲线把转角从起点推进到流程系统预先写好的终点，
// 时长结束后精确吸附到终点，再做 300ms 扇区高亮渐显，
// 最后触发至多一次的完成回调。结果由流程系统决定，转盘不参与。
type WheelSystem struct {
	entityManager *ecs.EntityManager
}

// NewWheelSystem 创建转盘动画系统
func NewWheelSystem(em *ecs.EntityManager) *WheelSystem {
	return &WheelSystem{
		entityManager: em,
	}
}

// Update 推进所有转盘的旋转和高亮动画
func (s *WheelSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.WheelComponent](s.entityManager) {
		wheel, _ := ecs.GetComponent[*components.WheelComponent](s.entityManager, id)
		s.updateWheel(dt, wheel)
	}
}

// updateWheel 推进单个转盘
func (s *WheelSystem) updateWheel(dt float64, wheel *components.WheelComponent) {
	if wheel.Spinning {
		wheel.SpinTime += dt

		if wheel.SpinTime >= config.SpinDuration {
			// 精确吸附到终点，不留浮点残差
			wheel.Rotation = wheel.TargetRotation
			wheel.Spinning = false
			wheel.Highlighting = true
			wheel.HighlightTime = 0

			// 落点校验：终点必须落在预定扇区内
			landed := SegmentAtRotation(wheel.Rotation, len(wheel.Labels))
			if landed != wheel.WinnerSegment {
				log.Printf("[Wheel] ERROR: landed in segment %d, expected %d", landed, wheel.WinnerSegment)
			}
			return
		}

		progress := utils.EaseOutCubic(wheel.SpinTime / config.SpinDuration)
		wheel.Rotation = wheel.StartRotation + (wheel.TargetRotation-wheel.StartRotation)*progress
		return
	}

	if wheel.Highlighting {
		wheel.HighlightTime += dt

		if wheel.HighlightTime >= config.WheelHighlightDuration {
			wheel.HighlightAlpha = 1.0
			wheel.Highlighting = false

			if !wheel.CompleteFired {
				wheel.CompleteFired = true
				if wheel.OnComplete != nil {
					wheel.OnComplete()
				}
			}
			return
		}

		wheel.HighlightAlpha = wheel.HighlightTime / config.WheelHighlightDuration
	}
}
