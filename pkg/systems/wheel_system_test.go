package systems

import (
	"math"
	"testing"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/utils"
)

// TestSegmentForAngle 指针系角度到扇区下标的映射
func TestSegmentForAngle(t *testing.T) {
	width := math.Pi / 2 // 4 个扇区

	tests := []struct {
		name  string
		angle float64
		count int
		want  int
	}{
		{"零角度属于扇区0", 0, 4, 0},
		{"边界前一点仍属扇区0", width - 1e-9, 4, 0},
		{"恰好一个扇区宽属于扇区1", width, 4, 1},
		{"最后一个扇区", 2*math.Pi - 1e-9, 4, 3},
		{"负角度先归一化", -math.Pi / 4, 4, 3},
		{"超过一圈取模", 2*math.Pi + width, 4, 1},
		{"单扇区全归0", 5.0, 1, 0},
		{"零扇区不越界", 1.0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentForAngle(tt.angle, tt.count)
			if got != tt.want {
				t.Errorf("SegmentForAngle(%f, %d) = %d, 期望 %d", tt.angle, tt.count, got, tt.want)
			}
		})
	}
}

// TestSegmentAtRotation 转盘转角与指针所指扇区的换算
func TestSegmentAtRotation(t *testing.T) {
	width := 2 * math.Pi / 4

	tests := []struct {
		name     string
		rotation float64
		count    int
		want     int
	}{
		{"未转动指针指扇区0", 0, 4, 0},
		{"顺时针转一格指针指前一扇区", width, 4, 3},
		{"转两格", 2 * width, 4, 2},
		{"整圈回到扇区0", 2 * math.Pi, 4, 0},
		{"多圈取模", 6*math.Pi + width/2, 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentAtRotation(tt.rotation, tt.count)
			if got != tt.want {
				t.Errorf("SegmentAtRotation(%f, %d) = %d, 期望 %d", tt.rotation, tt.count, got, tt.want)
			}
		})
	}
}

// TestTargetRotationForSegment 反推的目标转角必须落在预定扇区内
func TestTargetRotationForSegment(t *testing.T) {
	minTurn := config.ActiveTuning.Wheel.ExtraRotationsMin * 2 * math.Pi

	for count := 2; count <= 8; count++ {
		for segment := 0; segment < count; segment++ {
			rng := utils.NewSeededRand(uint64(count*100 + segment))
			start := float64(segment) * 0.37 // 任意非零起点

			target := TargetRotationForSegment(start, segment, count, rng)

			if target <= start {
				t.Errorf("count=%d segment=%d: 目标 %.3f 未超过起点 %.3f", count, segment, target, start)
			}
			if target-start < minTurn {
				t.Errorf("count=%d segment=%d: 转动量 %.3f 不足最少圈数 %.3f", count, segment, target-start, minTurn)
			}
			if landed := SegmentAtRotation(target, count); landed != segment {
				t.Errorf("count=%d segment=%d: 落在了扇区 %d", count, segment, landed)
			}
		}
	}
}

// newTestWheel 创建一个已武装好目标转角的转盘实体
func newTestWheel(em *ecs.EntityManager, count, segment int) *components.WheelComponent {
	labels := make([]string, count)
	for i := range labels {
		labels[i] = "选项"
	}

	id := em.CreateEntity()
	wheel := &components.WheelComponent{
		Labels:        labels,
		WinnerSegment: segment,
		Spinning:      true,
	}
	rng := utils.NewSeededRand(42)
	wheel.TargetRotation = TargetRotationForSegment(0, segment, count, rng)
	ecs.AddComponent(em, id, wheel)
	ecs.AddComponent(em, id, &components.PositionComponent{X: 0, Y: 0})
	return wheel
}

// TestWheelMonotoneConvergence 转角单调递增，时长结束后精确等于终点
func TestWheelMonotoneConvergence(t *testing.T) {
	em := ecs.NewEntityManager()
	ws := NewWheelSystem(em)
	wheel := newTestWheel(em, 4, 2)

	atZero := wheel.Rotation

	ws.Update(config.SpinDuration / 2)
	atHalf := wheel.Rotation

	ws.Update(config.SpinDuration / 2)
	atEnd := wheel.Rotation

	if !(atZero < atHalf && atHalf < atEnd) {
		t.Errorf("转角未单调递增: %f, %f, %f", atZero, atHalf, atEnd)
	}
	if atEnd != wheel.TargetRotation {
		t.Errorf("终点未精确吸附: %.15f != %.15f", atEnd, wheel.TargetRotation)
	}

	// 结束后的任何推进都不再改变转角
	ws.Update(1.0)
	if wheel.Rotation != wheel.TargetRotation {
		t.Errorf("停止后转角被改动: %f", wheel.Rotation)
	}
}

// TestWheelFineStepConvergence 逐帧推进与一次大步推进收敛到同一终点
func TestWheelFineStepConvergence(t *testing.T) {
	em := ecs.NewEntityManager()
	ws := NewWheelSystem(em)
	wheel := newTestWheel(em, 6, 4)

	prev := wheel.Rotation
	dt := 1.0 / 60.0
	for elapsed := 0.0; elapsed < config.SpinDuration+0.1; elapsed += dt {
		ws.Update(dt)
		if wheel.Rotation < prev {
			t.Fatalf("t=%.3f: 转角回退 %f -> %f", elapsed, prev, wheel.Rotation)
		}
		prev = wheel.Rotation
	}

	if wheel.Rotation != wheel.TargetRotation {
		t.Errorf("逐帧推进终点不精确: %.15f != %.15f", wheel.Rotation, wheel.TargetRotation)
	}
}

// TestWheelHighlightAndCompleteOnce 高亮渐显后完成回调只触发一次
func TestWheelHighlightAndCompleteOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	ws := NewWheelSystem(em)
	wheel := newTestWheel(em, 4, 1)

	fired := 0
	wheel.OnComplete = func() { fired++ }

	// 旋转结束，进入高亮
	ws.Update(config.SpinDuration)
	if !wheel.Highlighting {
		t.Fatal("旋转结束后应进入高亮阶段")
	}
	if fired != 0 {
		t.Fatal("高亮未结束就触发了回调")
	}

	// 高亮中途：强度按进度渐显
	ws.Update(config.WheelHighlightDuration / 2)
	if math.Abs(wheel.HighlightAlpha-0.5) > 1e-9 {
		t.Errorf("HighlightAlpha = %f, 期望 0.5", wheel.HighlightAlpha)
	}

	// 高亮结束：强度封顶，回调触发
	ws.Update(config.WheelHighlightDuration / 2)
	if wheel.HighlightAlpha != 1.0 {
		t.Errorf("HighlightAlpha = %f, 期望 1.0", wheel.HighlightAlpha)
	}
	if fired != 1 {
		t.Fatalf("回调触发 %d 次, 期望 1 次", fired)
	}

	// 继续推进不再重复触发
	ws.Update(1.0)
	ws.Update(1.0)
	if fired != 1 {
		t.Errorf("回调重复触发: %d 次", fired)
	}
}

// TestWheelLandsInArmedSegment 终点转角落在武装时预定的扇区
func TestWheelLandsInArmedSegment(t *testing.T) {
	for segment := 0; segment < 5; segment++ {
		em := ecs.NewEntityManager()
		ws := NewWheelSystem(em)
		wheel := newTestWheel(em, 5, segment)

		ws.Update(config.SpinDuration)

		if landed := SegmentAtRotation(wheel.Rotation, 5); landed != segment {
			t.Errorf("segment=%d: 实际落点 %d", segment, landed)
		}
	}
}
