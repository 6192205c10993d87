package entities

import (
	"testing"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
)

// TestNewWheel 转盘固定在舞台中心并快照扇区文字
func TestNewWheel(t *testing.T) {
	em := ecs.NewEntityManager()
	labels := []string{"披萨", "塔可", "寿司"}

	id, err := NewWheel(em, labels)
	if err != nil {
		t.Fatalf("NewWheel() 错误: %v", err)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("转盘缺少 PositionComponent")
	}
	if pos.X != config.StageCenterX || pos.Y != config.StageCenterY {
		t.Errorf("转盘位置 (%f,%f), 期望舞台中心 (%f,%f)",
			pos.X, pos.Y, float64(config.StageCenterX), float64(config.StageCenterY))
	}

	wheel, ok := ecs.GetComponent[*components.WheelComponent](em, id)
	if !ok {
		t.Fatal("转盘缺少 WheelComponent")
	}
	if len(wheel.Labels) != 3 {
		t.Fatalf("扇区数 = %d, 期望 3", len(wheel.Labels))
	}
	if wheel.WinnerSegment != -1 {
		t.Errorf("初始中奖扇区 = %d, 期望 -1", wheel.WinnerSegment)
	}
	if wheel.Spinning || wheel.Highlighting {
		t.Error("新转盘不应处于旋转或高亮状态")
	}
	if wheel.Rotation != 0 {
		t.Errorf("初始转角 = %f, 期望 0", wheel.Rotation)
	}

	// 扇区文字是快照，调用方之后改动切片不影响转盘
	labels[0] = "改掉了"
	if wheel.Labels[0] != "披萨" {
		t.Errorf("扇区文字被外部切片改动: %q", wheel.Labels[0])
	}
}

// TestNewWheelErrors 非法输入返回错误
func TestNewWheelErrors(t *testing.T) {
	em := ecs.NewEntityManager()

	if _, err := NewWheel(em, nil); err == nil {
		t.Error("空扇区列表应返回错误")
	}
	if _, err := NewWheel(nil, []string{"甲"}); err == nil {
		t.Error("nil 管理器应返回错误")
	}
	if em.EntityCount() != 0 {
		t.Errorf("失败路径泄漏实体: %d", em.EntityCount())
	}
}
