package systems

import (
	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/utils"
)

// DialogInputSystem 对话框输入系统
// 负责处理结果对话框的用户交互
//
// 职责：
//   - 每帧更新对话框按钮的悬停/按下状态
//   - 指针松开时触发被点击按钮的回调
//
// 对话框是模态的：可见期间点击不会穿透到下层界面，
// 点击对话框外部也不会关闭（必须选择"再来一次"或"重置"）。
// 对话框实体本身由流程系统在回调里销毁，这里不做关闭逻辑。
type DialogInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewDialogInputSystem 创建对话框输入系统
func NewDialogInputSystem(em *ecs.EntityManager) *DialogInputSystem {
	return &DialogInputSystem{
		entityManager: em,
	}
}

// Update 更新对话框输入处理
func (s *DialogInputSystem) Update(deltaTime float64) {
	dialogEntities := ecs.GetEntitiesWith2[*components.DialogComponent, *components.PositionComponent](s.entityManager)
	if len(dialogEntities) == 0 {
		return
	}

	pointer := utils.GetInputState()
	mx := float64(pointer.X)
	my := float64(pointer.Y)

	for _, entityID := range dialogEntities {
		dialog, ok := ecs.GetComponent[*components.DialogComponent](s.entityManager, entityID)
		if !ok || !dialog.IsVisible {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		// 推进弹出动画时钟（渲染系统据此计算缩放）
		dialog.PopAge += deltaTime

		for i := range dialog.Buttons {
			btn := &dialog.Buttons[i]
			btnX := pos.X + btn.X
			btnY := pos.Y + btn.Y

			if !utils.PointInRect(mx, my, btnX, btnY, btn.Width, btn.Height) {
				btn.State = components.UINormal
				continue
			}

			if pointer.IsTouching {
				btn.State = components.UIClicked
			} else if pointer.JustReleased {
				// 回调可能销毁对话框实体，触发后立即返回
				btn.State = components.UIHovered
				if btn.OnClick != nil {
					btn.OnClick()
				}
				return
			} else {
				btn.State = components.UIHovered
			}
		}
	}
}
