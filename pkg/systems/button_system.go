package systems

import (
	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下和点击交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测指针松开（触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
//
// 指针状态经 utils.GetInputState 统一鼠标和触摸，
// 移动端构建无需单独的交互路径。
// 结果对话框可见期间所有场景按钮不响应，点击被对话框吞掉。
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 更新按钮交互状态
// 检测指针位置和松开，更新按钮状态并触发回调
func (s *ButtonSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	// 对话框可见时场景按钮全部失活，交互由 DialogInputSystem 接管
	if s.modalDialogVisible() {
		for _, entityID := range entities {
			button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
			if button.Enabled {
				button.State = components.UINormal
			}
		}
		return
	}

	pointer := utils.GetInputState()
	px := float64(pointer.X)
	py := float64(pointer.Y)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !utils.PointInRect(px, py, pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		if pointer.IsTouching {
			// 按住状态（显示按下效果）
			button.State = components.UIClicked
		} else if pointer.JustReleased {
			// 松开瞬间触发回调
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		} else {
			button.State = components.UIHovered
		}
	}
}

// modalDialogVisible 是否有可见的模态对话框
func (s *ButtonSystem) modalDialogVisible() bool {
	dialogs := ecs.GetEntitiesWith1[*components.DialogComponent](s.entityManager)
	for _, id := range dialogs {
		dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, id)
		if dialog.IsVisible {
			return true
		}
	}
	return false
}
