package entities

import (
	"fmt"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
)

// NewResultDialog 创建结果对话框实体
//
// 对话框在窗口中央弹出（带回弹缩放动画），显示中奖选项，
// 底部并排"再来一次"和"重置"两个按钮。
// 按钮坐标相对对话框左上角，渲染和输入系统再叠加对话框位置。
//
// 参数：
//   - em: 实体管理器
//   - winnerLabel: 中奖选项文字
//   - onPickAgain: "再来一次"回调（保留选项）
//   - onReset: "重置"回调（清空选项）
//
// 返回：
//   - 对话框实体ID
//   - 错误信息
func NewResultDialog(
	em *ecs.EntityManager,
	winnerLabel string,
	onPickAgain func(),
	onReset func(),
) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	dialogWidth := float64(config.DialogWidth)
	dialogHeight := float64(config.DialogHeight)

	// 窗口居中
	x := float64(config.GameWindowWidth)/2 - dialogWidth/2
	y := float64(config.GameWindowHeight)/2 - dialogHeight/2

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	// 两个按钮底部并排，间距 24
	btnWidth := float64(config.DialogButtonWidth)
	btnHeight := float64(config.DialogButtonHeight)
	btnGap := 24.0
	btnY := dialogHeight - btnHeight - 28.0
	leftX := dialogWidth/2 - btnWidth - btnGap/2
	rightX := dialogWidth/2 + btnGap/2

	buttons := []components.DialogButton{
		{
			Label:   "再来一次",
			X:       leftX,
			Y:       btnY,
			Width:   btnWidth,
			Height:  btnHeight,
			State:   components.UINormal,
			OnClick: onPickAgain,
		},
		{
			Label:   "重置",
			X:       rightX,
			Y:       btnY,
			Width:   btnWidth,
			Height:  btnHeight,
			State:   components.UINormal,
			OnClick: onReset,
		},
	}

	ecs.AddComponent(em, entity, &components.DialogComponent{
		Title:     "获胜的是",
		Message:   winnerLabel,
		Buttons:   buttons,
		IsVisible: true,
		Width:     dialogWidth,
		Height:    dialogHeight,
	})

	ecs.AddComponent(em, entity, &components.UIComponent{
		State: components.UINormal,
	})

	return entity, nil
}
