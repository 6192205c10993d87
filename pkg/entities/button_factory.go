package entities

import (
	"fmt"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/ecs"
)

// NewButton 创建矢量绘制的按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角位置（屏幕坐标）
//   - width, height: 按钮尺寸
//   - text: 按钮文字
//   - fillColor: 底色 [R, G, B, A]
//   - textColor: 文字颜色 [R, G, B, A]
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
//   - 错误信息
func NewButton(
	em *ecs.EntityManager,
	x, y float64,
	width, height float64,
	text string,
	fillColor [4]uint8,
	textColor [4]uint8,
	onClick func(),
) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:      text,
		Width:     width,
		Height:    height,
		FillColor: fillColor,
		TextColor: textColor,
		State:     components.UINormal,
		Enabled:   true,
		OnClick:   onClick,
	})

	// UI 标记，方便场景统一查询
	ecs.AddComponent(em, entity, &components.UIComponent{
		State: components.UINormal,
	})

	return entity, nil
}

// NewTextInput 创建文本输入框实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 输入框左上角位置
//   - width, height: 输入框尺寸
//   - maxLength: 最大输入长度（按字符数，不是字节数）
//   - placeholder: 空白时的提示文字
//   - onSubmit: 回车提交回调（参数为当前文本）
//
// 返回：
//   - 输入框实体ID
//   - 错误信息
func NewTextInput(
	em *ecs.EntityManager,
	x, y float64,
	width, height float64,
	maxLength int,
	placeholder string,
	onSubmit func(text string),
) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.TextInputComponent{
		Width:       width,
		Height:      height,
		MaxLength:   maxLength,
		Placeholder: placeholder,
		OnSubmit:    onSubmit,
	})

	ecs.AddComponent(em, entity, &components.UIComponent{
		State: components.UINormal,
	})

	return entity, nil
}
