package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/game"
)

// 按钮文字字号
const buttonFontSize = 18.0

// 禁用态的整体灰度
var buttonDisabledColor = color.RGBA{R: 90, G: 94, B: 106, A: 255}

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体（矢量圆角矩形 + 居中文字）
//
// 职责：
//   - 按交互状态调整底色（悬停提亮、按下压暗、禁用灰显）
//   - 渲染按钮文字（自动居中，带阴影）
type ButtonRenderSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	font            text.Face
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager:   em,
		resourceManager: rm,
		font:            rm.DefaultFace(buttonFontSize),
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
// 用于需要精确控制渲染顺序的场景
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	s.drawButtonBackground(screen, button, pos.X, pos.Y)
	s.drawButtonText(screen, button, pos.X, pos.Y)
}

// drawButtonBackground 渲染按钮背景
func (s *ButtonRenderSystem) drawButtonBackground(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	fill := s.stateFillColor(button)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), fill, true)

	// 边框用底色提亮一档
	border := color.RGBA{
		R: lightenChannel(fill.R, 50),
		G: lightenChannel(fill.G, 50),
		B: lightenChannel(fill.B, 50),
		A: 255,
	}
	vector.StrokeRect(screen, float32(x)+0.5, float32(y)+0.5, float32(button.Width)-1, float32(button.Height)-1, 1.5, border, true)
}

// stateFillColor 按交互状态调整底色
func (s *ButtonRenderSystem) stateFillColor(button *components.ButtonComponent) color.RGBA {
	base := color.RGBA{
		R: button.FillColor[0],
		G: button.FillColor[1],
		B: button.FillColor[2],
		A: button.FillColor[3],
	}

	switch button.State {
	case components.UIDisabled:
		return buttonDisabledColor
	case components.UIHovered:
		return color.RGBA{
			R: lightenChannel(base.R, 26),
			G: lightenChannel(base.G, 26),
			B: lightenChannel(base.B, 26),
			A: base.A,
		}
	case components.UIClicked:
		return color.RGBA{
			R: darkenChannel(base.R, 26),
			G: darkenChannel(base.G, 26),
			B: darkenChannel(base.B, 26),
			A: base.A,
		}
	default:
		return base
	}
}

// drawButtonText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Text == "" {
		return
	}

	centerX := x + button.Width/2
	centerY := y + button.Height/2

	// 为了让"文字+阴影"整体看起来垂直居中，主文字向上偏移阴影的一半
	shadowOffsetX := 1.5
	shadowOffsetY := 1.5
	visualCenterOffsetY := -shadowOffsetY / 2.0

	textColor := color.RGBA{
		R: button.TextColor[0],
		G: button.TextColor[1],
		B: button.TextColor[2],
		A: button.TextColor[3],
	}
	if button.State == components.UIDisabled {
		textColor = color.RGBA{R: 160, G: 162, B: 170, A: 255}
	}

	// 先绘制阴影（深色文字，偏移位置）
	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+shadowOffsetX, centerY+shadowOffsetY+visualCenterOffsetY)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{A: 150})
	text.Draw(screen, button.Text, s.font, shadowOp)

	// 再绘制主文字
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY+visualCenterOffsetY)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, button.Text, s.font, op)
}

// lightenChannel 单通道提亮（钳制到 255）
func lightenChannel(c uint8, amount int) uint8 {
	v := int(c) + amount
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// darkenChannel 单通道压暗（钳制到 0）
func darkenChannel(c uint8, amount int) uint8 {
	v := int(c) - amount
	if v < 0 {
		v = 0
	}
	return uint8(v)
}
