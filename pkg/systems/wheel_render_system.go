package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/game"
	"github.com/gonewx/luckypick/pkg/utils"
)

// 转盘视觉常量
var (
	// 扇区配色循环（相邻扇区颜色不同）
	wheelSegmentColors = []color.RGBA{
		{R: 86, G: 98, B: 160, A: 255},
		{R: 64, G: 74, B: 128, A: 255},
		{R: 98, G: 78, B: 148, A: 255},
		{R: 56, G: 88, B: 140, A: 255},
		{R: 92, G: 66, B: 124, A: 255},
		{R: 70, G: 96, B: 118, A: 255},
	}

	// 轮缘与分隔线
	wheelRimColor   = color.RGBA{R: 150, G: 164, B: 220, A: 255}
	wheelSpokeColor = color.RGBA{R: 28, G: 32, B: 54, A: 255}

	// 中心圆毂
	wheelHubFillColor   = color.RGBA{R: 36, G: 42, B: 70, A: 255}
	wheelHubBorderColor = color.RGBA{R: 150, G: 164, B: 220, A: 255}

	// 顶部指针
	wheelPointerColor = color.RGBA{R: 240, G: 205, B: 96, A: 255}

	// 扇区标签
	wheelLabelColor = color.RGBA{R: 236, G: 240, B: 252, A: 255}
)

// 转盘标签字号与摆放半径比例
const (
	wheelLabelFontSize    = 16.0
	wheelLabelRadiusRatio = 0.62
)

// WheelRenderSystem 转盘渲染系统
//
// 按 WheelComponent 的当前转角画扇区、分隔线、标签、轮缘、圆毂和指针。
// 标签随扇区转动但文字保持水平。停转后的中奖扇区叠一层白色高亮，
// 强度由 WheelSystem 写入的 HighlightAlpha 决定。
type WheelRenderSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	labelFace       text.Face
}

// NewWheelRenderSystem 创建转盘渲染系统
func NewWheelRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager) *WheelRenderSystem {
	return &WheelRenderSystem{
		entityManager:   em,
		resourceManager: rm,
		labelFace:       rm.DefaultFace(wheelLabelFontSize),
	}
}

// Draw 渲染所有转盘实体
func (s *WheelRenderSystem) Draw(screen *ebiten.Image) {
	wheels := ecs.GetEntitiesWith2[*components.WheelComponent, *components.PositionComponent](s.entityManager)

	for _, id := range wheels {
		wheel, _ := ecs.GetComponent[*components.WheelComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if len(wheel.Labels) == 0 {
			continue
		}

		s.drawWheel(screen, wheel, pos.X, pos.Y)
	}
}

// drawWheel 绘制单个转盘
func (s *WheelRenderSystem) drawWheel(screen *ebiten.Image, wheel *components.WheelComponent, cx, cy float64) {
	radius := float64(config.WheelRadius)
	count := len(wheel.Labels)
	segmentWidth := 2 * math.Pi / float64(count)

	// 0号扇区从指针（正上方）起顺时针排布，整体再加上当前转角
	baseAngle := -math.Pi/2 + wheel.Rotation

	// 扇区填充
	for i := 0; i < count; i++ {
		clr := wheelSegmentColors[i%len(wheelSegmentColors)]
		start := baseAngle + float64(i)*segmentWidth
		fillSector(screen, cx, cy, radius, start, start+segmentWidth,
			float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, 1)
	}

	// 中奖扇区高亮
	if wheel.WinnerSegment >= 0 && wheel.HighlightAlpha > 0 {
		start := baseAngle + float64(wheel.WinnerSegment)*segmentWidth
		a := float32(wheel.HighlightAlpha * 0.45)
		fillSector(screen, cx, cy, radius, start, start+segmentWidth, a, a, a, a)
	}

	// 扇区分隔线
	for i := 0; i < count; i++ {
		angle := baseAngle + float64(i)*segmentWidth
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(x), float32(y), 2, wheelSpokeColor, true)
	}

	// 标签（随扇区转动，文字保持水平）
	maxLabelWidth := 2 * radius * math.Sin(segmentWidth/2) * 0.8
	if maxLabelWidth > 110 {
		maxLabelWidth = 110
	}
	for i, label := range wheel.Labels {
		mid := baseAngle + (float64(i)+0.5)*segmentWidth
		lx := cx + radius*wheelLabelRadiusRatio*math.Cos(mid)
		ly := cy + radius*wheelLabelRadiusRatio*math.Sin(mid)

		fitted := utils.EllipsizeText(label, s.labelFace, maxLabelWidth)
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(lx, ly)
		op.ColorScale.ScaleWithColor(wheelLabelColor)
		text.Draw(screen, fitted, s.labelFace, op)
	}

	// 轮缘、圆毂
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), 3, wheelRimColor, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(config.WheelHubRadius), wheelHubFillColor, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(config.WheelHubRadius), 2, wheelHubBorderColor, true)

	// 顶部指针（倒三角，尖端指向轮内）
	half := float64(config.WheelPointerSize) / 2
	tipY := cy - radius + 12
	baseY := cy - radius - 14
	fillTriangle(screen,
		cx, tipY,
		cx-half, baseY,
		cx+half, baseY,
		float32(wheelPointerColor.R)/255, float32(wheelPointerColor.G)/255, float32(wheelPointerColor.B)/255, 1)
}
