package systems

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/game"
	"github.com/gonewx/luckypick/pkg/utils"
)

// 对话框配色
var (
	dialogOverlayColor     = color.RGBA{R: 0, G: 0, B: 0, A: 120}
	dialogPanelColor       = color.RGBA{R: 40, G: 48, B: 86, A: 255}
	dialogPanelBorderColor = color.RGBA{R: 128, G: 146, B: 210, A: 255}
	dialogTitleColor       = color.RGBA{R: 240, G: 205, B: 96, A: 255}
	dialogMessageColor     = color.RGBA{R: 236, G: 240, B: 252, A: 255}
	dialogButtonFillColor  = color.RGBA{R: 58, G: 70, B: 122, A: 255}
	dialogButtonTextColor  = color.RGBA{R: 236, G: 240, B: 252, A: 255}
)

const (
	// DialogPopDuration 弹出动画时长（秒），EaseOutBack 从 0 缩放到 1
	DialogPopDuration = 0.25

	dialogTitleFontSize   = 20.0
	dialogMessageFontSize = 30.0
	dialogButtonFontSize  = 18.0

	// 标题区域和按钮区域的高度，消息在两者之间垂直居中
	dialogTitleAreaHeight  = 70.0
	dialogButtonAreaHeight = 70.0
	dialogMessageLineGap   = 38.0
)

// DialogRenderSystem 对话框渲染系统
// 负责渲染所有对话框实体
//
// 职责：
//   - 渲染半透明遮罩（覆盖整个屏幕）
//   - 渲染对话框面板（矢量矩形+边框，EaseOutBack 弹出缩放）
//   - 渲染对话框标题和消息（消息自动换行）
//   - 渲染对话框按钮
type DialogRenderSystem struct {
	entityManager *ecs.EntityManager
	windowWidth   int
	windowHeight  int
	titleFont     text.Face
	messageFont   text.Face
	buttonFont    text.Face

	// scratch 对话框离屏画布：内容先画到这里，再整体缩放贴到屏幕
	scratch *ebiten.Image
}

// NewDialogRenderSystem 创建对话框渲染系统
func NewDialogRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager) *DialogRenderSystem {
	return &DialogRenderSystem{
		entityManager: em,
		windowWidth:   config.GameWindowWidth,
		windowHeight:  config.GameWindowHeight,
		titleFont:     rm.DefaultFace(dialogTitleFontSize),
		messageFont:   rm.DefaultFace(dialogMessageFontSize),
		buttonFont:    rm.DefaultFace(dialogButtonFontSize),
	}
}

// Draw 渲染所有对话框
// 查询所有拥有 DialogComponent 和 PositionComponent 的实体并渲染
func (s *DialogRenderSystem) Draw(screen *ebiten.Image) {
	dialogEntities := ecs.GetEntitiesWith2[*components.DialogComponent, *components.PositionComponent](s.entityManager)

	if len(dialogEntities) == 0 {
		return
	}

	visible := false
	for _, entityID := range dialogEntities {
		if dialog, ok := ecs.GetComponent[*components.DialogComponent](s.entityManager, entityID); ok && dialog.IsVisible {
			visible = true
			break
		}
	}
	if !visible {
		return
	}

	// 遮罩只画一次
	s.drawOverlay(screen)

	// 按实体 ID 排序，保证渲染顺序稳定
	sort.Slice(dialogEntities, func(i, j int) bool {
		return dialogEntities[i] < dialogEntities[j]
	})

	for _, entityID := range dialogEntities {
		dialog, ok := ecs.GetComponent[*components.DialogComponent](s.entityManager, entityID)
		if !ok || !dialog.IsVisible {
			continue
		}

		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		s.drawDialog(screen, dialog, pos)
	}
}

// drawOverlay 绘制半透明遮罩
func (s *DialogRenderSystem) drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.windowWidth), float32(s.windowHeight), dialogOverlayColor, false)
}

// drawDialog 绘制单个对话框
// 内容画在离屏画布上，再按弹出进度整体缩放贴到屏幕中心
func (s *DialogRenderSystem) drawDialog(screen *ebiten.Image, dialog *components.DialogComponent, pos *components.PositionComponent) {
	scale := utils.EaseOutBack(utils.Clamp01(dialog.PopAge / DialogPopDuration))
	if scale <= 0 {
		return
	}

	w := int(dialog.Width)
	h := int(dialog.Height)
	if w <= 0 || h <= 0 {
		return
	}
	s.ensureScratch(w, h)

	s.scratch.Clear()
	s.drawPanel(dialog)
	s.drawTitle(dialog)
	s.drawMessage(dialog)
	s.drawButtons(dialog)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-dialog.Width/2, -dialog.Height/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X+dialog.Width/2, pos.Y+dialog.Height/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.scratch, op)
}

// ensureScratch 保证离屏画布尺寸与对话框一致
func (s *DialogRenderSystem) ensureScratch(w, h int) {
	if s.scratch != nil {
		bounds := s.scratch.Bounds()
		if bounds.Dx() == w && bounds.Dy() == h {
			return
		}
	}
	s.scratch = ebiten.NewImage(w, h)
}

// drawPanel 绘制对话框面板背景和边框
func (s *DialogRenderSystem) drawPanel(dialog *components.DialogComponent) {
	w := float32(dialog.Width)
	h := float32(dialog.Height)

	vector.DrawFilledRect(s.scratch, 0, 0, w, h, dialogPanelColor, true)
	vector.StrokeRect(s.scratch, 1, 1, w-2, h-2, 2, dialogPanelBorderColor, true)
}

// drawTitle 绘制标题文字
func (s *DialogRenderSystem) drawTitle(dialog *components.DialogComponent) {
	if dialog.Title == "" || s.titleFont == nil {
		return
	}

	centerX := dialog.Width / 2
	centerY := 42.0

	// 先阴影后主文字
	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+2, centerY+2)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{A: 150})
	text.Draw(s.scratch, dialog.Title, s.titleFont, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(dialogTitleColor)
	text.Draw(s.scratch, dialog.Title, s.titleFont, op)
}

// drawMessage 绘制消息文字（中奖选项，自动换行后垂直居中）
func (s *DialogRenderSystem) drawMessage(dialog *components.DialogComponent) {
	if dialog.Message == "" || s.messageFont == nil {
		return
	}

	maxLineWidth := dialog.Width - 60
	lines := utils.WrapText(dialog.Message, s.messageFont, maxLineWidth)

	totalHeight := float64(len(lines)) * dialogMessageLineGap
	areaTop := dialogTitleAreaHeight
	areaBottom := dialog.Height - dialogButtonAreaHeight
	startY := areaTop + (areaBottom-areaTop-totalHeight)/2 + dialogMessageLineGap/2

	for i, line := range lines {
		if line == "" {
			continue
		}

		centerX := dialog.Width / 2
		lineY := startY + float64(i)*dialogMessageLineGap

		shadowOp := &text.DrawOptions{}
		shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
		shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
		shadowOp.GeoM.Translate(centerX+2, lineY+2)
		shadowOp.ColorScale.ScaleWithColor(color.RGBA{A: 150})
		text.Draw(s.scratch, line, s.messageFont, shadowOp)

		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(centerX, lineY)
		op.ColorScale.ScaleWithColor(dialogMessageColor)
		text.Draw(s.scratch, line, s.messageFont, op)
	}
}

// drawButtons 绘制对话框按钮
func (s *DialogRenderSystem) drawButtons(dialog *components.DialogComponent) {
	for i := range dialog.Buttons {
		btn := &dialog.Buttons[i]

		// 按下时下陷 2 像素
		pressOffsetY := 0.0
		if btn.State == components.UIClicked {
			pressOffsetY = 2.0
		}

		x := btn.X
		y := btn.Y + pressOffsetY

		fill := dialogButtonFillColor
		switch btn.State {
		case components.UIHovered:
			fill = color.RGBA{
				R: lightenChannel(fill.R, 26),
				G: lightenChannel(fill.G, 26),
				B: lightenChannel(fill.B, 26),
				A: fill.A,
			}
		case components.UIClicked:
			fill = color.RGBA{
				R: darkenChannel(fill.R, 26),
				G: darkenChannel(fill.G, 26),
				B: darkenChannel(fill.B, 26),
				A: fill.A,
			}
		}

		vector.DrawFilledRect(s.scratch, float32(x), float32(y), float32(btn.Width), float32(btn.Height), fill, true)

		border := color.RGBA{
			R: lightenChannel(fill.R, 50),
			G: lightenChannel(fill.G, 50),
			B: lightenChannel(fill.B, 50),
			A: 255,
		}
		vector.StrokeRect(s.scratch, float32(x)+0.5, float32(y)+0.5, float32(btn.Width)-1, float32(btn.Height)-1, 1.5, border, true)

		if s.buttonFont == nil || btn.Label == "" {
			continue
		}

		centerX := x + btn.Width/2
		centerY := y + btn.Height/2

		shadowOffsetY := 1.5
		visualCenterOffsetY := -shadowOffsetY / 2.0

		shadowOp := &text.DrawOptions{}
		shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
		shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
		shadowOp.GeoM.Translate(centerX+1.5, centerY+shadowOffsetY+visualCenterOffsetY)
		shadowOp.ColorScale.ScaleWithColor(color.RGBA{A: 150})
		text.Draw(s.scratch, btn.Label, s.buttonFont, shadowOp)

		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(centerX, centerY+visualCenterOffsetY)
		op.ColorScale.ScaleWithColor(dialogButtonTextColor)
		text.Draw(s.scratch, btn.Label, s.buttonFont, op)
	}
}
