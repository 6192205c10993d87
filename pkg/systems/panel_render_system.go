package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/game"
	"github.com/gonewx/luckypick/pkg/utils"
)

// 选项面板配色
var (
	panelTitleColor        = color.RGBA{R: 236, G: 240, B: 252, A: 255}
	panelRowColor          = color.RGBA{R: 42, G: 50, B: 88, A: 255}
	panelRowBorderColor    = color.RGBA{R: 74, G: 86, B: 138, A: 255}
	panelRowTextColor      = color.RGBA{R: 236, G: 240, B: 252, A: 255}
	panelCountColor        = color.RGBA{R: 150, G: 158, B: 190, A: 255}
	removeButtonColor      = color.RGBA{R: 150, G: 74, B: 84, A: 255}
	removeButtonHoverColor = color.RGBA{R: 212, G: 96, B: 106, A: 255}
	removeButtonIdleColor  = color.RGBA{R: 96, G: 70, B: 82, A: 255}
)

const (
	panelTitleFontSize = 24.0
	panelRowFontSize   = 16.0
	panelCountFontSize = 13.0
	panelRowPadding    = 10.0
)

// PanelRenderSystem 选项面板渲染系统
// 负责绘制标题、选项列表和计数
//
// 选项行不是实体：每帧直接从 GameState 读取选项并绘制，
// 命中区域与 OptionPanelSystem 共用 config.OptionRowRect/RemoveButtonRect。
// 输入框和按钮由各自的渲染系统绘制。
type PanelRenderSystem struct {
	gameState *game.GameState
	titleFont text.Face
	rowFont   text.Face
	countFont text.Face
}

// NewPanelRenderSystem 创建选项面板渲染系统
func NewPanelRenderSystem(gs *game.GameState, rm *game.ResourceManager) *PanelRenderSystem {
	return &PanelRenderSystem{
		gameState: gs,
		titleFont: rm.DefaultFace(panelTitleFontSize),
		rowFont:   rm.DefaultFace(panelRowFontSize),
		countFont: rm.DefaultFace(panelCountFontSize),
	}
}

// Draw 绘制面板
func (s *PanelRenderSystem) Draw(screen *ebiten.Image) {
	s.drawTitle(screen)
	s.drawOptionRows(screen)
	s.drawOptionCount(screen)
}

// drawTitle 绘制顶部标题
func (s *PanelRenderSystem) drawTitle(screen *ebiten.Image) {
	if s.titleFont == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(config.GameWindowWidth)/2, config.TitleY)
	op.ColorScale.ScaleWithColor(panelTitleColor)
	text.Draw(screen, config.GameTitle, s.titleFont, op)
}

// drawOptionRows 绘制选项列表（每行一个选项 + 移除按钮）
func (s *PanelRenderSystem) drawOptionRows(screen *ebiten.Image) {
	count := s.gameState.Count()
	if count == 0 {
		return
	}

	pointer := utils.GetInputState()
	mx := float64(pointer.X)
	my := float64(pointer.Y)
	locked := s.gameState.IsLocked()

	for i := 0; i < count; i++ {
		rowX, rowY, rowW, rowH := config.OptionRowRect(i)

		// 行背景与边框
		vector.DrawFilledRect(screen, float32(rowX), float32(rowY), float32(rowW), float32(rowH), panelRowColor, true)
		vector.StrokeRect(screen, float32(rowX)+0.5, float32(rowY)+0.5, float32(rowW)-1, float32(rowH)-1, 1, panelRowBorderColor, true)

		// 选项文字（超宽时截断加省略号）
		option, _ := s.gameState.Option(i)
		if s.rowFont != nil {
			maxLabelWidth := rowW - config.RemoveButtonSize - panelRowPadding*3
			label := utils.EllipsizeText(option, s.rowFont, maxLabelWidth)

			op := &text.DrawOptions{}
			op.LayoutOptions.PrimaryAlign = text.AlignStart
			op.LayoutOptions.SecondaryAlign = text.AlignCenter
			op.GeoM.Translate(rowX+panelRowPadding, rowY+rowH/2)
			op.ColorScale.ScaleWithColor(panelRowTextColor)
			text.Draw(screen, label, s.rowFont, op)
		}

		s.drawRemoveButton(screen, i, mx, my, locked)
	}
}

// drawRemoveButton 绘制第 index 行的移除按钮（✕）
// 流程进行中（locked）按钮灰显且不响应悬停
func (s *PanelRenderSystem) drawRemoveButton(screen *ebiten.Image, index int, mx, my float64, locked bool) {
	x, y, w, h := config.RemoveButtonRect(index)

	fill := removeButtonColor
	if locked {
		fill = removeButtonIdleColor
	} else if utils.PointInRect(mx, my, x, y, w, h) {
		fill = removeButtonHoverColor
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fill, true)

	// ✕ 直接用两条对角线画，不依赖字体里有没有这个字形
	inset := float32(7.0)
	x0 := float32(x) + inset
	y0 := float32(y) + inset
	x1 := float32(x+w) - inset
	y1 := float32(y+h) - inset
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, panelRowTextColor, true)
	vector.StrokeLine(screen, x0, y1, x1, y0, 2, panelRowTextColor, true)
}

// drawOptionCount 绘制选项计数（列表下方）
func (s *PanelRenderSystem) drawOptionCount(screen *ebiten.Image) {
	if s.countFont == nil {
		return
	}

	count := s.gameState.Count()
	_, y, _, _ := config.OptionRowRect(count)

	label := fmt.Sprintf("%d / %d", count, config.MaxOptions)
	if count < config.MinOptions {
		label = fmt.Sprintf("%d / %d（至少 %d 个选项才能开始）", count, config.MaxOptions, config.MinOptions)
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignStart
	op.LayoutOptions.SecondaryAlign = text.AlignStart
	op.GeoM.Translate(config.PanelX+2, y+4)
	op.ColorScale.ScaleWithColor(panelCountColor)
	text.Draw(screen, label, s.countFont, op)
}
