package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/game"
	"github.com/gonewx/luckypick/pkg/utils"
)

// 输入框配色
var (
	inputBoxFillColor      = color.RGBA{R: 30, G: 36, B: 64, A: 255}
	inputBoxBorderColor    = color.RGBA{R: 96, G: 108, B: 160, A: 255}
	inputBoxFocusColor     = color.RGBA{R: 240, G: 205, B: 96, A: 255}
	inputPlaceholderColor  = color.RGBA{R: 120, G: 126, B: 150, A: 255}
	inputTextColor         = color.RGBA{R: 236, G: 240, B: 252, A: 255}
)

const (
	// 输入框文字字号与左右内边距
	inputFontSize    = 16.0
	inputTextPadding = 10.0
)

// TextInputRenderSystem 文本输入框渲染系统
// 负责绘制输入框背景、边框、文本和光标
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
	font          text.Face
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
func NewTextInputRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager) *TextInputRenderSystem {
	return &TextInputRenderSystem{
		entityManager: em,
		font:          rm.DefaultFace(inputFontSize),
	}
}

// Draw 绘制所有文本输入框
func (s *TextInputRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		s.drawInputBox(screen, input, pos)
	}
}

// drawInputBox 绘制单个输入框
func (s *TextInputRenderSystem) drawInputBox(screen *ebiten.Image, input *components.TextInputComponent, pos *components.PositionComponent) {
	x := pos.X
	y := pos.Y
	width := input.Width
	height := input.Height

	// 1. 背景与边框（聚焦时边框换成强调色并加粗）
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), inputBoxFillColor, true)

	borderColor := inputBoxBorderColor
	borderWidth := float32(1.0)
	if input.IsFocused {
		borderColor = inputBoxFocusColor
		borderWidth = 2.0
	}
	vector.StrokeRect(screen, float32(x)+0.5, float32(y)+0.5, float32(width)-1, float32(height)-1, borderWidth, borderColor, true)

	// 2. 文本或占位符
	textX := x + inputTextPadding
	textY := y + height/2
	maxTextWidth := width - inputTextPadding*2

	var shownText string
	if input.Text == "" {
		if input.Placeholder != "" && !input.IsFocused {
			s.drawText(screen, input.Placeholder, textX, textY, inputPlaceholderColor)
		}
	} else {
		// 光标固定在末尾，文本过长时显示尾部
		shownText = visibleTail(input.Text, s.font, maxTextWidth)
		s.drawText(screen, shownText, textX, textY, inputTextColor)
	}

	// 3. 光标（闪烁的竖线，始终位于文本末尾）
	if input.IsFocused && input.CursorVisible {
		cursorX := textX + utils.MeasureTextWidth(shownText, s.font)
		vector.StrokeLine(screen,
			float32(cursorX), float32(y+8),
			float32(cursorX), float32(y+height-8),
			1.5, inputTextColor, true)
	}
}

// drawText 绘制一行垂直居中的文本
func (s *TextInputRenderSystem) drawText(screen *ebiten.Image, txt string, x, y float64, clr color.Color) {
	if s.font == nil || txt == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, txt, s.font, op)
}

// visibleTail 返回在 maxWidth 内能显示的文本尾部
// 输入文本超宽时从头部开始裁剪，保证末尾（光标处）始终可见
func visibleTail(textStr string, face text.Face, maxWidth float64) string {
	if utils.MeasureTextWidth(textStr, face) <= maxWidth {
		return textStr
	}

	runes := []rune(textStr)
	for len(runes) > 1 {
		runes = runes[1:]
		if utils.MeasureTextWidth(string(runes), face) <= maxWidth {
			break
		}
	}
	return string(runes)
}
