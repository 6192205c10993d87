package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/game"
	"github.com/gonewx/luckypick/pkg/utils"
)

// 卡片视觉常量
var (
	// 普通卡片底色与边框
	cardFillColor   = color.RGBA{R: 58, G: 70, B: 122, A: 255}
	cardBorderColor = color.RGBA{R: 128, G: 146, B: 210, A: 255}

	// 中奖卡片底色与边框（金色系）
	cardWinnerFillColor   = color.RGBA{R: 150, G: 118, B: 36, A: 255}
	cardWinnerBorderColor = color.RGBA{R: 240, G: 205, B: 96, A: 255}

	// 标签文字颜色
	cardLabelColor = color.RGBA{R: 236, G: 240, B: 252, A: 255}
)

// 卡片标签字号
const cardLabelFontSize = 18.0

// CardRenderSystem 卡片渲染系统
//
// 卡片先画进一张固定尺寸的草稿图（底色 + 边框 + 标签），
// 再按动画系统写入的变换（缩放/旋转/透明度）整体贴到屏幕上。
// 中奖卡片在本体下方叠一层加法混合的金色光晕，强度跟随 Glow。
type CardRenderSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	labelFace       text.Face

	// scratch 卡片草稿图（CardWidth × CardHeight），每张卡片绘制前清空复用
	scratch *ebiten.Image
}

// NewCardRenderSystem 创建卡片渲染系统
func NewCardRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager) *CardRenderSystem {
	return &CardRenderSystem{
		entityManager:   em,
		resourceManager: rm,
		labelFace:       rm.DefaultFace(cardLabelFontSize),
		scratch:         ebiten.NewImage(int(config.CardWidth), int(config.CardHeight)),
	}
}

// Draw 渲染所有可见卡片
func (s *CardRenderSystem) Draw(screen *ebiten.Image) {
	cards := ecs.GetEntitiesWith2[*components.CardComponent, *components.PositionComponent](s.entityManager)

	for _, id := range cards {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if card.Hidden || card.Alpha <= 0 || card.Scale <= 0 {
			continue
		}

		if card.Glow > 0 {
			s.drawGlow(screen, card, pos)
		}
		s.drawCard(screen, card, pos)
	}
}

// drawGlow 在卡片下方叠加金色光晕
func (s *CardRenderSystem) drawGlow(screen *ebiten.Image, card *components.CardComponent, pos *components.PositionComponent) {
	size := config.CardWidth * 1.5 * card.Scale

	op := &ebiten.DrawImageOptions{}
	scale := size / glowDotSize
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X-size/2, pos.Y-size/2)

	a := float32(card.Glow * 0.35 * card.Alpha)
	op.ColorScale.Scale(1.0*a, 0.84*a, 0.3*a, a)
	op.Blend = additiveBlend

	screen.DrawImage(glowDotImage, op)
}

// drawCard 绘制卡片本体
func (s *CardRenderSystem) drawCard(screen *ebiten.Image, card *components.CardComponent, pos *components.PositionComponent) {
	w := float64(config.CardWidth)
	h := float64(config.CardHeight)

	fill, border := cardFillColor, cardBorderColor
	if card.Role == components.CardRoleWinner {
		fill, border = cardWinnerFillColor, cardWinnerBorderColor
	}

	// 草稿图上画卡面
	s.scratch.Clear()
	vector.DrawFilledRect(s.scratch, 0, 0, float32(w), float32(h), fill, true)
	vector.StrokeRect(s.scratch, 1, 1, float32(w)-2, float32(h)-2, 2, border, true)

	label := utils.EllipsizeText(card.Label, s.labelFace, w-16)
	textOp := &text.DrawOptions{}
	textOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	textOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	textOp.GeoM.Translate(w/2, h/2)
	textOp.ColorScale.ScaleWithColor(cardLabelColor)
	text.Draw(s.scratch, label, s.labelFace, textOp)

	// 整体按动画变换贴到屏幕
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(card.Scale, card.Scale)
	op.GeoM.Rotate(card.Rotation)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleAlpha(float32(card.Alpha))
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(s.scratch, op)
}
