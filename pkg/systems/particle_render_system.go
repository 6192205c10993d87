package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/ecs"
)

// 中奖爆发光点的贴图尺寸与半径
const (
	glowDotSize   = 16
	glowDotRadius = 7
)

// glowDotImage 圆形光点贴图，启动时画一次，所有爆发粒子共用
var glowDotImage *ebiten.Image

func init() {
	glowDotImage = ebiten.NewImage(glowDotSize, glowDotSize)
	vector.DrawFilledCircle(glowDotImage, glowDotSize/2, glowDotSize/2, glowDotRadius,
		color.RGBA{R: 255, G: 255, B: 255, A: 255}, true)
}

// additiveBlend 加法混合（发光粒子用，叠加处越叠越亮）
var additiveBlend = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// ParticleRenderSystem 粒子渲染系统
//
// 按粒子种类选择画法：
//   - 碎片/彩带：旋转矩形，普通 Alpha 混合
//   - 中奖爆发：圆形光点，加法混合（金色光斑互相叠亮）
//
// 只读组件状态，所有运动和淡出由 ParticleSystem 写入。
type ParticleRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleRenderSystem 创建粒子渲染系统
func NewParticleRenderSystem(em *ecs.EntityManager) *ParticleRenderSystem {
	return &ParticleRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有存活粒子
func (s *ParticleRenderSystem) Draw(screen *ebiten.Image) {
	particles := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](s.entityManager)

	for _, id := range particles {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if particle.Alpha <= 0 {
			continue
		}

		switch particle.Kind {
		case components.ParticleBurst:
			s.drawGlowDot(screen, particle, pos)
		default:
			fillRotatedRect(screen, pos.X, pos.Y,
				particle.Width*particle.Scale, particle.Height*particle.Scale,
				particle.Rotation,
				float32(particle.Red), float32(particle.Green), float32(particle.Blue),
				float32(particle.Alpha))
		}
	}
}

// drawGlowDot 绘制一个加法混合的光点
func (s *ParticleRenderSystem) drawGlowDot(screen *ebiten.Image, particle *components.ParticleComponent, pos *components.PositionComponent) {
	size := particle.Width * particle.Scale
	if size <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	scale := size / glowDotSize
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X-size/2, pos.Y-size/2)

	a := float32(particle.Alpha)
	op.ColorScale.Scale(float32(particle.Red)*a, float32(particle.Green)*a, float32(particle.Blue)*a, a)
	op.Blend = additiveBlend

	screen.DrawImage(glowDotImage, op)
}
