package entities

import (
	"math"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/utils"
)

// confettiPalette 彩带配色（0-1 归一化 RGB）
var confettiPalette = [][3]float64{
	{0.95, 0.30, 0.35}, // 红
	{0.98, 0.70, 0.20}, // 橙
	{0.98, 0.88, 0.30}, // 黄
	{0.35, 0.80, 0.45}, // 绿
	{0.30, 0.60, 0.95}, // 蓝
	{0.75, 0.45, 0.92}, // 紫
}

// NewShatterBurst 创建一批落选卡片的爆裂碎片
//
// 同一种子两次调用产生完全相同的批次（位置、速度、颜色逐字节一致）。
// 每个碎片按固定顺序消耗随机数：角度、速度、离心距离、自旋、尺寸、色深。
//
// 参数：
//   - em: 实体管理器
//   - x, y: 卡片中心（碎片从这里向外飞散）
//   - seed: 批次种子（由卡片槽位导出，重复渲染画面一致）
//
// 返回：
//   - 创建的碎片实体ID列表（固定 config.FragmentsPerCard 个）
func NewShatterBurst(em *ecs.EntityManager, x, y float64, seed uint64) []ecs.EntityID {
	if em == nil {
		return nil
	}

	t := config.ActiveTuning.Fragment
	rng := utils.NewSeededRand(seed)
	ids := make([]ecs.EntityID, 0, config.FragmentsPerCard)

	for i := 0; i < config.FragmentsPerCard; i++ {
		angle := rng.Angle()
		speed := rng.Range(t.SpeedMin, t.SpeedMax)
		dist := rng.Range(0, config.CardWidth*0.4)
		spin := rng.Range(-t.SpinMax, t.SpinMax)
		size := rng.Range(5.0, 13.0)
		shade := rng.Range(0.85, 1.0)

		id := em.CreateEntity()

		// 初始位置在卡片覆盖范围内，沿飞散方向离开中心
		// 纵向压扁到卡片宽高比，碎片云跟卡片轮廓贴合
		ecs.AddComponent(em, id, &components.PositionComponent{
			X: x + math.Cos(angle)*dist,
			Y: y + math.Sin(angle)*dist*(config.CardHeight/config.CardWidth),
		})

		ecs.AddComponent(em, id, &components.ParticleComponent{
			Kind:          components.ParticleFragment,
			VelocityX:     math.Cos(angle) * speed,
			VelocityY:     math.Sin(angle) * speed,
			Rotation:      angle,
			RotationSpeed: spin,
			Scale:         1.0,
			Alpha:         1.0,
			Red:           0.78 * shade,
			Green:         0.86 * shade,
			Blue:          0.95 * shade,
			Width:         size,
			Height:        size * 0.8,
			Gravity:       t.Gravity,
			Drag:          t.Drag,
			Lifetime:      t.Lifetime,
		})

		ids = append(ids, id)
	}

	return ids
}

// NewWinnerBurst 创建中奖卡片的金色爆发粒子
//
// 粒子向四周飞散并带向上偏置，重力较轻，上浮感强。
// 随机数消耗顺序：角度、速度、尺寸、色深。
//
// 参数：
//   - em: 实体管理器
//   - x, y: 中奖卡片中心
//   - seed: 批次种子
func NewWinnerBurst(em *ecs.EntityManager, x, y float64, seed uint64) []ecs.EntityID {
	if em == nil {
		return nil
	}

	t := config.ActiveTuning.Burst
	rng := utils.NewSeededRand(seed)
	ids := make([]ecs.EntityID, 0, config.WinnerBurstParticles)

	for i := 0; i < config.WinnerBurstParticles; i++ {
		angle := rng.Angle()
		speed := rng.Range(t.SpeedMin, t.SpeedMax)
		size := rng.Range(3.0, 7.0)
		shade := rng.Range(0.9, 1.0)

		id := em.CreateEntity()

		ecs.AddComponent(em, id, &components.PositionComponent{
			X: x,
			Y: y,
		})

		ecs.AddComponent(em, id, &components.ParticleComponent{
			Kind:          components.ParticleBurst,
			VelocityX:     math.Cos(angle) * speed,
			VelocityY:     math.Sin(angle)*speed - t.UpwardBias,
			Scale:         1.0,
			Alpha:         1.0,
			Red:           1.0 * shade,
			Green:         0.84 * shade,
			Blue:          0.25 * shade,
			Width:         size,
			Height:        size,
			Gravity:       t.Gravity,
			Drag:          t.Drag,
			Lifetime:      t.Lifetime,
		})

		ids = append(ids, id)
	}

	return ids
}

// NewConfettiBurst 创建结果揭晓的彩带喷泉
//
// 彩带从舞台底部沿 ±30° 锥形向上喷出，翻滚着落下。
// 随机数消耗顺序：锥内角度、速度、横向抖动、自旋、宽、高、配色、寿命。
//
// 参数：
//   - em: 实体管理器
//   - seed: 批次种子
func NewConfettiBurst(em *ecs.EntityManager, seed uint64) []ecs.EntityID {
	if em == nil {
		return nil
	}

	t := config.ActiveTuning.Confetti
	rng := utils.NewSeededRand(seed)
	ids := make([]ecs.EntityID, 0, config.ConfettiParticles)

	originX := float64(config.StageCenterX)
	originY := float64(config.GameWindowHeight) - 20

	for i := 0; i < config.ConfettiParticles; i++ {
		angle := -math.Pi/2 + rng.Range(-math.Pi/6, math.Pi/6)
		speed := rng.Range(t.SpeedMin, t.SpeedMax)
		jitter := rng.Range(-30.0, 30.0)
		spin := rng.Range(-8.0, 8.0)
		width := rng.Range(5.0, 8.0)
		height := rng.Range(10.0, 16.0)
		color := confettiPalette[rng.IntN(len(confettiPalette))]
		lifetime := rng.Range(t.LifetimeMin, t.LifetimeMax)

		id := em.CreateEntity()

		ecs.AddComponent(em, id, &components.PositionComponent{
			X: originX + jitter,
			Y: originY,
		})

		ecs.AddComponent(em, id, &components.ParticleComponent{
			Kind:          components.ParticleConfetti,
			VelocityX:     math.Cos(angle) * speed,
			VelocityY:     math.Sin(angle) * speed,
			RotationSpeed: spin,
			Scale:         1.0,
			Alpha:         1.0,
			Red:           color[0],
			Green:         color[1],
			Blue:          color[2],
			Width:         width,
			Height:        height,
			Gravity:       t.Gravity,
			Drag:          t.Drag,
			Lifetime:      lifetime,
		})

		ids = append(ids, id)
	}

	return ids
}
