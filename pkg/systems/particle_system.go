package systems

import (
	"math"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/ecs"
)

// ParticleSystem 粒子模拟系统
//
// 推进碎片、中奖爆发和彩带的物理积分与生命周期。
// 粒子批次由工厂一次性生成，本系统不做发射器逻辑。
//
// 每步积分顺序固定（位置 → 阻力 → 重力 → 自旋 → 透明度），
// 配合查询的稳定遍历顺序，同一种子和相同的 dt 序列逐位可复现。
type ParticleSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleSystem 创建粒子模拟系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{
		entityManager: em,
	}
}

// Update 推进所有粒子一个时间步
//
// 寿命到期的粒子销毁实体（位置随即冻结，不再出现在查询中）。
func (s *ParticleSystem) Update(deltaTime float64) {
	particles := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](s.entityManager)

	for _, id := range particles {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		particle.Age += deltaTime
		if particle.Age >= particle.Lifetime {
			s.entityManager.DestroyEntity(id)
			continue
		}

		// 位置用衰减前的速度推进
		pos.X += particle.VelocityX * deltaTime
		pos.Y += particle.VelocityY * deltaTime

		// 阻力按 60fps 基准折算到任意 dt
		drag := math.Pow(particle.Drag, 60*deltaTime)
		particle.VelocityX *= drag
		particle.VelocityY *= drag

		// 重力在阻力之后叠加
		particle.VelocityY += particle.Gravity * deltaTime

		particle.Rotation += particle.RotationSpeed * deltaTime

		// 透明度随寿命线性衰减
		particle.Alpha = 1.0 - particle.Age/particle.Lifetime
	}
}

// Count 返回存活粒子数量
func (s *ParticleSystem) Count() int {
	return len(ecs.GetEntitiesWith1[*components.ParticleComponent](s.entityManager))
}
