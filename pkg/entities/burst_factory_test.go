package entities

import (
	"math"
	"testing"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
)

// collectParticles 按实体顺序取出粒子和位置
func collectParticles(em *ecs.EntityManager, ids []ecs.EntityID) ([]*components.ParticleComponent, []*components.PositionComponent) {
	particles := make([]*components.ParticleComponent, 0, len(ids))
	positions := make([]*components.PositionComponent, 0, len(ids))
	for _, id := range ids {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		particles = append(particles, p)
		positions = append(positions, pos)
	}
	return particles, positions
}

// TestShatterBurstDeterministic 同一种子的碎片批次逐字段一致
func TestShatterBurstDeterministic(t *testing.T) {
	emA := ecs.NewEntityManager()
	emB := ecs.NewEntityManager()

	idsA := NewShatterBurst(emA, 500, 280, 12345)
	idsB := NewShatterBurst(emB, 500, 280, 12345)

	if len(idsA) != config.FragmentsPerCard || len(idsB) != config.FragmentsPerCard {
		t.Fatalf("碎片数 %d / %d, 期望 %d", len(idsA), len(idsB), config.FragmentsPerCard)
	}

	particlesA, positionsA := collectParticles(emA, idsA)
	particlesB, positionsB := collectParticles(emB, idsB)

	for i := range particlesA {
		a, b := particlesA[i], particlesB[i]
		if *a != *b {
			t.Errorf("碎片 %d 字段不一致: %+v != %+v", i, a, b)
		}
		if *positionsA[i] != *positionsB[i] {
			t.Errorf("碎片 %d 位置不一致", i)
		}
	}
}

// TestShatterBurstSeedSensitivity 不同种子产生不同批次
func TestShatterBurstSeedSensitivity(t *testing.T) {
	emA := ecs.NewEntityManager()
	emB := ecs.NewEntityManager()

	particlesA, _ := collectParticles(emA, NewShatterBurst(emA, 500, 280, 1))
	particlesB, _ := collectParticles(emB, NewShatterBurst(emB, 500, 280, 2))

	same := 0
	for i := range particlesA {
		if particlesA[i].VelocityX == particlesB[i].VelocityX &&
			particlesA[i].VelocityY == particlesB[i].VelocityY {
			same++
		}
	}
	if same == len(particlesA) {
		t.Error("不同种子的批次速度完全相同")
	}
}

// TestShatterBurstFields 碎片字段取自调校参数
func TestShatterBurstFields(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.ActiveTuning.Fragment

	particles, positions := collectParticles(em, NewShatterBurst(em, 500, 280, 7))

	for i, p := range particles {
		if p.Kind != components.ParticleFragment {
			t.Errorf("碎片 %d 种类 = %v", i, p.Kind)
		}
		if p.Lifetime != tuning.Lifetime || p.Gravity != tuning.Gravity || p.Drag != tuning.Drag {
			t.Errorf("碎片 %d 物理参数与调校不符", i)
		}

		speed := math.Hypot(p.VelocityX, p.VelocityY)
		if speed < tuning.SpeedMin-1e-9 || speed > tuning.SpeedMax+1e-9 {
			t.Errorf("碎片 %d 初速 %f 超出 [%f, %f]", i, speed, tuning.SpeedMin, tuning.SpeedMax)
		}

		// 初始位置贴着卡片轮廓散开
		if math.Abs(positions[i].X-500) > config.CardWidth {
			t.Errorf("碎片 %d X 偏移过大: %f", i, positions[i].X)
		}
		if math.Abs(positions[i].Y-280) > config.CardHeight {
			t.Errorf("碎片 %d Y 偏移过大: %f", i, positions[i].Y)
		}
	}
}

// TestWinnerBurstUpwardBias 中奖爆发的向上偏置精确作用在初速上
func TestWinnerBurstUpwardBias(t *testing.T) {
	original := config.ActiveTuning.Burst.UpwardBias
	defer func() { config.ActiveTuning.Burst.UpwardBias = original }()

	emA := ecs.NewEntityManager()
	particlesA, _ := collectParticles(emA, NewWinnerBurst(emA, 400, 300, 99))

	config.ActiveTuning.Burst.UpwardBias = 0
	emB := ecs.NewEntityManager()
	particlesB, _ := collectParticles(emB, NewWinnerBurst(emB, 400, 300, 99))

	if len(particlesA) != config.WinnerBurstParticles {
		t.Fatalf("粒子数 %d, 期望 %d", len(particlesA), config.WinnerBurstParticles)
	}

	for i := range particlesA {
		diff := particlesB[i].VelocityY - particlesA[i].VelocityY
		if math.Abs(diff-original) > 1e-9 {
			t.Errorf("粒子 %d 偏置差 %f, 期望 %f", i, diff, original)
		}
		if particlesA[i].VelocityX != particlesB[i].VelocityX {
			t.Errorf("粒子 %d 横向速度不应受偏置影响", i)
		}
	}
}

// TestConfettiCone 彩带从底部沿锥形向上喷出
func TestConfettiCone(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.ActiveTuning.Confetti

	particles, positions := collectParticles(em, NewConfettiBurst(em, 2024))

	if len(particles) != config.ConfettiParticles {
		t.Fatalf("彩带数 %d, 期望 %d", len(particles), config.ConfettiParticles)
	}

	for i, p := range particles {
		if p.Kind != components.ParticleConfetti {
			t.Errorf("彩带 %d 种类 = %v", i, p.Kind)
		}

		// ±30° 锥形：出射一律向上，横向分量不超过一半速度
		if p.VelocityY >= 0 {
			t.Errorf("彩带 %d 初速向下: vy=%f", i, p.VelocityY)
		}
		speed := math.Hypot(p.VelocityX, p.VelocityY)
		if math.Abs(p.VelocityX) > speed*0.5+1e-9 {
			t.Errorf("彩带 %d 偏出锥形: vx=%f speed=%f", i, p.VelocityX, speed)
		}
		if speed < tuning.SpeedMin-1e-9 || speed > tuning.SpeedMax+1e-9 {
			t.Errorf("彩带 %d 初速 %f 超出范围", i, speed)
		}

		if p.Lifetime < tuning.LifetimeMin-1e-9 || p.Lifetime > tuning.LifetimeMax+1e-9 {
			t.Errorf("彩带 %d 寿命 %f 超出 [%f, %f]", i, p.Lifetime, tuning.LifetimeMin, tuning.LifetimeMax)
		}

		// 从舞台底部附近出发
		if positions[i].Y < float64(config.GameWindowHeight)-40 {
			t.Errorf("彩带 %d 起点 Y=%f 不在底部", i, positions[i].Y)
		}

		// 配色必须来自调色板
		found := false
		for _, c := range confettiPalette {
			if p.Red == c[0] && p.Green == c[1] && p.Blue == c[2] {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("彩带 %d 颜色 (%f,%f,%f) 不在调色板中", i, p.Red, p.Green, p.Blue)
		}
	}
}
