package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningConfig 动画手感参数
//
// 这些参数只影响视觉效果的手感（速度、重力、振幅），不影响流程语义。
// 内置默认值即最终调校结果；需要微调时可通过 --tuning 指定 YAML 文件覆盖。
//
// 配置文件示例: data/tuning.yaml
type TuningConfig struct {
	// Fragment 落选卡片碎片参数
	Fragment FragmentTuning `yaml:"fragment"`

	// Burst 中奖爆发粒子参数
	Burst BurstTuning `yaml:"burst"`

	// Confetti 彩带参数
	Confetti ConfettiTuning `yaml:"confetti"`

	// Card 卡片动画参数
	Card CardTuning `yaml:"card"`

	// Wheel 转盘参数
	Wheel WheelTuning `yaml:"wheel"`
}

// FragmentTuning 碎片物理参数
type FragmentTuning struct {
	// SpeedMin 初速下限（像素/秒）
	SpeedMin float64 `yaml:"speedMin"`

	// SpeedMax 初速上限（像素/秒）
	SpeedMax float64 `yaml:"speedMax"`

	// Gravity 重力加速度（像素/秒²，屏幕Y轴向下为正）
	Gravity float64 `yaml:"gravity"`

	// Drag 每帧速度衰减系数（60fps基准，按 drag^(60*dt) 应用）
	Drag float64 `yaml:"drag"`

	// SpinMax 旋转角速度上限（弧度/秒，取值区间为 ±SpinMax）
	SpinMax float64 `yaml:"spinMax"`

	// Lifetime 碎片存活时长（秒）
	Lifetime float64 `yaml:"lifetime"`
}

// BurstTuning 中奖爆发粒子参数
type BurstTuning struct {
	// SpeedMin 初速下限（像素/秒）
	SpeedMin float64 `yaml:"speedMin"`

	// SpeedMax 初速上限（像素/秒）
	SpeedMax float64 `yaml:"speedMax"`

	// Gravity 重力加速度（像素/秒²），比碎片轻，粒子上浮感更强
	Gravity float64 `yaml:"gravity"`

	// Drag 每帧速度衰减系数
	Drag float64 `yaml:"drag"`

	// UpwardBias 初速度的向上偏置（像素/秒）
	UpwardBias float64 `yaml:"upwardBias"`

	// Lifetime 粒子存活时长（秒）
	Lifetime float64 `yaml:"lifetime"`
}

// ConfettiTuning 彩带参数
type ConfettiTuning struct {
	// SpeedMin 喷射初速下限（像素/秒）
	SpeedMin float64 `yaml:"speedMin"`

	// SpeedMax 喷射初速上限（像素/秒）
	SpeedMax float64 `yaml:"speedMax"`

	// Gravity 重力加速度（像素/秒²）
	Gravity float64 `yaml:"gravity"`

	// Drag 每帧速度衰减系数
	Drag float64 `yaml:"drag"`

	// LifetimeMin 存活时长下限（秒）
	LifetimeMin float64 `yaml:"lifetimeMin"`

	// LifetimeMax 存活时长上限（秒）
	LifetimeMax float64 `yaml:"lifetimeMax"`
}

// CardTuning 卡片动画参数
type CardTuning struct {
	// FloatAmplitude 空闲漂浮振幅（像素）
	FloatAmplitude float64 `yaml:"floatAmplitude"`

	// FloatSpeed 空闲漂浮角速度（弧度/秒）
	FloatSpeed float64 `yaml:"floatSpeed"`

	// TiltAmplitude 空闲摆动振幅（弧度）
	TiltAmplitude float64 `yaml:"tiltAmplitude"`

	// OrbitSpeed 聚拢阶段的环绕角速度（弧度/秒）
	OrbitSpeed float64 `yaml:"orbitSpeed"`

	// GatherShrink 聚拢终点的卡片缩放
	GatherShrink float64 `yaml:"gatherShrink"`

	// WinnerScale 中奖卡片的目标缩放
	WinnerScale float64 `yaml:"winnerScale"`

	// SpringFrequency 中奖弹簧的角频率
	SpringFrequency float64 `yaml:"springFrequency"`

	// SpringDamping 中奖弹簧的阻尼比（<1 产生过冲回弹）
	SpringDamping float64 `yaml:"springDamping"`
}

// WheelTuning 转盘参数
type WheelTuning struct {
	// ExtraRotationsMin 最少完整圈数
	ExtraRotationsMin float64 `yaml:"extraRotationsMin"`

	// ExtraRotationsRange 额外圈数的随机范围（圈）
	ExtraRotationsRange float64 `yaml:"extraRotationsRange"`
}

// DefaultTuning 返回内置默认参数
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		Fragment: FragmentTuning{
			SpeedMin: 120.0,
			SpeedMax: 300.0,
			Gravity:  588.0,
			Drag:     0.98,
			SpinMax:  6.28,
			Lifetime: 1.0,
		},
		Burst: BurstTuning{
			SpeedMin:   90.0,
			SpeedMax:   240.0,
			Gravity:    180.0,
			Drag:       0.985,
			UpwardBias: 120.0,
			Lifetime:   1.5,
		},
		Confetti: ConfettiTuning{
			SpeedMin:    180.0,
			SpeedMax:    420.0,
			Gravity:     300.0,
			Drag:        0.99,
			LifetimeMin: 2.0,
			LifetimeMax: 3.0,
		},
		Card: CardTuning{
			FloatAmplitude:  6.0,
			FloatSpeed:      1.6,
			TiltAmplitude:   0.05,
			OrbitSpeed:      3.2,
			GatherShrink:    0.35,
			WinnerScale:     1.35,
			SpringFrequency: 6.0,
			SpringDamping:   0.5,
		},
		Wheel: WheelTuning{
			ExtraRotationsMin:   4.0,
			ExtraRotationsRange: 2.0,
		},
	}
}

// ActiveTuning 当前生效的手感参数
// main 在创建场景之前可用 LoadTuningFile 替换；系统和工厂只读
var ActiveTuning = DefaultTuning()

// LoadTuning 从 YAML 文件加载手感参数
// 以默认值为基底，文件只需覆盖想改的字段
func LoadTuning(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}

	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return cfg, nil
}

// LoadTuningFile 加载手感参数并替换 ActiveTuning
// 必须在场景创建之前调用
func LoadTuningFile(path string) error {
	cfg, err := LoadTuning(path)
	if err != nil {
		return err
	}
	ActiveTuning = cfg
	return nil
}

// Validate 验证参数有效性
//
// 检查速度区间、存活时长和弹簧参数是否在合理范围内。
func (c *TuningConfig) Validate() error {
	if c.Fragment.SpeedMin > c.Fragment.SpeedMax {
		return fmt.Errorf("fragment speed range invalid: min(%.1f) > max(%.1f)",
			c.Fragment.SpeedMin, c.Fragment.SpeedMax)
	}
	if c.Fragment.Drag <= 0 || c.Fragment.Drag > 1 {
		return fmt.Errorf("fragment drag should be in (0, 1], got %.3f", c.Fragment.Drag)
	}
	if c.Fragment.Lifetime <= 0 {
		return fmt.Errorf("fragment lifetime should be positive, got %.2f", c.Fragment.Lifetime)
	}

	if c.Burst.SpeedMin > c.Burst.SpeedMax {
		return fmt.Errorf("burst speed range invalid: min(%.1f) > max(%.1f)",
			c.Burst.SpeedMin, c.Burst.SpeedMax)
	}
	if c.Burst.Drag <= 0 || c.Burst.Drag > 1 {
		return fmt.Errorf("burst drag should be in (0, 1], got %.3f", c.Burst.Drag)
	}
	if c.Burst.Lifetime <= 0 {
		return fmt.Errorf("burst lifetime should be positive, got %.2f", c.Burst.Lifetime)
	}

	if c.Confetti.SpeedMin > c.Confetti.SpeedMax {
		return fmt.Errorf("confetti speed range invalid: min(%.1f) > max(%.1f)",
			c.Confetti.SpeedMin, c.Confetti.SpeedMax)
	}
	if c.Confetti.LifetimeMin > c.Confetti.LifetimeMax {
		return fmt.Errorf("confetti lifetime range invalid: min(%.1f) > max(%.1f)",
			c.Confetti.LifetimeMin, c.Confetti.LifetimeMax)
	}
	if c.Confetti.Drag <= 0 || c.Confetti.Drag > 1 {
		return fmt.Errorf("confetti drag should be in (0, 1], got %.3f", c.Confetti.Drag)
	}

	if c.Card.WinnerScale < 1.0 {
		return fmt.Errorf("winner scale should be >= 1.0, got %.2f", c.Card.WinnerScale)
	}
	if c.Card.SpringFrequency <= 0 {
		return fmt.Errorf("spring frequency should be positive, got %.2f", c.Card.SpringFrequency)
	}
	if c.Card.SpringDamping <= 0 {
		return fmt.Errorf("spring damping should be positive, got %.2f", c.Card.SpringDamping)
	}

	if c.Wheel.ExtraRotationsMin < 1 {
		return fmt.Errorf("wheel should spin at least 1 full rotation, got %.1f", c.Wheel.ExtraRotationsMin)
	}
	if c.Wheel.ExtraRotationsRange < 0 {
		return fmt.Errorf("wheel rotation range should be non-negative, got %.1f", c.Wheel.ExtraRotationsRange)
	}

	return nil
}
