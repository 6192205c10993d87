package components

// ParticleKind 粒子种类，决定渲染形状和配色来源
type ParticleKind int

const (
	// ParticleFragment 落选卡片的爆裂碎片（卡片色小矩形）
	ParticleFragment ParticleKind = iota

	// ParticleBurst 中奖爆发的光点（金色圆点，上浮）
	ParticleBurst

	// ParticleConfetti 彩带（彩色旋转长条）
	ParticleConfetti
)

// ParticleComponent represents a single particle instance in the particle system.
// It stores all the runtime state for an individual particle: velocity, visual
// properties, and lifecycle information. Position lives in the separate
// PositionComponent.
//
// This is a pure data component following ECS principles - it contains no methods.
type ParticleComponent struct {
	// Kind 粒子种类
	Kind ParticleKind

	// Velocity (速度, 像素/秒)
	VelocityX float64
	VelocityY float64

	// Rotation (旋转, 弧度)
	Rotation      float64 // 当前角度
	RotationSpeed float64 // 角速度（弧度/秒）

	// Scale (缩放倍数)
	Scale float64 // 1.0 = 原始大小

	// Transparency (透明度, 0-1)
	Alpha float64

	// Color channels (颜色通道, 0-1)
	Red   float64
	Green float64
	Blue  float64

	// Size (渲染尺寸, 像素)
	Width  float64
	Height float64

	// Physics (物理参数, 生成时从 TuningConfig 拷贝)
	Gravity float64 // 重力加速度（像素/秒²，Y轴向下为正）
	Drag    float64 // 每帧速度衰减系数（60fps基准，按 drag^(60*dt) 应用；1.0 = 不衰减）

	// Lifecycle (生命周期, 秒)
	Age      float64 // 已存活时长
	Lifetime float64 // 总寿命，到期由粒子系统销毁实体
}
