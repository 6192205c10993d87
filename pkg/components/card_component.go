package components

// CardRole 卡片在当前周期中的角色
type CardRole int

const (
	// CardRoleNormal 普通卡片（结果未揭晓）
	CardRoleNormal CardRole = iota

	// CardRoleWinner 中奖卡片
	CardRoleWinner

	// CardRoleLoser 落选卡片
	CardRoleLoser
)

// CardComponent 选项卡片组件
//
// 槽位（BaseX/BaseY/SlotAngle）是卡片在空闲环上的基准位置，
// 每帧的实际变换由 CardAnimationSystem 根据阶段写入
// Scale/Rotation/Alpha/Glow 和 PositionComponent，渲染系统只读。
type CardComponent struct {
	// Label 选项文字
	Label string

	// Index 选项下标（与 GameState 中的顺序一致）
	Index int

	// Role 本周期角色，揭晓时由流程系统写入
	Role CardRole

	// 空闲环基准槽位
	BaseX     float64
	BaseY     float64
	SlotAngle float64

	// FloatPhase 漂浮动画的相位偏移（由槽位种子导出，卡片间错开）
	FloatPhase float64

	// 当前变换
	Scale    float64
	Rotation float64 // 弧度
	Alpha    float64
	Glow     float64 // 金色光晕强度 0-1，仅中奖卡片非零

	// 中奖弹簧状态（harmonica 弹簧的速度项）
	ScaleVelocity float64

	// RevealDone 中奖弹簧首次安定后置位，保证完成事件只发一次
	RevealDone bool

	// Hidden 落选爆裂后隐藏卡片本体（碎片接管视觉）
	Hidden bool
}
