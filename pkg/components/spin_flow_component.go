package components

// AnimationPhase 抽取流程所处的阶段
//
// 阶段严格向前推进：idle → spinning → revealing → result，
// 只有重置（或"再来一次"）能回到 idle。
type AnimationPhase string

const (
	// PhaseIdle 空闲：编辑选项，卡片漂浮
	PhaseIdle AnimationPhase = "idle"

	// PhaseSpinning 旋转中：卡片聚拢/转盘加速减速，输入界面锁定
	PhaseSpinning AnimationPhase = "spinning"

	// PhaseRevealing 揭晓中：落选卡片爆裂，中奖卡片弹起
	PhaseRevealing AnimationPhase = "revealing"

	// PhaseResult 结果：彩带+对话框，等待"再来一次"或"重置"
	PhaseResult AnimationPhase = "result"
)

// SpinFlowComponent 抽取流程组件
//
// 全场唯一（由 PickerScene 创建单个流程实体）。
// 所有延迟效果在调度时记录 Generation，触发时比对：
// 不一致说明属于已被取消/重置的旧周期，直接丢弃。
// 这取代了布尔完成标志，天然覆盖"重置后旧回调迟到"的情况。
type SpinFlowComponent struct {
	// Phase 当前阶段
	Phase AnimationPhase

	// PhaseTime 当前阶段的累计时长（秒）
	// 由系统按 dt 累加，阶段切换时清零；流程里没有任何挂钟定时器
	PhaseTime float64

	// Generation 周期代数，每次开始新周期（决定/再来一次/重置）时单调递增
	// 周期内的阶段推进不改变代数，否则跨阶段存活的延迟效果会误伤自己
	Generation int

	// WinnerIndex 中奖选项下标，-1 表示未定
	// 每个周期在 spinning → revealing 时写入一次，重置时清回 -1
	WinnerIndex int

	// OptionCount 本周期锁定的选项数量
	// spinning 开始时拍快照；流程期间选项列表不可变
	OptionCount int

	// SessionSeed 本周期粒子/布局种子的基底
	// 固定种子启动时来自 --seed，否则来自时间
	SessionSeed uint64
}

// NewSpinFlowComponent 创建初始状态的流程组件
func NewSpinFlowComponent(sessionSeed uint64) *SpinFlowComponent {
	return &SpinFlowComponent{
		Phase:       PhaseIdle,
		WinnerIndex: -1,
		SessionSeed: sessionSeed,
	}
}
