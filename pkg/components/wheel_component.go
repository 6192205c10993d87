package components

// WheelComponent 转盘组件
//
// 转盘是结果的可视化而非决定者：中奖扇区在旋转开始前就已确定，
// 系统据此反推一个落在该扇区内的目标转角。
// 旋转期间 Rotation 单调递增，时长结束后精确等于 TargetRotation。
type WheelComponent struct {
	// Labels 扇区文字（旋转开始时的选项快照）
	Labels []string

	// Rotation 当前转角（弧度，顺时针为正）
	Rotation float64

	// StartRotation 本次旋转的起始转角
	StartRotation float64

	// TargetRotation 本次旋转的终点转角（绝对值，含完整圈数）
	TargetRotation float64

	// WinnerSegment 预定的中奖扇区下标
	WinnerSegment int

	// SpinTime 旋转累计时长（秒）
	SpinTime float64

	// Spinning 是否正在旋转
	Spinning bool

	// Highlighting 停止后的扇区高亮渐显是否进行中
	Highlighting bool

	// HighlightTime 高亮渐显累计时长（秒）
	HighlightTime float64

	// HighlightAlpha 高亮强度 0-1，渲染系统只读
	HighlightAlpha float64

	// Generation 旋转调度时捕获的流程代数
	// 完成回调触发前比对当前代数，不一致则丢弃
	Generation int

	// OnComplete 高亮完成后的回调（至多触发一次）
	OnComplete func()

	// CompleteFired 回调是否已触发
	CompleteFired bool
}
