package components

// TextInputComponent 文本输入框组件
// 用于输入待添加的选项文字
type TextInputComponent struct {
	// Text 当前输入的文本
	Text string

	// 尺寸（像素），位置在 PositionComponent（左上角）
	Width  float64
	Height float64

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）

	// 输入限制
	MaxLength   int    // 最大字符数（rune计，0 = 无限制）
	Placeholder string // 占位符文本（输入框为空时显示）

	// IsFocused 是否获得焦点（接收键盘输入）
	IsFocused bool

	// OnSubmit 回车提交回调（参数为当前文本）
	OnSubmit func(text string)
}
