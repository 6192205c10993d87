package components

// DialogComponent 对话框组件
// 用于显示模态对话框（结果公布）
// 可见期间输入系统吞掉场景其余部分的点击
type DialogComponent struct {
	Title     string         // 对话框标题（如"结果揭晓"）
	Message   string         // 对话框正文（中奖选项文字）
	Buttons   []DialogButton // 按钮列表
	IsVisible bool           // 是否可见
	Width     float64        // 对话框宽度
	Height    float64        // 对话框高度

	// PopAge 弹出动画累计时长（秒），EaseOutBack 驱动缩放
	PopAge float64
}

// DialogButton 对话框按钮
type DialogButton struct {
	Label   string  // 按钮文字
	OnClick func()  // 点击回调
	X       float64 // 按钮相对对话框左上角的 X 坐标
	Y       float64 // 按钮相对对话框左上角的 Y 坐标
	Width   float64 // 按钮宽度
	Height  float64 // 按钮高度
	State   UIState // 交互状态
}
