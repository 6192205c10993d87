package components

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：文字、尺寸、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 矢量绘制（圆角矩形+文字），不依赖图片资源
//   - 支持点击回调与禁用态
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string

	// 尺寸（像素），位置在 PositionComponent（左上角）
	Width  float64
	Height float64

	// 配色（RGBA）
	FillColor [4]uint8 // 底色
	TextColor [4]uint8 // 文字颜色

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState

	// Enabled 是否启用（禁用时灰显且不响应点击）
	Enabled bool

	// OnClick 点击回调函数
	OnClick func()
}
