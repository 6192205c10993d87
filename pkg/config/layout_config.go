package config

import "math"

// 布局配置常量
// 本文件定义了窗口尺寸、选项面板和舞台区域的布局参数
// 所有坐标使用屏幕坐标系（原点左上角，Y轴向下）

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 游戏窗口宽度（像素）
	GameWindowWidth = 960

	// GameWindowHeight 游戏窗口高度（像素）
	GameWindowHeight = 600

	// GameTitle 窗口标题
	GameTitle = "幸运抉择 LuckyPick"
)

// Option Panel Configuration (选项面板配置)
// 左侧纵向面板：输入框、添加按钮、选项列表、决定按钮
const (
	// PanelX 面板左边界
	PanelX = 24.0

	// PanelY 面板上边界
	PanelY = 72.0

	// PanelWidth 面板宽度
	PanelWidth = 288.0

	// InputBoxX 输入框X坐标
	InputBoxX = PanelX

	// InputBoxY 输入框Y坐标
	InputBoxY = PanelY

	// InputBoxWidth 输入框宽度
	InputBoxWidth = 212.0

	// InputBoxHeight 输入框高度
	InputBoxHeight = 36.0

	// AddButtonX 添加按钮X坐标（输入框右侧，间距8）
	AddButtonX = InputBoxX + InputBoxWidth + 8.0

	// AddButtonY 添加按钮Y坐标
	AddButtonY = InputBoxY

	// AddButtonWidth 添加按钮宽度
	AddButtonWidth = PanelWidth - InputBoxWidth - 8.0

	// AddButtonHeight 添加按钮高度
	AddButtonHeight = InputBoxHeight

	// OptionRowStartY 第一行选项的Y坐标
	OptionRowStartY = PanelY + InputBoxHeight + 20.0

	// OptionRowHeight 每行选项的高度
	OptionRowHeight = 34.0

	// OptionRowGap 行间距
	OptionRowGap = 8.0

	// RemoveButtonSize 选项行右侧移除按钮的边长
	RemoveButtonSize = 24.0

	// DecideButtonX 决定按钮X坐标
	DecideButtonX = PanelX

	// DecideButtonY 决定按钮Y坐标
	DecideButtonY = 500.0

	// DecideButtonWidth 决定按钮宽度
	DecideButtonWidth = PanelWidth

	// DecideButtonHeight 决定按钮高度
	DecideButtonHeight = 52.0
)

// Stage Configuration (舞台区域配置)
// 右侧区域：卡片漂浮/聚拢、转盘、碎片和彩带都在这里渲染
const (
	// StageCenterX 舞台中心X坐标
	StageCenterX = 636.0

	// StageCenterY 舞台中心Y坐标
	StageCenterY = 310.0

	// CardRingRadius 空闲阶段卡片环绕舞台中心的半径
	CardRingRadius = 200.0

	// CardWidth 选项卡片宽度
	CardWidth = 132.0

	// CardHeight 选项卡片高度
	CardHeight = 76.0

	// WheelRadius 转盘半径
	WheelRadius = 216.0

	// WheelPointerSize 转盘顶部指针的边长
	WheelPointerSize = 26.0

	// WheelHubRadius 转盘中心圆毂半径
	WheelHubRadius = 30.0

	// TitleY 标题文字的Y坐标（水平居中）
	TitleY = 28.0
)

// Corner Toggle Configuration (右上角开关配置)
const (
	// SoundToggleX 音效开关按钮X坐标
	SoundToggleX = 916.0

	// SoundToggleY 音效开关按钮Y坐标
	SoundToggleY = 14.0

	// ModeToggleX 模式开关按钮X坐标（卡片/转盘）
	ModeToggleX = 872.0

	// ModeToggleY 模式开关按钮Y坐标
	ModeToggleY = 14.0

	// ToggleButtonSize 开关按钮边长
	ToggleButtonSize = 32.0
)

// Result Dialog Configuration (结果对话框配置)
const (
	// DialogWidth 对话框宽度
	DialogWidth = 420.0

	// DialogHeight 对话框高度
	DialogHeight = 240.0

	// DialogButtonWidth 对话框按钮宽度
	DialogButtonWidth = 150.0

	// DialogButtonHeight 对话框按钮高度
	DialogButtonHeight = 44.0
)

// OptionRowRect 返回第 index 行选项的外框（左上角坐标和尺寸）
func OptionRowRect(index int) (x, y, w, h float64) {
	y = OptionRowStartY + float64(index)*(OptionRowHeight+OptionRowGap)
	return PanelX, y, PanelWidth, OptionRowHeight
}

// RemoveButtonRect 返回第 index 行选项的移除按钮（✕）命中区域
// 垂直居中贴行右缘，输入和渲染共用同一矩形
func RemoveButtonRect(index int) (x, y, w, h float64) {
	_, rowY, _, _ := OptionRowRect(index)
	x = PanelX + PanelWidth - RemoveButtonSize - 5.0
	y = rowY + (OptionRowHeight-RemoveButtonSize)/2
	return x, y, RemoveButtonSize, RemoveButtonSize
}

// CardSlotAngle 返回第 index 张卡片（共 count 张）在空闲环上的基准角度
// 卡片从正上方开始顺时针均匀分布
func CardSlotAngle(index, count int) float64 {
	if count <= 0 {
		return 0
	}
	return -math.Pi/2 + 2*math.Pi*float64(index)/float64(count)
}

// CardSlotPosition 返回第 index 张卡片（共 count 张）的空闲环位置（卡片中心）
func CardSlotPosition(index, count int) (x, y float64) {
	angle := CardSlotAngle(index, count)
	return StageCenterX + CardRingRadius*math.Cos(angle),
		StageCenterY + CardRingRadius*math.Sin(angle)
}
