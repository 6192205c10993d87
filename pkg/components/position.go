package components

// PositionComponent 实体的屏幕坐标
// 单位为像素，原点在窗口左上角，Y轴向下
type PositionComponent struct {
	X float64
	Y float64
}
