package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 统一的指针输入状态
// 同时覆盖桌面鼠标和移动端触摸，上层系统不必区分两者
type InputState struct {
	JustPressed  bool // 本帧是否刚刚按下（点击或触摸开始）
	JustReleased bool // 本帧是否刚刚松开（点击或触摸结束，按钮在此刻触发）
	X, Y         int  // 指针位置（屏幕坐标）
	IsTouching   bool // 是否处于按住状态
}

// GetInputState 获取当前帧的输入状态
// 触摸优先：移动端存在触摸点时忽略鼠标
func GetInputState() InputState {
	state := InputState{}

	// 1. 检查新触摸
	justTouched := inpututil.AppendJustPressedTouchIDs(nil)
	if len(justTouched) > 0 {
		x, y := ebiten.TouchPosition(justTouched[0])
		state.JustPressed = true
		state.X, state.Y = x, y
		state.IsTouching = true
		return state
	}

	// 2. 检查持续触摸
	touches := ebiten.AppendTouchIDs(nil)
	if len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		state.X, state.Y = x, y
		state.IsTouching = true
		return state
	}

	// 3. 检查刚结束的触摸
	// 松开后 TouchPosition 已经拿不到坐标，取上一帧的位置
	justReleased := inpututil.AppendJustReleasedTouchIDs(nil)
	if len(justReleased) > 0 {
		x, y := inpututil.TouchPositionInPreviousTick(justReleased[0])
		state.JustReleased = true
		state.X, state.Y = x, y
		return state
	}

	// 4. 回退到鼠标
	state.X, state.Y = ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
		state.IsTouching = true
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		state.IsTouching = true
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		state.JustReleased = true
	}
	return state
}

// PointInRect 判断点是否落在矩形内（用于按钮与卡片命中检测）
func PointInRect(px, py, rx, ry, rw, rh float64) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}
