package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/utils"
)

// TextInputSystem 文本输入系统
// 处理选项输入框的焦点、键盘输入和光标闪烁
//
// 输入是追加式的：可打印字符追加到末尾，退格删除最后一个字符，
// 回车触发 OnSubmit。抽取周期进行中（非空闲阶段）输入框失活。
type TextInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager)
	if len(entities) == 0 {
		return
	}

	// 非空闲阶段输入框整体失活（选项列表已锁定，输入没有意义）
	if !s.flowIdle() {
		for _, entityID := range entities {
			input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
			input.IsFocused = false
			input.CursorVisible = false
		}
		return
	}

	s.updateFocus(entities)

	for _, entityID := range entities {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		// 只处理获得焦点的输入框
		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)

		// 移动端无物理键盘，输入由系统软键盘回调走别的路径
		if utils.IsMobile() {
			continue
		}

		s.handleKeyboardInput(input)
	}
}

// flowIdle 当前流程是否处于空闲阶段
func (s *TextInputSystem) flowIdle() bool {
	flows := ecs.GetEntitiesWith1[*components.SpinFlowComponent](s.entityManager)
	if len(flows) == 0 {
		return true
	}
	flow, ok := ecs.GetComponent[*components.SpinFlowComponent](s.entityManager, flows[0])
	if !ok {
		return true
	}
	return flow.Phase == components.PhaseIdle
}

// updateFocus 指针松开时按命中结果切换焦点
func (s *TextInputSystem) updateFocus(entities []ecs.EntityID) {
	pointer := utils.GetInputState()
	if !pointer.JustReleased {
		return
	}

	mx := float64(pointer.X)
	my := float64(pointer.Y)

	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		input.IsFocused = utils.PointInRect(mx, my, pos.X, pos.Y, input.Width, input.Height)

		if input.IsFocused {
			input.CursorBlinkTimer = 0
			input.CursorVisible = true
		}
	}
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	const blinkInterval = 0.5 // 光标闪烁间隔（秒）

	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= blinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	// 1. 可打印字符追加到末尾
	runes := ebiten.AppendInputChars(nil)
	if len(runes) > 0 {
		s.appendText(input, string(runes))
		// 输入时光标应该可见
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}

	// 2. 退格删除最后一个字符
	// 第1帧立即响应，按住 30 帧后每隔 3 帧响应一次（连续删除）
	backspaceDuration := inpututil.KeyPressDuration(ebiten.KeyBackspace)
	if backspaceDuration == 1 || (backspaceDuration >= 30 && backspaceDuration%3 == 0) {
		s.deleteLastChar(input)
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}

	// 3. 回车提交
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if input.OnSubmit != nil {
			input.OnSubmit(input.Text)
		}
	}
}

// appendText 在末尾追加文本，超出最大长度的部分丢弃
func (s *TextInputSystem) appendText(input *components.TextInputComponent, text string) {
	current := []rune(input.Text)
	for _, r := range text {
		if input.MaxLength > 0 && len(current) >= input.MaxLength {
			break
		}
		current = append(current, r)
	}
	input.Text = string(current)
}

// deleteLastChar 删除末尾字符
func (s *TextInputSystem) deleteLastChar(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	if len(runes) == 0 {
		return
	}
	input.Text = string(runes[:len(runes)-1])
}
