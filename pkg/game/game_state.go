package game

import (
	"errors"
	"strings"

	"github.com/gonewx/luckypick/pkg/config"
)

// 选项编辑的失败原因
var (
	// ErrEmptyOption 空白选项（全空格也算）
	ErrEmptyOption = errors.New("option is empty")

	// ErrDuplicateOption 重复选项（大小写不敏感）
	ErrDuplicateOption = errors.New("option already exists")

	// ErrTooManyOptions 超出选项数量上限
	ErrTooManyOptions = errors.New("option list is full")

	// ErrOptionTooLong 超出单个选项长度上限
	ErrOptionTooLong = errors.New("option is too long")

	// ErrOptionsLocked 抽取进行中，列表锁定
	ErrOptionsLocked = errors.New("options are locked during a cycle")
)

// GameState 存储全局游戏状态（选项列表与编辑锁）
//
// 选项保持插入顺序；重复判定大小写不敏感（strings.EqualFold）。
// 抽取周期开始时 Lock()，结束回到空闲后 Unlock()，
// 锁定期间所有编辑操作都被拒绝，保证已定的 WinnerIndex 始终指向活选项。
type GameState struct {
	options []string
	locked  bool

	// onChange 列表变化回调，场景用它重建卡片和行按钮实体
	onChange func()
}

// NewGameState 创建空的选项状态
func NewGameState() *GameState {
	return &GameState{
		options: make([]string, 0, config.MaxOptions),
	}
}

// SetOnChange 注册列表变化回调
func (gs *GameState) SetOnChange(fn func()) {
	gs.onChange = fn
}

func (gs *GameState) fireChange() {
	if gs.onChange != nil {
		gs.onChange()
	}
}

// AddOption 添加一个选项
// 文本先去首尾空白；空白、重复、超长或列表已满时返回对应错误
func (gs *GameState) AddOption(text string) error {
	if gs.locked {
		return ErrOptionsLocked
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyOption
	}
	if len([]rune(trimmed)) > config.MaxOptionLength {
		return ErrOptionTooLong
	}
	if len(gs.options) >= config.MaxOptions {
		return ErrTooManyOptions
	}
	for _, existing := range gs.options {
		if strings.EqualFold(existing, trimmed) {
			return ErrDuplicateOption
		}
	}

	gs.options = append(gs.options, trimmed)
	gs.fireChange()
	return nil
}

// RemoveOption 移除指定下标的选项
// 下标越界或列表锁定时返回 false
func (gs *GameState) RemoveOption(index int) bool {
	if gs.locked {
		return false
	}
	if index < 0 || index >= len(gs.options) {
		return false
	}

	gs.options = append(gs.options[:index], gs.options[index+1:]...)
	gs.fireChange()
	return true
}

// Clear 清空选项列表（重置流程使用）
func (gs *GameState) Clear() {
	if len(gs.options) == 0 {
		return
	}
	gs.options = gs.options[:0]
	gs.fireChange()
}

// Options 返回选项列表的副本
func (gs *GameState) Options() []string {
	out := make([]string, len(gs.options))
	copy(out, gs.options)
	return out
}

// Option 返回指定下标的选项
func (gs *GameState) Option(index int) (string, bool) {
	if index < 0 || index >= len(gs.options) {
		return "", false
	}
	return gs.options[index], true
}

// Count 返回当前选项数量
func (gs *GameState) Count() int {
	return len(gs.options)
}

// CanAdd 是否还能添加选项
func (gs *GameState) CanAdd() bool {
	return !gs.locked && len(gs.options) < config.MaxOptions
}

// CanDecide 是否满足开始抽取的条件
func (gs *GameState) CanDecide() bool {
	return !gs.locked && len(gs.options) >= config.MinOptions
}

// Lock 锁定选项编辑（抽取周期开始时调用）
func (gs *GameState) Lock() {
	gs.locked = true
}

// Unlock 解除锁定（回到空闲阶段时调用）
func (gs *GameState) Unlock() {
	gs.locked = false
}

// IsLocked 返回当前锁定状态
func (gs *GameState) IsLocked() bool {
	return gs.locked
}
