package systems

import (
	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/game"
	"github.com/gonewx/luckypick/pkg/utils"
)

// OptionPanelSystem 选项列表交互系统
//
// 处理每行选项右侧 ✕ 按钮的点击移除。
// 选项行不是实体：渲染系统直接按 GameState 画行，
// 这里按同一套布局矩形（config.RemoveButtonRect）做命中判定。
// 非空闲阶段整个面板失活（列表已锁定）。
type OptionPanelSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	audioManager  *game.AudioManager // 可为 nil
}

// NewOptionPanelSystem 创建选项列表交互系统
func NewOptionPanelSystem(em *ecs.EntityManager, gs *game.GameState, am *game.AudioManager) *OptionPanelSystem {
	return &OptionPanelSystem{
		entityManager: em,
		gameState:     gs,
		audioManager:  am,
	}
}

// Update 处理选项行的移除点击
func (s *OptionPanelSystem) Update(deltaTime float64) {
	if !s.flowIdle() {
		return
	}

	pointer := utils.GetInputState()
	if !pointer.JustReleased {
		return
	}

	index := s.HitRemoveButton(float64(pointer.X), float64(pointer.Y))
	if index < 0 {
		return
	}

	if s.gameState.RemoveOption(index) {
		if s.audioManager != nil {
			s.audioManager.PlaySound(game.SoundClick)
		}
	}
}

// HitRemoveButton 返回命中坐标所在行的下标，未命中任何 ✕ 按钮时返回 -1
func (s *OptionPanelSystem) HitRemoveButton(mx, my float64) int {
	for i := 0; i < s.gameState.Count(); i++ {
		x, y, w, h := config.RemoveButtonRect(i)
		if utils.PointInRect(mx, my, x, y, w, h) {
			return i
		}
	}
	return -1
}

// flowIdle 当前流程是否处于空闲阶段
func (s *OptionPanelSystem) flowIdle() bool {
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
