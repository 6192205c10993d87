package systems

import (
	"math/rand"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/game"
)

// newTestFlow 组装一套无音频、固定种子的流程测试环境
// 这是流程相关测试共享的辅助函数
func newTestFlow(seed int64, options ...string) (*ecs.EntityManager, *game.GameState, *SpinFlowSystem) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	for _, opt := range options {
		_ = gs.AddOption(opt)
	}

	source := rand.New(rand.NewSource(seed))
	flow := NewSpinFlowSystem(em, gs, nil, source, uint64(seed))
	return em, gs, flow
}

// flowComponent 返回流程组件，供测试直接断言内部状态
func flowComponent(em *ecs.EntityManager, fs *SpinFlowSystem) *components.SpinFlowComponent {
	flow, _ := ecs.GetComponent[*components.SpinFlowComponent](em, fs.FlowEntity())
	return flow
}

// stepFlow 以 60FPS 的固定步长推进流程系统
// 末尾多走一帧，避免浮点累加差一帧到不了阶段边界
func stepFlow(fs *SpinFlowSystem, seconds float64) {
	const dt = 1.0 / 60.0
	steps := int(seconds/dt+0.5) + 1
	for i := 0; i < steps; i++ {
		fs.Update(dt)
	}
}
