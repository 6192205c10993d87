package systems

import (
	"log"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/entities"
	"github.com/gonewx/luckypick/pkg/game"
	"github.com/gonewx/luckypick/pkg/utils"
)

// SpinFlowSystem 抽取流程系统
//
// 整个抽取周期的时间线权威：idle → spinning → revealing → result。
// 所有阶段切换由组件上的 dt 累加器驱动，没有挂钟定时器，
// 取消语义完全依赖代数比对（Generation）。
//
// 此系统负责：
//   - Decide/PickAgain/Reset 三个外部触发
//   - 按固定时长推进阶段（旋转 3.5 秒，揭晓停留 1.2 秒）
//   - 中奖下标的唯一性：每周期抽取一次，spinning → revealing 时发布
//   - 揭晓时分派卡片角色并生成落选爆裂
//   - 结果时生成彩带/中奖爆发、触发钟声（去重）并弹出结果对话框
//
// 转盘模式下在旋转开始时武装转盘组件（写入目标转角），
// 转盘系统只做动画，不参与结果决定。
type SpinFlowSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	audioManager  *game.AudioManager // 可为 nil（无头测试）
	randomSource  game.RandomSource

	// flowEntity 流程管理实体ID
	flowEntity ecs.EntityID

	// pendingWinner 本周期预抽的中奖下标
	// Decide 时抽取（转盘需要在起转前知道终点），
	// spinning → revealing 时发布到组件的 WinnerIndex
	pendingWinner int

	// onPhaseChange 阶段变更通知（用于界面联动和测试观察）
	onPhaseChange func(from, to components.AnimationPhase)
}

// NewSpinFlowSystem 创建抽取流程系统
//
// 参数：
//   - em: 实体管理器
//   - gs: 游戏状态（选项列表）
//   - am: 音频管理器（可为 nil）
//   - rs: 随机来源（nil 则使用时间种子）
//   - sessionSeed: 会话种子（粒子/布局批次的基底）
func NewSpinFlowSystem(em *ecs.EntityManager, gs *game.GameState, am *game.AudioManager, rs game.RandomSource, sessionSeed uint64) *SpinFlowSystem {
	if rs == nil {
		rs = game.NewTimeSource()
	}

	system := &SpinFlowSystem{
		entityManager: em,
		gameState:     gs,
		audioManager:  am,
		randomSource:  rs,
		pendingWinner: -1,
	}

	// 创建流程管理实体
	system.flowEntity = em.CreateEntity()
	ecs.AddComponent(em, system.flowEntity, components.NewSpinFlowComponent(sessionSeed))

	log.Printf("[SpinFlow] Initialized (Entity ID: %d), seed=%d", system.flowEntity, sessionSeed)

	return system
}

// Update 推进流程计时并在时长到达时切换阶段
func (s *SpinFlowSystem) Update(dt float64) {
	flow, ok := ecs.GetComponent[*components.SpinFlowComponent](s.entityManager, s.flowEntity)
	if !ok {
		return
	}

	flow.PhaseTime += dt

	switch flow.Phase {
	case components.PhaseSpinning:
		if flow.PhaseTime >= config.SpinDuration {
			s.enterRevealing(flow)
		}
	case components.PhaseRevealing:
		if flow.PhaseTime >= config.RevealDelay {
			s.enterResult(flow)
		}
	}
}

// Decide 开始一次抽取
//
// 前置条件：当前处于 idle 且选项数 ≥ 2。
// 满足时锁定选项列表、预抽中奖下标、进入 spinning 并返回 true；
// 否则什么都不做返回 false。
func (s *SpinFlowSystem) Decide() bool {
	flow, ok := ecs.GetComponent[*components.SpinFlowComponent](s.entityManager, s.flowEntity)
	if !ok {
		return false
	}

	if flow.Phase != components.PhaseIdle {
		log.Printf("[SpinFlow] Decide ignored: phase is %s", flow.Phase)
		return false
	}
	if !s.gameState.CanDecide() {
		log.Printf("[SpinFlow] Decide ignored: need at least %d options", config.MinOptions)
		return false
	}

	n := s.gameState.Count()
	s.gameState.Lock()

	// 新周期：旧周期遗留的任何延迟效果从此作废
	flow.Generation++
	flow.WinnerIndex = -1
	flow.OptionCount = n
	s.pendingWinner = s.pickWinner(n)

	s.armWheel(flow)
	s.setPhase(flow, components.PhaseSpinning)

	if s.audioManager != nil {
		s.audioManager.PlaySound(game.SoundSpin)
	}

	return true
}

// PickAgain 保留选项再来一局
// 仅在 result 阶段有效；清理本周期的粒子和对话框，恢复卡片，回到 idle
func (s *SpinFlowSystem) PickAgain() bool {
	flow, ok := ecs.GetComponent[*components.SpinFlowComponent](s.entityManager, s.flowEntity)
	if !ok {
		return false
	}
	if flow.Phase != components.PhaseResult {
		log.Printf("[SpinFlow] PickAgain ignored: phase is %s", flow.Phase)
		return false
	}

	flow.Generation++
	s.cleanupCycleEntities()
	s.restoreCards()
	s.disarmWheel()

	flow.WinnerIndex = -1
	flow.OptionCount = 0
	s.pendingWinner = -1

	s.setPhase(flow, components.PhaseIdle)
	s.gameState.Unlock()

	return true
}

// Reset 重置：清空选项，任何阶段都可调用
//
// 周期中途重置与结果后重置语义一致：代数递增使在途效果作废，
// 粒子实体被销毁（位置随即冻结），转盘原地停住。
func (s *SpinFlowSystem) Reset() {
	flow, ok := ecs.GetComponent[*components.SpinFlowComponent](s.entityManager, s.flowEntity)
	if !ok {
		return
	}

	flow.Generation++
	s.cleanupCycleEntities()
	s.disarmWheel()

	flow.WinnerIndex = -1
	flow.OptionCount = 0
	s.pendingWinner = -1

	if flow.Phase != components.PhaseIdle {
		s.setPhase(flow, components.PhaseIdle)
	}

	s.gameState.Unlock()
	s.gameState.Clear()
}

// Phase 返回当前阶段
func (s *SpinFlowSystem) Phase() components.AnimationPhase {
	flow, ok := ecs.GetComponent[*components.SpinFlowComponent](s.entityManager, s.flowEntity)
	if !ok {
		return components.PhaseIdle
	}
	return flow.Phase
}

// WinnerIndex 返回已发布的中奖下标，未定时为 -1
func (s *SpinFlowSystem) WinnerIndex() int {
	flow, ok := ecs.GetComponent[*components.SpinFlowComponent](s.entityManager, s.flowEntity)
	if !ok {
		return -1
	}
	return flow.WinnerIndex
}

// Generation 返回当前周期代数
func (s *SpinFlowSystem) Generation() int {
	flow, ok := ecs.GetComponent[*components.SpinFlowComponent](s.entityManager, s.flowEntity)
	if !ok {
		return 0
	}
	return flow.Generation
}

// FlowEntity 返回流程管理实体ID
func (s *SpinFlowSystem) FlowEntity() ecs.EntityID {
	return s.flowEntity
}

// SetOnPhaseChange 设置阶段变更回调
func (s *SpinFlowSystem) SetOnPhaseChange(callback func(from, to components.AnimationPhase)) {
	s.onPhaseChange = callback
}

// pickWinner 均匀抽取 [0, n) 的中奖下标
func (s *SpinFlowSystem) pickWinner(n int) int {
	idx := int(s.randomSource.Float64() * float64(n))
	// Float64 上界是开区间，但乘法舍入仍可能顶到 n
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// setPhase 切换阶段并通知
func (s *SpinFlowSystem) setPhase(flow *components.SpinFlowComponent, to components.AnimationPhase) {
	from := flow.Phase
	flow.Phase = to
	flow.PhaseTime = 0

	log.Printf("[SpinFlow] Phase %s -> %s (gen %d)", from, to, flow.Generation)

	if s.onPhaseChange != nil {
		s.onPhaseChange(from, to)
	}
}

// enterRevealing 旋转结束：发布中奖下标，分派卡片角色，落选卡片爆裂
func (s *SpinFlowSystem) enterRevealing(flow *components.SpinFlowComponent) {
	// 发布时机即"中奖下标固定"时机：此前 WinnerIndex 一直是 -1
	flow.WinnerIndex = s.pendingWinner
	log.Printf("[SpinFlow] Winner index: %d (of %d options)", flow.WinnerIndex, flow.OptionCount)

	s.setPhase(flow, components.PhaseRevealing)

	shattered := 0
	cards := ecs.GetEntitiesWith2[*components.CardComponent, *components.PositionComponent](s.entityManager)
	for _, id := range cards {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if card.Index == flow.WinnerIndex {
			card.Role = components.CardRoleWinner
			continue
		}

		// 落选：隐藏卡片本体，在原位生成碎片爆裂
		card.Role = components.CardRoleLoser
		card.Hidden = true
		entities.NewShatterBurst(s.entityManager, pos.X, pos.Y, s.batchSeed(flow, card.Index))
		shattered++
	}

	if shattered > 0 && s.audioManager != nil {
		s.audioManager.PlaySound(game.SoundShatter)
	}
}

// enterResult 揭晓停留结束：彩带、中奖爆发、钟声、结果对话框
func (s *SpinFlowSystem) enterResult(flow *components.SpinFlowComponent) {
	s.setPhase(flow, components.PhaseResult)

	// 彩带喷泉
	entities.NewConfettiBurst(s.entityManager, s.batchSeed(flow, 1000))

	// 中奖爆发：卡片模式在中奖卡片处，转盘模式在舞台中心
	burstX, burstY := float64(config.StageCenterX), float64(config.StageCenterY)
	cards := ecs.GetEntitiesWith2[*components.CardComponent, *components.PositionComponent](s.entityManager)
	for _, id := range cards {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		if card.Role == components.CardRoleWinner {
			pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
			burstX, burstY = pos.X, pos.Y
			break
		}
	}
	entities.NewWinnerBurst(s.entityManager, burstX, burstY, s.batchSeed(flow, 2000))

	if s.audioManager != nil {
		s.audioManager.PlayWinChime()
		s.audioManager.PlaySound(game.SoundPop)
	}

	label, ok := s.gameState.Option(flow.WinnerIndex)
	if !ok {
		// 流程期间列表被锁定，到不了这里；留个痕迹便于排查
		log.Printf("[SpinFlow] ERROR: winner index %d out of range", flow.WinnerIndex)
		label = "?"
	}

	if _, err := entities.NewResultDialog(s.entityManager, label,
		func() { s.PickAgain() },
		func() { s.Reset() },
	); err != nil {
		log.Printf("[SpinFlow] ERROR: failed to create result dialog: %v", err)
	}
}

// armWheel 转盘模式：按预抽的中奖扇区反推目标转角
func (s *SpinFlowSystem) armWheel(flow *components.SpinFlowComponent) {
	wheels := ecs.GetEntitiesWith1[*components.WheelComponent](s.entityManager)
	if len(wheels) == 0 {
		return
	}

	wheel, _ := ecs.GetComponent[*components.WheelComponent](s.entityManager, wheels[0])
	rng := utils.NewSeededRand(s.batchSeed(flow, 3000))

	wheel.StartRotation = wheel.Rotation
	wheel.TargetRotation = TargetRotationForSegment(wheel.Rotation, s.pendingWinner, len(wheel.Labels), rng)
	wheel.WinnerSegment = s.pendingWinner
	wheel.SpinTime = 0
	wheel.Spinning = true
	wheel.Highlighting = false
	wheel.HighlightTime = 0
	wheel.HighlightAlpha = 0
	wheel.CompleteFired = false
	wheel.Generation = flow.Generation

	log.Printf("[SpinFlow] Wheel armed: segment %d, target %.3f rad", wheel.WinnerSegment, wheel.TargetRotation)
}

// disarmWheel 原地停住转盘并抑制未触发的完成回调
func (s *SpinFlowSystem) disarmWheel() {
	wheels := ecs.GetEntitiesWith1[*components.WheelComponent](s.entityManager)
	for _, id := range wheels {
		wheel, _ := ecs.GetComponent[*components.WheelComponent](s.entityManager, id)
		wheel.Spinning = false
		wheel.Highlighting = false
		wheel.HighlightAlpha = 0
		wheel.CompleteFired = true
	}
}

// cleanupCycleEntities 销毁本周期的全部瞬态实体（粒子 + 对话框）
// 销毁的实体立即从查询中消失，碎片位置就此冻结
func (s *SpinFlowSystem) cleanupCycleEntities() {
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.DialogComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
}

// restoreCards 把所有卡片恢复到空闲状态（再来一局时）
func (s *SpinFlowSystem) restoreCards() {
	cards := ecs.GetEntitiesWith2[*components.CardComponent, *components.PositionComponent](s.entityManager)
	for _, id := range cards {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		card.Role = components.CardRoleNormal
		card.Hidden = false
		card.Scale = 1.0
		card.Alpha = 1.0
		card.Rotation = 0
		card.Glow = 0
		card.ScaleVelocity = 0
		card.RevealDone = false

		pos.X = card.BaseX
		pos.Y = card.BaseY
	}
}

// batchSeed 导出某个批次的种子：会话种子、周期代数和批次号共同决定
// 同一周期内重复渲染一致，跨周期批次互不相同
func (s *SpinFlowSystem) batchSeed(flow *components.SpinFlowComponent, slot int) uint64 {
	return flow.SessionSeed + uint64(flow.Generation)*104729 + uint64(slot)*7919
}
