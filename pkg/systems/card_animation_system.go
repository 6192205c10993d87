package systems

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/utils"
)

// 中奖卡片光晕脉冲角速度（弧度/秒）
const winnerGlowPulseSpeed = 4.0

// 弹簧安定判定阈值（缩放值与速度都低于此值视为安定）
const revealSettleEpsilon = 0.01

// FloatOffset 空闲漂浮的垂直偏移（像素）
// elapsed 为阶段累计时长，phase 为卡片各自的相位错开量
func FloatOffset(elapsed, phase float64, tuning *config.CardTuning) float64 {
	return math.Sin(elapsed*tuning.FloatSpeed+phase) * tuning.FloatAmplitude
}

// FloatTilt 空闲漂浮的倾斜角（弧度）
// 摆动频率略低于漂浮，两者不同步看起来更自然
func FloatTilt(elapsed, phase float64, tuning *config.CardTuning) float64 {
	return math.Sin(elapsed*tuning.FloatSpeed*0.8+phase) * tuning.TiltAmplitude
}

// SpiralPosition 聚拢阶段的卡片位置
//
// 半径按 EaseOutCubic 从环半径收缩到 0，同时以 OrbitSpeed 公转，
// 轨迹呈螺旋内卷。elapsed 超过旋转时长后停在舞台中心。
func SpiralPosition(slotAngle, elapsed float64, tuning *config.CardTuning) (x, y float64) {
	progress := utils.Clamp01(elapsed / config.SpinDuration)
	radius := config.CardRingRadius * (1 - utils.EaseOutCubic(progress))
	angle := slotAngle + elapsed*tuning.OrbitSpeed
	return config.StageCenterX + radius*math.Cos(angle),
		config.StageCenterY + radius*math.Sin(angle)
}

// GatherScale 聚拢阶段的卡片缩放（1.0 收缩到 GatherShrink）
func GatherScale(elapsed float64, tuning *config.CardTuning) float64 {
	progress := utils.Clamp01(elapsed / config.SpinDuration)
	return utils.Lerp(1.0, tuning.GatherShrink, utils.EaseOutCubic(progress))
}

// CardAnimationSystem 卡片动画系统
//
// 每帧根据流程阶段把卡片变换（位置/缩放/旋转/透明度/光晕）写回组件，
// 渲染系统只读。变换本身是阶段时长的纯函数（漂浮/聚拢），
// 唯一的例外是中奖弹簧：harmonica 弹簧按固定步长逐帧积分，
// 状态（Scale/ScaleVelocity）保存在卡片组件上。
type CardAnimationSystem struct {
	entityManager *ecs.EntityManager

	// spring 中奖缩放弹簧（无状态步进器，固定 60fps 步长）
	spring harmonica.Spring

	// onRevealComplete 中奖卡片弹簧安定后的通知
	// 每个周期至多触发一次（卡片上的 RevealDone 置位后不再触发）
	onRevealComplete func(index int)
}

// NewCardAnimationSystem 创建卡片动画系统
func NewCardAnimationSystem(em *ecs.EntityManager) *CardAnimationSystem {
	tuning := config.ActiveTuning.Card
	return &CardAnimationSystem{
		entityManager: em,
		spring:        harmonica.NewSpring(harmonica.FPS(60), tuning.SpringFrequency, tuning.SpringDamping),
	}
}

// SetOnRevealComplete 设置中奖揭晓完成回调（参数为中奖选项下标）
func (s *CardAnimationSystem) SetOnRevealComplete(callback func(index int)) {
	s.onRevealComplete = callback
}

// Update 按当前阶段推进所有卡片的动画
func (s *CardAnimationSystem) Update(deltaTime float64) {
	flows := ecs.GetEntitiesWith1[*components.SpinFlowComponent](s.entityManager)
	if len(flows) == 0 {
		return
	}
	flow, ok := ecs.GetComponent[*components.SpinFlowComponent](s.entityManager, flows[0])
	if !ok {
		return
	}

	cards := ecs.GetEntitiesWith2[*components.CardComponent, *components.PositionComponent](s.entityManager)
	for _, id := range cards {
		card, ok := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		if card.Hidden {
			continue
		}

		switch flow.Phase {
		case components.PhaseIdle:
			s.animateIdle(flow, card, pos)
		case components.PhaseSpinning:
			s.animateGather(flow, card, pos)
		case components.PhaseRevealing, components.PhaseResult:
			if card.Role == components.CardRoleWinner {
				s.animateWinner(flow, card)
			}
		}
	}
}

// animateIdle 空闲漂浮：基准槽位 + 正弦浮动和轻微摆动
func (s *CardAnimationSystem) animateIdle(flow *components.SpinFlowComponent, card *components.CardComponent, pos *components.PositionComponent) {
	tuning := &config.ActiveTuning.Card

	pos.X = card.BaseX
	pos.Y = card.BaseY + FloatOffset(flow.PhaseTime, card.FloatPhase, tuning)
	card.Rotation = FloatTilt(flow.PhaseTime, card.FloatPhase, tuning)
	card.Scale = 1.0
	card.Alpha = 1.0
	card.Glow = 0
}

// animateGather 旋转阶段：螺旋内卷聚向舞台中心并收缩
func (s *CardAnimationSystem) animateGather(flow *components.SpinFlowComponent, card *components.CardComponent, pos *components.PositionComponent) {
	tuning := &config.ActiveTuning.Card

	pos.X, pos.Y = SpiralPosition(card.SlotAngle, flow.PhaseTime, tuning)
	card.Scale = GatherScale(flow.PhaseTime, tuning)
	card.Rotation = flow.PhaseTime * tuning.OrbitSpeed
	card.Alpha = 1.0
	card.Glow = 0
}

// animateWinner 中奖卡片：弹簧放大 + 金色光晕脉冲
// 弹簧从聚拢后的缩放一路弹到 WinnerScale，过冲后回落安定
func (s *CardAnimationSystem) animateWinner(flow *components.SpinFlowComponent, card *components.CardComponent) {
	tuning := &config.ActiveTuning.Card

	if !card.RevealDone {
		card.Scale, card.ScaleVelocity = s.spring.Update(card.Scale, card.ScaleVelocity, tuning.WinnerScale)

		if math.Abs(card.Scale-tuning.WinnerScale) < revealSettleEpsilon &&
			math.Abs(card.ScaleVelocity) < revealSettleEpsilon {
			card.Scale = tuning.WinnerScale
			card.ScaleVelocity = 0
			card.RevealDone = true

			if s.onRevealComplete != nil {
				s.onRevealComplete(card.Index)
			}
		}
	}

	card.Alpha = 1.0
	card.Glow = 0.65 + 0.35*math.Sin(flow.PhaseTime*winnerGlowPulseSpeed)
	card.Rotation = 0
}
