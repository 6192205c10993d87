package entities

import (
	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/utils"
)

// NewOptionCards 为当前选项列表创建一圈卡片实体
//
// 卡片从正上方开始顺时针均匀分布在舞台环上。
// 漂浮相位由会话种子和下标导出，同一种子下布局完全一致，
// 相邻卡片相位错开，不会整圈同步起伏。
//
// 选项列表变化时由场景销毁旧卡片后重建整圈。
//
// 参数：
//   - em: 实体管理器
//   - labels: 选项文字（与 GameState 顺序一致）
//   - sessionSeed: 会话种子
//
// 返回：
//   - 创建的卡片实体ID列表（与 labels 等长，下标对应）
func NewOptionCards(em *ecs.EntityManager, labels []string, sessionSeed uint64) []ecs.EntityID {
	if em == nil || len(labels) == 0 {
		return nil
	}

	count := len(labels)
	ids := make([]ecs.EntityID, 0, count)

	for i, label := range labels {
		x, y := config.CardSlotPosition(i, count)

		// 每张卡片独立的相位种子，7919 只是一个大素数步长
		rng := utils.NewSeededRand(sessionSeed + uint64(i)*7919)

		id := em.CreateEntity()

		ecs.AddComponent(em, id, &components.PositionComponent{
			X: x,
			Y: y,
		})

		ecs.AddComponent(em, id, &components.CardComponent{
			Label:      label,
			Index:      i,
			Role:       components.CardRoleNormal,
			BaseX:      x,
			BaseY:      y,
			SlotAngle:  config.CardSlotAngle(i, count),
			FloatPhase: rng.Angle(),
			Scale:      1.0,
			Alpha:      1.0,
		})

		ids = append(ids, id)
	}

	return ids
}
