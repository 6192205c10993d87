package entities

import (
	"fmt"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
)

// NewWheel 创建转盘实体
//
// 转盘固定在舞台中心，扇区文字是创建时选项列表的快照。
// 选项变化时由场景销毁重建，流程系统在起转时写入目标转角。
//
// 参数：
//   - em: 实体管理器
//   - labels: 扇区文字（与 GameState 顺序一致）
//
// 返回：
//   - 转盘实体ID
//   - 错误信息
func NewWheel(em *ecs.EntityManager, labels []string) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if len(labels) == 0 {
		return 0, fmt.Errorf("wheel needs at least one segment")
	}

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: config.StageCenterX,
		Y: config.StageCenterY,
	})

	ecs.AddComponent(em, entity, &components.WheelComponent{
		Labels:        append([]string(nil), labels...),
		WinnerSegment: -1,
	})

	return entity, nil
}
