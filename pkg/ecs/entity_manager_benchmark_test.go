package ecs

import (
	"testing"
)

// ========== 测试组件定义 ==========

type benchmarkComp1 struct {
	Value1 int
	Value2 float64
}

type benchmarkComp2 struct {
	Name string
	Data []byte
}

type benchmarkComp3 struct {
	X, Y  float64
	Angle float64
}

type benchmarkComp4 struct {
	Health    int
	MaxHealth int
}

type benchmarkComp5 struct {
	Active bool
	Timer  float64
}

// ========== 辅助函数：创建测试数据 ==========

// setupBenchmarkEntities 创建指定数量的实体，每个实体包含指定组件
func setupBenchmarkEntities(count int, compsPerEntity int) *EntityManager {
	em := NewEntityManager()

	for i := 0; i < count; i++ {
		entity := em.CreateEntity()

		// 根据 compsPerEntity 添加组件
		if compsPerEntity >= 1 {
			AddComponent(em, entity, &benchmarkComp1{Value1: i, Value2: float64(i) * 1.5})
		}
		if compsPerEntity >= 2 {
			AddComponent(em, entity, &benchmarkComp2{Name: "Entity", Data: make([]byte, 10)})
		}
		if compsPerEntity >= 3 {
			AddComponent(em, entity, &benchmarkComp3{X: float64(i), Y: float64(i * 2), Angle: 0.0})
		}
		if compsPerEntity >= 4 {
			AddComponent(em, entity, &benchmarkComp4{Health: 100, MaxHealth: 100})
		}
		if compsPerEntity >= 5 {
			AddComponent(em, entity, &benchmarkComp5{Active: true, Timer: 0.0})
		}
	}

	return em
}

// ========== 基准测试：查询 ==========

// BenchmarkGetEntitiesWith3_1000 查询 1000 实体（3组件）
func BenchmarkGetEntitiesWith3_1000(b *testing.B) {
	em := setupBenchmarkEntities(1000, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith3[*benchmarkComp1, *benchmarkComp2, *benchmarkComp3](em)
	}
}

// BenchmarkGetEntitiesWith1_1000 查询 1000 实体（1组件）
func BenchmarkGetEntitiesWith1_1000(b *testing.B) {
	em := setupBenchmarkEntities(1000, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith1[*benchmarkComp1](em)
	}
}

// BenchmarkGetEntitiesWith5_1000 查询 1000 实体（5组件）
func BenchmarkGetEntitiesWith5_1000(b *testing.B) {
	em := setupBenchmarkEntities(1000, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith5[*benchmarkComp1, *benchmarkComp2, *benchmarkComp3, *benchmarkComp4, *benchmarkComp5](em)
	}
}

// ========== 基准测试：单组件操作 ==========

// BenchmarkGetComponent 获取单个组件
func BenchmarkGetComponent(b *testing.B) {
	em := setupBenchmarkEntities(1, 3)
	entity := EntityID(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, ok := GetComponent[*benchmarkComp1](em, entity)
		if !ok {
			b.Fatal("component not found")
		}
	}
}

// BenchmarkGetComponent_NotFound 获取不存在的组件
func BenchmarkGetComponent_NotFound(b *testing.B) {
	em := setupBenchmarkEntities(1, 1) // 只有 comp1
	entity := EntityID(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GetComponent[*benchmarkComp5](em, entity)
	}
}

// BenchmarkAddComponent 添加组件
func BenchmarkAddComponent(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		em := NewEntityManager()
		entity := em.CreateEntity()
		b.StartTimer()

		AddComponent(em, entity, &benchmarkComp1{Value1: 42, Value2: 3.14})
	}
}

// BenchmarkHasComponent 检查组件存在性
func BenchmarkHasComponent(b *testing.B) {
	em := setupBenchmarkEntities(1, 3)
	entity := EntityID(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = HasComponent[*benchmarkComp1](em, entity)
	}
}

// ========== 综合基准测试：模拟粒子系统的每帧更新循环 ==========

// BenchmarkSystemUpdate_200Particles 模拟一次碎片爆裂高峰期的更新
// 8 张卡片同时爆裂约产生 200 个碎片实体
func BenchmarkSystemUpdate_200Particles(b *testing.B) {
	em := setupBenchmarkEntities(200, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// 查询实体
		entities := GetEntitiesWith2[*benchmarkComp1, *benchmarkComp3](em)

		// 处理每个实体
		for _, entity := range entities {
			c1, ok := GetComponent[*benchmarkComp1](em, entity)
			if !ok {
				continue
			}

			c3, ok := GetComponent[*benchmarkComp3](em, entity)
			if !ok {
				continue
			}

			// 模拟更新逻辑
			c1.Value1++
			c3.X += 1.0
		}
	}
}
