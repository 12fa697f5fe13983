package ecs

import (
	"reflect"
	"testing"
)

// 测试用组件类型
type positionComponent struct {
	X, Y float64
}

type velocityComponent struct {
	DX, DY float64
}

// TestCreateEntity 测试实体创建返回递增且非零的ID
func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == 0 || id2 == 0 {
		t.Error("实体ID不应为 0（0 保留为无效ID）")
	}
	if id1 == id2 {
		t.Errorf("实体ID应唯一：id1=%d id2=%d", id1, id2)
	}
}

// TestAddAndGetComponent 测试组件的添加和按类型获取
func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &positionComponent{X: 1, Y: 2})

	pos, ok := GetComponent[*positionComponent](em, id)
	if !ok {
		t.Fatal("应能获取已添加的组件")
	}
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("组件数据错误：(%v, %v)", pos.X, pos.Y)
	}

	// 未添加的组件类型
	if _, ok := GetComponent[*velocityComponent](em, id); ok {
		t.Error("未添加的组件类型不应存在")
	}

	// 不存在的实体
	if _, ok := GetComponent[*positionComponent](em, EntityID(999)); ok {
		t.Error("不存在的实体不应有组件")
	}
}

// TestGetComponentReturnsSameInstance 测试获取的指针组件与添加时是同一实例
// 系统直接修改组件字段，依赖此语义
func TestGetComponentReturnsSameInstance(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	original := &positionComponent{X: 1}
	AddComponent(em, id, original)

	got, _ := GetComponent[*positionComponent](em, id)
	got.X = 42

	if original.X != 42 {
		t.Error("获取的组件应与添加的为同一实例")
	}
}

// TestHasComponent 测试组件存在性检查
func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &positionComponent{})

	posType := reflect.TypeOf(&positionComponent{})
	velType := reflect.TypeOf(&velocityComponent{})

	if !em.HasComponent(id, posType) {
		t.Error("HasComponent 应返回 true")
	}
	if em.HasComponent(id, velType) {
		t.Error("未添加的组件类型 HasComponent 应返回 false")
	}
}

// TestGetEntitiesWith 测试单组件查询
func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &positionComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &positionComponent{})
	AddComponent(em, id2, &velocityComponent{})

	em.CreateEntity() // 无组件实体

	entities := GetEntitiesWith[*positionComponent](em)
	if len(entities) != 2 {
		t.Errorf("应查询到 2 个实体，实际 %d 个", len(entities))
	}
}

// TestGetEntitiesWith2 测试双组件查询只返回同时拥有两种组件的实体
func TestGetEntitiesWith2(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &positionComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &positionComponent{})
	AddComponent(em, id2, &velocityComponent{})

	entities := GetEntitiesWith2[*positionComponent, *velocityComponent](em)
	if len(entities) != 1 {
		t.Fatalf("应查询到 1 个实体，实际 %d 个", len(entities))
	}
	if entities[0] != id2 {
		t.Errorf("查询结果错误：期望 %d，实际 %d", id2, entities[0])
	}
}

// TestDestroyEntityDeferred 测试实体删除是延迟的：
// 标记后仍可访问，RemoveMarkedEntities 后才真正移除
func TestDestroyEntityDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &positionComponent{})

	em.DestroyEntity(id)

	// 标记删除后组件仍可访问
	if _, ok := GetComponent[*positionComponent](em, id); !ok {
		t.Error("标记删除后、清理前组件应仍可访问")
	}

	em.RemoveMarkedEntities()

	if _, ok := GetComponent[*positionComponent](em, id); ok {
		t.Error("清理后组件不应再可访问")
	}
	if len(GetEntitiesWith[*positionComponent](em)) != 0 {
		t.Error("清理后实体不应再出现在查询结果中")
	}
}
