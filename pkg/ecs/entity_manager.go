package ecs

import "reflect"

// EntityID 是实体的唯一标识符
// 0 保留为无效ID，可用于表示"尚未创建"的实体
type EntityID uint64

// EntityManager 管理所有实体和组件
// 叠加层的卡片、面板、摄像机等均以实体+组件的形式注册在此
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
// 实际删除在 RemoveMarkedEntities 中统一进行，避免遍历时修改映射
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// AddComponent 为实体添加组件
// 组件按具体类型索引，同类型组件后添加的会覆盖先添加的
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// GetComponent 获取实体的特定类型组件
// 返回组件实例和是否存在的标志
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeOf(zero)]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// GetEntitiesWith 查询拥有指定组件类型的所有实体
func GetEntitiesWith[T any](em *EntityManager) []EntityID {
	var zero T
	componentType := reflect.TypeOf(zero)

	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		if _, found := compMap[componentType]; found {
			result = append(result, id)
		}
	}
	return result
}

// GetEntitiesWith2 查询同时拥有两种组件类型的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var zero1 T1
	var zero2 T2
	type1 := reflect.TypeOf(zero1)
	type2 := reflect.TypeOf(zero2)

	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		if _, found := compMap[type1]; !found {
			continue
		}
		if _, found := compMap[type2]; !found {
			continue
		}
		result = append(result, id)
	}
	return result
}
