package components

// PositionComponent 存储实体的世界坐标位置
// 坐标系：X 向右，Y 向上，Z 指向观察者身后（右手系）
type PositionComponent struct {
	X, Y, Z float64
}
