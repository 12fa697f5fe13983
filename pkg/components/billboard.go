package components

// BillboardComponent 使实体始终朝向观察者
// Yaw 为绕 Y 轴的朝向角（弧度），在卡片显示时立即计算一次，
// 之后每帧跟随摄像机更新
type BillboardComponent struct {
	// Yaw 当前朝向角（弧度，0 表示朝向 +X 方向）
	Yaw float64

	// Enabled 是否启用朝向跟随
	Enabled bool
}
