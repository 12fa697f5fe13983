package game

import "github.com/quasilyte/gdata/v2"

// GameState 存储全局场景状态
// 这是一个单例，用于管理跨场景和跨系统的全局状态数据
type GameState struct {
	// IsModalActive 场景级模态标志
	// 叠加层显示期间置位，表示当前有叠加层捕获主要交互，
	// 场景内其他交互（移动、选择等）应当暂停响应
	IsModalActive bool

	// camera 观察者视角（摄像机位姿）
	camera *Camera

	// gdataManager 跨平台存储管理器，可为 nil（降级模式）
	gdataManager *gdata.Manager

	// settingsManager 设置管理器
	settingsManager *SettingsManager
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个程序生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = NewGameState()
	}
	return globalGameState
}

// NewGameState 创建独立的 GameState 实例
// 单元测试使用此构造函数以避免测试间共享单例状态
func NewGameState() *GameState {
	return &GameState{
		camera: NewCamera(),
	}
}

// SetModalActive 设置模态标志
// 叠加层显示时置位，关闭时清除
func (gs *GameState) SetModalActive(active bool) {
	gs.IsModalActive = active
}

// GetCamera 返回观察者摄像机
func (gs *GameState) GetCamera() *Camera {
	return gs.camera
}

// SetGdataManager 设置 gdata 存储管理器
func (gs *GameState) SetGdataManager(m *gdata.Manager) {
	gs.gdataManager = m
}

// GetGdataManager 返回 gdata 存储管理器（可为 nil）
func (gs *GameState) GetGdataManager() *gdata.Manager {
	return gs.gdataManager
}

// SetSettingsManager 设置设置管理器
func (gs *GameState) SetSettingsManager(sm *SettingsManager) {
	gs.settingsManager = sm
}

// GetSettingsManager 返回设置管理器
// 未显式设置时延迟创建一个降级模式（纯内存）的管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	if gs.settingsManager == nil {
		sm, _ := NewSettingsManager(gs.gdataManager)
		gs.settingsManager = sm
	}
	return gs.settingsManager
}
