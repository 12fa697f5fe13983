package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// OverlaySettings 全局叠加层设置
// 注意：这些设置是全局的，不绑定到特定用户
type OverlaySettings struct {
	// ShowCardOnLaunch 启动时是否自动显示定向卡片
	// 关闭后卡片只能由场景内的触发器唤出
	ShowCardOnLaunch bool `yaml:"showCardOnLaunch"`

	// ReducedMotion 减少动态效果
	// 开启后渲染端不再应用缩放缓动（透明度过渡保留）
	ReducedMotion bool `yaml:"reducedMotion"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *OverlaySettings {
	return &OverlaySettings{
		ShowCardOnLaunch: true,
		ReducedMotion:    false,
	}
}

// SettingsManager 设置管理器
// 负责叠加层设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager   // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *OverlaySettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	// 检查设置数据是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	// 从 gdata 加载数据
	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 反序列化 YAML 数据
	var loadedSettings OverlaySettings
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to parse settings: %w", err)
	}

	sm.settings = &loadedSettings
	return nil
}

// Save 将当前设置保存到 gdata
// 降级模式下不做任何操作
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// GetSettings 返回当前设置
func (sm *SettingsManager) GetSettings() *OverlaySettings {
	return sm.settings
}

// SetShowCardOnLaunch 设置启动时是否自动显示卡片并保存
func (sm *SettingsManager) SetShowCardOnLaunch(show bool) {
	sm.settings.ShowCardOnLaunch = show
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to save settings: %v", err)
	}
}

// SetReducedMotion 设置减少动态效果并保存
func (sm *SettingsManager) SetReducedMotion(reduced bool) {
	sm.settings.ReducedMotion = reduced
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to save settings: %v", err)
	}
}
