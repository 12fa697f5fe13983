package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// OnboardingState 引导状态
// 记录定向卡片是否已被用户看过并完整关闭
type OnboardingState struct {
	// CardSeen 定向卡片是否已完整展示并关闭过
	// 卡片的隐藏序列完成（fully-hidden）时置位
	CardSeen bool `yaml:"cardSeen"`
}

// OnboardingManager 引导状态管理器
// 负责"卡片只在首次启动自动弹出"语义的持久化
type OnboardingManager struct {
	gdataManager *gdata.Manager  // 可为 nil（降级模式，状态仅存内存）
	state        *OnboardingState
}

// 存储路径常量
const (
	onboardingObject   = "onboarding"
	onboardingProperty = "state"
)

// NewOnboardingManager 创建引导状态管理器
// gdataManager 为 nil 时进入降级模式：状态不持久化，每次启动视为首次
func NewOnboardingManager(gdataManager *gdata.Manager) *OnboardingManager {
	om := &OnboardingManager{
		gdataManager: gdataManager,
		state:        &OnboardingState{},
	}

	if err := om.Load(); err != nil {
		log.Printf("[OnboardingManager] Warning: Failed to load onboarding state: %v (treating as first launch)", err)
	}

	return om
}

// Load 从 gdata 加载引导状态
func (om *OnboardingManager) Load() error {
	if om.gdataManager == nil {
		return nil
	}

	if !om.gdataManager.ObjectPropExists(onboardingObject, onboardingProperty) {
		return nil
	}

	data, err := om.gdataManager.LoadObjectProp(onboardingObject, onboardingProperty)
	if err != nil {
		return fmt.Errorf("failed to load onboarding state: %w", err)
	}

	var loaded OnboardingState
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse onboarding state: %w", err)
	}

	om.state = &loaded
	return nil
}

// IsCardSeen 返回卡片是否已被看过
func (om *OnboardingManager) IsCardSeen() bool {
	return om.state.CardSeen
}

// MarkCardSeen 标记卡片已被看过并持久化
// 持久化失败只记录警告，不影响内存状态
func (om *OnboardingManager) MarkCardSeen() {
	om.state.CardSeen = true

	if om.gdataManager == nil {
		return
	}

	data, err := yaml.Marshal(om.state)
	if err != nil {
		log.Printf("[OnboardingManager] Warning: Failed to serialize onboarding state: %v", err)
		return
	}

	if err := om.gdataManager.SaveObjectProp(onboardingObject, onboardingProperty, data); err != nil {
		log.Printf("[OnboardingManager] Warning: Failed to save onboarding state: %v", err)
	}
}

// Reset 清除已看过标记（调试用）
func (om *OnboardingManager) Reset() {
	om.state.CardSeen = false

	if om.gdataManager == nil {
		return
	}

	data, err := yaml.Marshal(om.state)
	if err != nil {
		return
	}
	if err := om.gdataManager.SaveObjectProp(onboardingObject, onboardingProperty, data); err != nil {
		log.Printf("[OnboardingManager] Warning: Failed to reset onboarding state: %v", err)
	}
}
