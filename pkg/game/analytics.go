package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 叠加层埋点事件名
const (
	// AnalyticsEventCardOpened 卡片被唤出
	AnalyticsEventCardOpened = "orientation_card_opened"
	// AnalyticsEventCardDismissed 卡片被关闭
	AnalyticsEventCardDismissed = "orientation_card_dismissed"
)

// AnalyticsManager 埋点管理器
// 尽力而为（best-effort）：事件以本地计数器形式累积到 gdata，
// 任何失败只记录警告，绝不向状态机传播
type AnalyticsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅日志输出）
	counters     map[string]int
}

// 存储路径常量
const (
	analyticsObject   = "analytics"
	analyticsProperty = "counters"
)

// NewAnalyticsManager 创建埋点管理器
// gdataManager 为 nil 时进入降级模式：事件仅记入日志
func NewAnalyticsManager(gdataManager *gdata.Manager) *AnalyticsManager {
	am := &AnalyticsManager{
		gdataManager: gdataManager,
		counters:     make(map[string]int),
	}

	am.load()
	return am
}

// load 从 gdata 恢复历史计数器
// 失败时从零开始计数
func (am *AnalyticsManager) load() {
	if am.gdataManager == nil {
		return
	}

	if !am.gdataManager.ObjectPropExists(analyticsObject, analyticsProperty) {
		return
	}

	data, err := am.gdataManager.LoadObjectProp(analyticsObject, analyticsProperty)
	if err != nil {
		log.Printf("[Analytics] Warning: Failed to load counters: %v", err)
		return
	}

	var loaded map[string]int
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		log.Printf("[Analytics] Warning: Failed to parse counters: %v", err)
		return
	}

	am.counters = loaded
}

// Track 记录一次事件
// 失败被静默吞掉（仅日志警告），调用方无需也无法处理
func (am *AnalyticsManager) Track(event string) {
	am.counters[event]++
	log.Printf("[Analytics] %s (total: %d)", event, am.counters[event])

	if am.gdataManager == nil {
		return
	}

	data, err := yaml.Marshal(am.counters)
	if err != nil {
		log.Printf("[Analytics] Warning: Failed to serialize counters: %v", err)
		return
	}

	if err := am.gdataManager.SaveObjectProp(analyticsObject, analyticsProperty, data); err != nil {
		log.Printf("[Analytics] Warning: Failed to save counters: %v", err)
	}
}

// Count 返回某事件的累计次数
func (am *AnalyticsManager) Count(event string) int {
	return am.counters[event]
}
