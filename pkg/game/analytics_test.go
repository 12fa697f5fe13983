package game

import "testing"

// TestAnalyticsManagerDegradedMode 测试降级模式（无 gdata）：
// 事件照常计数，任何操作都不报错
func TestAnalyticsManagerDegradedMode(t *testing.T) {
	am := NewAnalyticsManager(nil)

	if am.Count(AnalyticsEventCardOpened) != 0 {
		t.Error("初始计数应为 0")
	}

	am.Track(AnalyticsEventCardOpened)
	am.Track(AnalyticsEventCardOpened)
	am.Track(AnalyticsEventCardDismissed)

	if got := am.Count(AnalyticsEventCardOpened); got != 2 {
		t.Errorf("唤出事件计数应为 2，实际为 %d", got)
	}
	if got := am.Count(AnalyticsEventCardDismissed); got != 1 {
		t.Errorf("关闭事件计数应为 1，实际为 %d", got)
	}
}

// TestAnalyticsManagerPersistence 测试计数器跨实例持久化
func TestAnalyticsManagerPersistence(t *testing.T) {
	m := newTestGdata(t)

	am := NewAnalyticsManager(m)
	am.Track(AnalyticsEventCardOpened)
	am.Track(AnalyticsEventCardDismissed)

	// 模拟重启：历史计数恢复并继续累积
	am2 := NewAnalyticsManager(m)
	if got := am2.Count(AnalyticsEventCardOpened); got != 1 {
		t.Errorf("恢复后唤出计数应为 1，实际为 %d", got)
	}

	am2.Track(AnalyticsEventCardOpened)
	if got := am2.Count(AnalyticsEventCardOpened); got != 2 {
		t.Errorf("继续累积后唤出计数应为 2，实际为 %d", got)
	}
}

// TestAnalyticsManagerUnknownEvent 测试未记录过的事件计数为 0
func TestAnalyticsManagerUnknownEvent(t *testing.T) {
	am := NewAnalyticsManager(nil)
	if am.Count("never_tracked") != 0 {
		t.Error("未记录过的事件计数应为 0")
	}
}
