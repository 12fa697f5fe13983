package game

import "testing"

// TestOnboardingManagerDegradedMode 测试降级模式（无 gdata）：
// 每次创建都视为首次启动，标记只存内存
func TestOnboardingManagerDegradedMode(t *testing.T) {
	om := NewOnboardingManager(nil)

	if om.IsCardSeen() {
		t.Error("降级模式初始应视为未看过")
	}

	om.MarkCardSeen()
	if !om.IsCardSeen() {
		t.Error("标记后内存状态应为已看过")
	}

	// 新建实例不共享状态（未持久化）
	om2 := NewOnboardingManager(nil)
	if om2.IsCardSeen() {
		t.Error("降级模式的标记不应跨实例存在")
	}
}

// TestOnboardingManagerPersistence 测试已看过标记的持久化
func TestOnboardingManagerPersistence(t *testing.T) {
	m := newTestGdata(t)

	om := NewOnboardingManager(m)
	if om.IsCardSeen() {
		t.Error("空存储应视为首次启动")
	}

	om.MarkCardSeen()

	// 模拟重启
	om2 := NewOnboardingManager(m)
	if !om2.IsCardSeen() {
		t.Error("已看过标记应已持久化")
	}
}

// TestOnboardingManagerReset 测试清除已看过标记
func TestOnboardingManagerReset(t *testing.T) {
	m := newTestGdata(t)

	om := NewOnboardingManager(m)
	om.MarkCardSeen()
	om.Reset()

	if om.IsCardSeen() {
		t.Error("Reset 后内存状态应为未看过")
	}

	om2 := NewOnboardingManager(m)
	if om2.IsCardSeen() {
		t.Error("Reset 应已持久化")
	}
}
