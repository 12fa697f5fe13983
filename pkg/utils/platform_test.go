//go:build !mobile

package utils

import "testing"

// TestIsMobileEmulate 测试通过环境变量强制移动模式
func TestIsMobileEmulate(t *testing.T) {
	t.Setenv("ORIENTCARD_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("未设置环境变量时桌面端应返回 false")
	}

	t.Setenv("ORIENTCARD_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("ORIENTCARD_MOBILE_EMULATE=1 时应返回 true")
	}
}

// TestCardDepthOffset 测试平台相关的卡片深度偏移：
// 桌面 -0.50，移动端 -0.27（两者都朝观察者方向拉近）
func TestCardDepthOffset(t *testing.T) {
	t.Setenv("ORIENTCARD_MOBILE_EMULATE", "")
	if got := CardDepthOffset(); got != -0.50 {
		t.Errorf("桌面深度偏移应为 -0.50，实际为 %v", got)
	}

	t.Setenv("ORIENTCARD_MOBILE_EMULATE", "1")
	if got := CardDepthOffset(); got != -0.27 {
		t.Errorf("移动端深度偏移应为 -0.27，实际为 %v", got)
	}

	// 偏移必须为负值（向观察者拉近）
	if CardDepthOffset() >= 0 {
		t.Error("深度偏移应为负值")
	}
}
