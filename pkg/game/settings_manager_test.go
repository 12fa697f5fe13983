package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata 创建写入临时目录的 gdata 管理器（测试辅助）
func newTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	m, err := gdata.Open(gdata.Config{AppName: "orientcard-test"})
	if err != nil {
		t.Fatalf("创建 gdata 管理器失败: %v", err)
	}
	return m
}

// TestSettingsManagerDefaults 测试默认设置
func TestSettingsManagerDefaults(t *testing.T) {
	settings := DefaultSettings()

	if !settings.ShowCardOnLaunch {
		t.Error("默认应在启动时自动显示卡片")
	}
	if settings.ReducedMotion {
		t.Error("默认不应开启减少动态效果")
	}
}

// TestSettingsManagerDegradedMode 测试降级模式（无 gdata）：
// 创建成功、使用默认设置、保存为空操作
func TestSettingsManagerDegradedMode(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("降级模式创建失败: %v", err)
	}

	if !sm.GetSettings().ShowCardOnLaunch {
		t.Error("降级模式应使用默认设置")
	}

	// 修改只存内存，保存不报错
	sm.SetShowCardOnLaunch(false)
	if sm.GetSettings().ShowCardOnLaunch {
		t.Error("内存中的设置应已更新")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("降级模式保存应为空操作: %v", err)
	}
}

// TestSettingsManagerPersistence 测试设置的保存与重新加载
func TestSettingsManagerPersistence(t *testing.T) {
	m := newTestGdata(t)

	sm, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("创建设置管理器失败: %v", err)
	}

	sm.SetShowCardOnLaunch(false)
	sm.SetReducedMotion(true)

	// 新建管理器模拟重启，应加载已保存的设置
	sm2, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("重新创建设置管理器失败: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.ShowCardOnLaunch {
		t.Error("ShowCardOnLaunch 应已持久化为 false")
	}
	if !settings.ReducedMotion {
		t.Error("ReducedMotion 应已持久化为 true")
	}
}

// TestSettingsManagerFreshStore 测试空存储时使用默认设置
func TestSettingsManagerFreshStore(t *testing.T) {
	m := newTestGdata(t)

	sm, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("创建设置管理器失败: %v", err)
	}
	if !sm.GetSettings().ShowCardOnLaunch {
		t.Error("空存储应使用默认设置")
	}
}
