package game

import "testing"

// TestGameStateSingleton 测试单例返回同一实例
func TestGameStateSingleton(t *testing.T) {
	gs1 := GetGameState()
	gs2 := GetGameState()

	if gs1 != gs2 {
		t.Error("GetGameState 应返回同一实例")
	}
}

// TestNewGameStateIndependent 测试独立实例互不影响（单元测试隔离用）
func TestNewGameStateIndependent(t *testing.T) {
	gs1 := NewGameState()
	gs2 := NewGameState()

	gs1.SetModalActive(true)
	if gs2.IsModalActive {
		t.Error("独立实例的模态标志不应互相影响")
	}
}

// TestGameStateModalFlag 测试模态标志的置位与清除
func TestGameStateModalFlag(t *testing.T) {
	gs := NewGameState()

	if gs.IsModalActive {
		t.Error("初始模态标志应为 false")
	}

	gs.SetModalActive(true)
	if !gs.IsModalActive {
		t.Error("SetModalActive(true) 后标志应为 true")
	}

	gs.SetModalActive(false)
	if gs.IsModalActive {
		t.Error("SetModalActive(false) 后标志应为 false")
	}
}

// TestGameStateCamera 测试摄像机默认存在
func TestGameStateCamera(t *testing.T) {
	gs := NewGameState()

	if gs.GetCamera() == nil {
		t.Fatal("GameState 应自带摄像机")
	}
}

// TestGameStateSettingsManagerLazy 测试设置管理器的延迟创建：
// 未显式设置时自动创建降级模式实例
func TestGameStateSettingsManagerLazy(t *testing.T) {
	gs := NewGameState()

	sm := gs.GetSettingsManager()
	if sm == nil {
		t.Fatal("延迟创建的设置管理器不应为 nil")
	}
	if !sm.GetSettings().ShowCardOnLaunch {
		t.Error("降级模式应使用默认设置")
	}

	// 再次获取返回同一实例
	if gs.GetSettingsManager() != sm {
		t.Error("重复获取应返回同一设置管理器")
	}
}
