package components

import "testing"

// TestCardPanelComponent_IsAnimating 测试动画状态判断：
// 仅在已下达指令、延迟耗尽且进度未到目标时为动画中
func TestCardPanelComponent_IsAnimating(t *testing.T) {
	tests := []struct {
		name  string
		panel CardPanelComponent
		want  bool
	}{
		{"初始态（未下达指令）", CardPanelComponent{}, false},
		{"延迟未耗尽", CardPanelComponent{Armed: true, DelayRemaining: 0.1, Target: 1}, false},
		{"延迟耗尽且进度未到目标", CardPanelComponent{Armed: true, Progress: 0.5, Target: 1}, true},
		{"已到达目标", CardPanelComponent{Armed: true, Progress: 1, Target: 1}, false},
		{"隐藏方向动画中", CardPanelComponent{Armed: true, Progress: 0.3, Target: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.panel.IsAnimating(); got != tt.want {
				t.Errorf("IsAnimating() = %v，期望 %v", got, tt.want)
			}
		})
	}
}

// TestCardPanelComponent_FullyShownHidden 测试完全显示/隐藏判断
func TestCardPanelComponent_FullyShownHidden(t *testing.T) {
	panel := CardPanelComponent{}

	if !panel.IsFullyHidden() {
		t.Error("进度 0 应为完全隐藏")
	}
	if panel.IsFullyShown() {
		t.Error("进度 0 不应为完全显示")
	}

	panel.Progress = 0.5
	if panel.IsFullyHidden() || panel.IsFullyShown() {
		t.Error("进度 0.5 既非完全隐藏也非完全显示")
	}

	panel.Progress = 1
	if !panel.IsFullyShown() {
		t.Error("进度 1 应为完全显示")
	}
	if panel.IsFullyHidden() {
		t.Error("进度 1 不应为完全隐藏")
	}
}

// TestPanelKind_String 测试面板类型的日志名称
func TestPanelKind_String(t *testing.T) {
	if PanelBackground.String() != "background" {
		t.Errorf("PanelBackground.String() = %q", PanelBackground.String())
	}
	if PanelHeader.String() != "header" {
		t.Errorf("PanelHeader.String() = %q", PanelHeader.String())
	}
	if PanelKind(99).String() != "unknown" {
		t.Errorf("非法类型应返回 unknown，实际 %q", PanelKind(99).String())
	}
}
