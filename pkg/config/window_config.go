package config

// 窗口配置常量
const (
	// WindowWidth 逻辑屏幕宽度（像素）
	WindowWidth = 800

	// WindowHeight 逻辑屏幕高度（像素）
	WindowHeight = 600

	// WindowTitle 窗口标题
	WindowTitle = "Orientation Card"
)
