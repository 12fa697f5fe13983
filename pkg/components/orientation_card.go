package components

import "github.com/decker502/orientcard/pkg/ecs"

// TransitionState 叠加层的整体过渡状态
// 该状态从两个面板的进度/目标推导得出，从不单独存储
type TransitionState int

const (
	// TransitionHidden 完全隐藏（两个面板进度均为 0，目标为隐藏）
	TransitionHidden TransitionState = iota
	// TransitionShowing 正在显示（目标为显示，尚未全部到达进度 1）
	TransitionShowing
	// TransitionShown 完全显示（两个面板进度均为 1）
	TransitionShown
	// TransitionHiding 正在隐藏（目标为隐藏，尚有面板进度大于 0）
	TransitionHiding
)

// String 返回过渡状态的可读名称（用于日志和测试输出）
func (s TransitionState) String() string {
	switch s {
	case TransitionHidden:
		return "Hidden"
	case TransitionShowing:
		return "Showing"
	case TransitionShown:
		return "Shown"
	case TransitionHiding:
		return "Hiding"
	default:
		return "Unknown"
	}
}

// OrientationCardComponent 定向卡片叠加层的数据组件。
// 卡片在观察者面前显示一个标题和可点击的关闭区域，
// 背景层与头部层以错开的时序淡入淡出。
type OrientationCardComponent struct {
	// Title 卡片标题文字
	Title string

	// Width, Height 背景面板尺寸（世界单位），构造后不再修改
	Width, Height float64

	// IsVisible 叠加层整体可见标志
	// 每帧根据头部面板进度重新计算（进度 > 0 即为可见）
	IsVisible bool

	// TitleVisible 标题文字是否可见
	// 显示时置位，关闭时立即清除（不等待淡出完成）
	TitleVisible bool

	// TitleOffsetX, TitleOffsetY 标题文字区域相对卡片锚点的偏移（世界单位）
	// 初始化时计算一次：头部左边缘加少量内边距，垂直方向居中于头部
	TitleOffsetX float64
	TitleOffsetY float64

	// BackgroundEntity, HeaderEntity 两个面板的实体ID
	BackgroundEntity ecs.EntityID
	HeaderEntity     ecs.EntityID
}
