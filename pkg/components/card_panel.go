package components

// PanelKind 面板类型
// 定向卡片由两个可独立动画的面板层组成
type PanelKind int

const (
	// PanelBackground 背景层（填充卡片主体区域）
	PanelBackground PanelKind = iota
	// PanelHeader 头部层（标题框，位于卡片上方）
	PanelHeader
)

// String 返回面板类型的可读名称（用于日志）
func (k PanelKind) String() string {
	switch k {
	case PanelBackground:
		return "background"
	case PanelHeader:
		return "header"
	default:
		return "unknown"
	}
}

// CardPanelComponent 管理单个卡片面板的显示/隐藏动画状态。
// Progress 是归一化动画进度：0 表示完全隐藏，1 表示完全显示。
//
// 进度只在 show/hide 被下达且延迟耗尽后，由过渡系统逐帧推进；
// 任何其他系统都不得直接修改面板进度。
type CardPanelComponent struct {
	// Kind 面板类型（背景或头部）
	Kind PanelKind

	// Width, Height 面板尺寸（世界单位）
	Width, Height float64

	// OffsetY 面板相对卡片锚点的垂直偏移（世界单位）
	OffsetY float64

	// Progress 动画进度 ∈ [0, 1]（0=完全隐藏，1=完全显示）
	Progress float64

	// Target 动画目标进度（show 后为 1，hide 后为 0）
	Target float64

	// DelayRemaining 动画开始前的剩余延迟（秒）
	// show/hide 下达时被设置为 delay + stagger，之后逐帧递减
	DelayRemaining float64

	// Armed 是否已下达过 show/hide 指令
	// 未下达指令时进度保持不变（初始态）
	Armed bool
}

// IsAnimating 判断面板是否正在动画中
// 延迟耗尽且进度尚未到达目标时为 true
func (p *CardPanelComponent) IsAnimating() bool {
	return p.Armed && p.DelayRemaining <= 0 && p.Progress != p.Target
}

// IsFullyShown 判断面板是否已完全显示
func (p *CardPanelComponent) IsFullyShown() bool {
	return p.Progress >= 1.0
}

// IsFullyHidden 判断面板是否已完全隐藏
func (p *CardPanelComponent) IsFullyHidden() bool {
	return p.Progress <= 0.0
}
