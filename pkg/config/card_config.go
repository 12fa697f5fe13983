package config

import "image/color"

// 定向卡片过渡时序常量
// 头部层与背景层的显示/隐藏以固定的错开时序播放：
// 显示时头部先行、背景随后；隐藏时顺序精确镜像（背景先行、头部殿后），
// 使最后进入的层最后退出。调整时两侧必须保持对称。
const (
	// CardShowHeaderDelay 显示时头部面板的启动延迟（秒）
	CardShowHeaderDelay = 0.05

	// CardShowBackgroundDelay 显示时背景面板的基础延迟（秒）
	CardShowBackgroundDelay = 0.25

	// CardShowBackgroundStagger 显示时背景面板的附加错开延迟（秒）
	CardShowBackgroundStagger = 0.05

	// CardHideBackgroundDelay 隐藏时背景面板的启动延迟（秒，立即开始）
	CardHideBackgroundDelay = 0.0

	// CardHideHeaderDelay 隐藏时头部面板的基础延迟（秒）
	CardHideHeaderDelay = 0.05

	// CardHideHeaderStagger 隐藏时头部面板的附加错开延迟（秒）
	CardHideHeaderStagger = 0.25

	// CardPanelDuration 单个面板从 0 到 1 的动画时长（秒）
	// 进度线性推进，缓动只在渲染时应用，保证重定向时进度单调
	CardPanelDuration = 0.4
)

// 定向卡片布局常量（世界单位）
const (
	// CardDefaultWidth 背景面板默认宽度
	CardDefaultWidth = 1.2

	// CardDefaultHeight 背景面板默认高度
	CardDefaultHeight = 0.8

	// CardHeaderHeight 头部面板固定高度
	CardHeaderHeight = 0.18

	// CardHeaderOffsetY 头部面板相对卡片锚点的垂直偏移
	// 头部位于背景上沿之上，留出细缝形成分层观感
	CardHeaderOffsetY = 0.52

	// CardTitlePaddingX 标题文字距头部左边缘的内边距
	CardTitlePaddingX = 0.06

	// CardAnchorDistance 卡片锚点距观察者的前向距离
	CardAnchorDistance = 1.6
)

// 定向卡片配色（半透明深色面板 + 亮色标题）
var (
	// CardBackgroundColor 背景面板颜色
	CardBackgroundColor = color.RGBA{16, 24, 38, 216}

	// CardHeaderColor 头部面板颜色
	CardHeaderColor = color.RGBA{32, 48, 72, 240}

	// CardTitleColor 标题文字颜色
	CardTitleColor = color.RGBA{255, 214, 92, 255}

	// CardDismissColor 关闭区域提示颜色
	CardDismissColor = color.RGBA{196, 204, 216, 255}
)
