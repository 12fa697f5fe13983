package systems

import (
	"log"

	"github.com/decker502/orientcard/pkg/components"
	"github.com/decker502/orientcard/pkg/config"
	"github.com/decker502/orientcard/pkg/ecs"
)

// delayEpsilon 延迟耗减的浮点容差（秒）
const delayEpsilon = 1e-9

// CardTransitionSystem 管理定向卡片两个面板的显示/隐藏过渡。
// 负责以固定的错开时序下达 show/hide，逐帧推进动画进度，
// 并在隐藏序列完成时发出一次 fully-hidden 通知。
//
// 两个面板的动画状态由本系统独占，其他系统不得直接修改面板进度。
//
// 时序（见 config/card_config.go）：
//   - 显示：头部 0.05s 启动，背景 0.25s+0.05s 启动（头部先行）
//   - 隐藏：背景立即启动，头部 0.05s+0.25s 启动（头部殿后）
//
// 两侧互为精确的时间镜像：最后进入的层最后退出。
type CardTransitionSystem struct {
	entityManager    *ecs.EntityManager
	backgroundEntity ecs.EntityID // 背景面板实体ID
	headerEntity     ecs.EntityID // 头部面板实体ID

	// hideSequenceActive 当前是否有未完成的隐藏序列
	// PlayOut 实际启动隐藏时置位，fully-hidden 发出后或 PlayIn 时清除，
	// 保证每个隐藏序列恰好发出一次通知
	hideSequenceActive bool

	// onFullyHidden 隐藏序列完成时的回调（本系统对外发出的唯一事件）
	onFullyHidden func()
}

// NewCardTransitionSystem 创建卡片过渡系统
// backgroundEntity/headerEntity 必须各自拥有 CardPanelComponent
func NewCardTransitionSystem(em *ecs.EntityManager, backgroundEntity, headerEntity ecs.EntityID) *CardTransitionSystem {
	return &CardTransitionSystem{
		entityManager:    em,
		backgroundEntity: backgroundEntity,
		headerEntity:     headerEntity,
	}
}

// SetOnFullyHidden 设置隐藏序列完成时的回调
func (s *CardTransitionSystem) SetOnFullyHidden(fn func()) {
	s.onFullyHidden = fn
}

// panels 返回两个面板组件
func (s *CardTransitionSystem) panels() (background, header *components.CardPanelComponent, ok bool) {
	background, ok = ecs.GetComponent[*components.CardPanelComponent](s.entityManager, s.backgroundEntity)
	if !ok {
		return nil, nil, false
	}
	header, ok = ecs.GetComponent[*components.CardPanelComponent](s.entityManager, s.headerEntity)
	if !ok {
		return nil, nil, false
	}
	return background, header, true
}

// State 返回叠加层的整体过渡状态
// 状态从面板的进度/目标推导得出，从不单独存储，
// 避免显式状态枚举与面板实际状态不一致的重复状态缺陷
func (s *CardTransitionSystem) State() components.TransitionState {
	background, header, ok := s.panels()
	if !ok {
		return components.TransitionHidden
	}

	if header.Target >= 1 {
		if header.IsFullyShown() && background.IsFullyShown() {
			return components.TransitionShown
		}
		return components.TransitionShowing
	}

	if header.IsFullyHidden() && background.IsFullyHidden() {
		return components.TransitionHidden
	}
	return components.TransitionHiding
}

// PlayIn 播放显示序列：头部先行，背景随后
//
// 已处于 Showing/Shown 状态时为幂等空操作（不重复应用错开延迟）。
// 隐藏途中调用会把两个面板立即重定向回显示方向。
func (s *CardTransitionSystem) PlayIn() {
	background, header, ok := s.panels()
	if !ok {
		return
	}

	switch s.State() {
	case components.TransitionShowing, components.TransitionShown:
		log.Printf("[CardTransition] PlayIn ignored: already %s", s.State())
		return
	}

	s.hideSequenceActive = false
	s.showPanel(header, config.CardShowHeaderDelay, 0)
	s.showPanel(background, config.CardShowBackgroundDelay, config.CardShowBackgroundStagger)
	log.Printf("[CardTransition] PlayIn: header delay=%.2fs, background delay=%.2fs",
		config.CardShowHeaderDelay,
		config.CardShowBackgroundDelay+config.CardShowBackgroundStagger)
}

// PlayOut 播放隐藏序列：背景先行，头部殿后（PlayIn 的精确时间镜像）
//
// 已处于 Hidden 状态时为空操作。
// 显示途中调用会把两个面板立即重定向到隐藏方向：
// 进度从当前值单调走向 0，不会跳到 1 或重置归零。
func (s *CardTransitionSystem) PlayOut() {
	background, header, ok := s.panels()
	if !ok {
		return
	}

	if s.State() == components.TransitionHidden {
		log.Printf("[CardTransition] PlayOut ignored: already Hidden")
		return
	}

	s.hidePanel(background, config.CardHideBackgroundDelay, 0)
	s.hidePanel(header, config.CardHideHeaderDelay, config.CardHideHeaderStagger)
	s.hideSequenceActive = true
	log.Printf("[CardTransition] PlayOut: background delay=%.2fs, header delay=%.2fs",
		config.CardHideBackgroundDelay,
		config.CardHideHeaderDelay+config.CardHideHeaderStagger)
}

// Update 推进两个面板的动画并检测隐藏序列完成
// 每帧调用一次；deltaTime 为距上帧的秒数
func (s *CardTransitionSystem) Update(deltaTime float64) {
	background, header, ok := s.panels()
	if !ok {
		return
	}

	s.advancePanel(background, deltaTime)
	s.advancePanel(header, deltaTime)

	// 隐藏序列的完成以头部面板进度归零为准
	if s.hideSequenceActive && header.Target <= 0 && header.IsFullyHidden() {
		s.hideSequenceActive = false
		log.Printf("[CardTransition] fully hidden")
		if s.onFullyHidden != nil {
			s.onFullyHidden()
		}
	}
}

// showPanel 下达显示指令
// 面板的有效启动延迟为 delay + stagger；当前进度保留（支持中途重定向）
func (s *CardTransitionSystem) showPanel(panel *components.CardPanelComponent, delay, stagger float64) {
	panel.Target = 1
	panel.DelayRemaining = delay + stagger
	panel.Armed = true
}

// hidePanel 下达隐藏指令
// 与 showPanel 对称；进度保留，延迟耗尽后单调走向 0
func (s *CardTransitionSystem) hidePanel(panel *components.CardPanelComponent, delay, stagger float64) {
	panel.Target = 0
	panel.DelayRemaining = delay + stagger
	panel.Armed = true
}

// advancePanel 推进单个面板
// 先耗减启动延迟，剩余时间再按固定速率线性推进进度并钳制到目标
func (s *CardTransitionSystem) advancePanel(panel *components.CardPanelComponent, deltaTime float64) {
	if !panel.Armed {
		return
	}

	if panel.DelayRemaining > 0 {
		// 容差吸收累加误差，保证恰好到达延迟边界的帧进入动画状态
		if deltaTime+delayEpsilon < panel.DelayRemaining {
			panel.DelayRemaining -= deltaTime
			return
		}
		// 延迟在本帧内耗尽，剩余时间用于推进进度
		deltaTime -= panel.DelayRemaining
		panel.DelayRemaining = 0
		if deltaTime < 0 {
			deltaTime = 0
		}
	}

	step := deltaTime / config.CardPanelDuration
	if panel.Target > panel.Progress {
		panel.Progress += step
		if panel.Progress > panel.Target {
			panel.Progress = panel.Target
		}
	} else if panel.Target < panel.Progress {
		panel.Progress -= step
		if panel.Progress < panel.Target {
			panel.Progress = panel.Target
		}
	}
}
