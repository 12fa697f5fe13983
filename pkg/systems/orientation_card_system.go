package systems

import (
	"fmt"
	"log"

	"github.com/decker502/orientcard/pkg/components"
	"github.com/decker502/orientcard/pkg/config"
	"github.com/decker502/orientcard/pkg/ecs"
	"github.com/decker502/orientcard/pkg/game"
	"github.com/decker502/orientcard/pkg/utils"
)

// OrientationCardSystem 定向卡片叠加层的生命周期系统。
// 对外暴露 Initialize / Reveal / Dismiss / Update 四个同步入口，
// 宿主场景把自己的事件机制（启动触发、按键、点击）适配到这些方法上。
//
// 职责：
//   - 构造背景/头部两个面板实体并交给过渡系统管理
//   - 唤出时采样摄像机锚点（含平台相关深度偏移）并立即计算朝向
//   - 每帧根据头部面板进度重算叠加层整体可见标志
//   - 维护场景级模态标志和埋点
type OrientationCardSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	analytics     *game.AnalyticsManager // 可为 nil（埋点缺失时静默跳过）
	transition    *CardTransitionSystem

	cardEntity  ecs.EntityID // 卡片实体ID（0 表示尚未初始化）
	initialized bool
}

// NewOrientationCardSystem 创建定向卡片系统
// analytics 可为 nil；摄像机从 gameState 注入的 Camera 读取
func NewOrientationCardSystem(em *ecs.EntityManager, gs *game.GameState, analytics *game.AnalyticsManager) *OrientationCardSystem {
	return &OrientationCardSystem{
		entityManager: em,
		gameState:     gs,
		analytics:     analytics,
	}
}

// Initialize 构造卡片及其两个面板实体并完成内部接线
// 除内部接线外无可观察副作用；必须在 Reveal/Dismiss/Update 之前调用
func (s *OrientationCardSystem) Initialize(cfg config.OverlayConfig) error {
	if s.initialized {
		return fmt.Errorf("orientation card already initialized")
	}

	// 背景面板：width × height，位于卡片锚点
	backgroundEntity := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, backgroundEntity, &components.CardPanelComponent{
		Kind:   components.PanelBackground,
		Width:  cfg.Width,
		Height: cfg.Height,
	})

	// 头部面板：width × 固定头部高度，垂直偏移到背景上方
	headerEntity := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, headerEntity, &components.CardPanelComponent{
		Kind:    components.PanelHeader,
		Width:   cfg.Width,
		Height:  config.CardHeaderHeight,
		OffsetY: config.CardHeaderOffsetY,
	})

	// 卡片实体：标题文字区域靠左留内边距，垂直居中于头部
	s.cardEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.cardEntity, &components.OrientationCardComponent{
		Title:            cfg.Title,
		Width:            cfg.Width,
		Height:           cfg.Height,
		TitleOffsetX:     config.CardTitlePaddingX - cfg.Width/2,
		TitleOffsetY:     config.CardHeaderOffsetY,
		BackgroundEntity: backgroundEntity,
		HeaderEntity:     headerEntity,
	})
	ecs.AddComponent(s.entityManager, s.cardEntity, &components.PositionComponent{})
	ecs.AddComponent(s.entityManager, s.cardEntity, &components.BillboardComponent{})

	s.transition = NewCardTransitionSystem(s.entityManager, backgroundEntity, headerEntity)
	s.initialized = true

	log.Printf("[OrientationCard] initialized: %.2fx%.2f title=%q", cfg.Width, cfg.Height, cfg.Title)
	return nil
}

// Reveal 唤出卡片
//
// 副作用按序执行：
//  1. 置位场景级模态标志
//  2. 标题文字置为可见
//  3. 播放显示序列（头部先行，背景随后）
//  4. 采样一次摄像机锚点并按平台深度偏移设置卡片位置
//  5. 立即计算朝向角（不推迟到下一帧，保证首帧渲染即朝向正确）
//
// 卡片已在显示中/已显示时为幂等空操作（不重新定位）。
// 未初始化或摄像机缺失属于调用方时序错误，返回错误。
func (s *OrientationCardSystem) Reveal() error {
	if !s.initialized {
		return fmt.Errorf("orientation card not initialized")
	}

	camera := s.gameState.GetCamera()
	if camera == nil {
		return fmt.Errorf("camera anchor unavailable: reveal requires an initialized camera")
	}

	switch s.transition.State() {
	case components.TransitionShowing, components.TransitionShown:
		log.Printf("[OrientationCard] Reveal ignored: already %s", s.transition.State())
		return nil
	}

	card, ok := ecs.GetComponent[*components.OrientationCardComponent](s.entityManager, s.cardEntity)
	if !ok {
		return fmt.Errorf("orientation card component missing")
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.cardEntity)
	if !ok {
		return fmt.Errorf("orientation card position component missing")
	}
	billboard, ok := ecs.GetComponent[*components.BillboardComponent](s.entityManager, s.cardEntity)
	if !ok {
		return fmt.Errorf("orientation card billboard component missing")
	}

	s.gameState.SetModalActive(true)
	card.TitleVisible = true
	s.transition.PlayIn()

	// 锚点采样只在唤出时读取一次，不做持久化
	ax, ay, az := camera.AnchorPosition()
	fx, fz := camera.GetForward()
	depthOffset := utils.CardDepthOffset()
	pos.X = ax + fx*depthOffset
	pos.Y = ay
	pos.Z = az + fz*depthOffset

	// 首帧即面向观察者
	billboard.Yaw = camera.YawToward(pos.X, pos.Z)
	billboard.Enabled = true

	if s.analytics != nil {
		s.analytics.Track(game.AnalyticsEventCardOpened)
	}

	log.Printf("[OrientationCard] revealed at (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z)
	return nil
}

// Dismiss 关闭卡片
//
// 副作用按序执行：清除模态标志、清除整体可见标志、隐藏标题文字、
// 播放隐藏序列（背景先行，头部殿后——显示错开的精确镜像）。
// 卡片已隐藏时为空操作。
func (s *OrientationCardSystem) Dismiss() {
	if !s.initialized {
		log.Printf("[OrientationCard] Dismiss ignored: not initialized")
		return
	}

	if s.transition.State() == components.TransitionHidden {
		log.Printf("[OrientationCard] Dismiss ignored: already Hidden")
		return
	}

	card, ok := ecs.GetComponent[*components.OrientationCardComponent](s.entityManager, s.cardEntity)
	if !ok {
		return
	}

	s.gameState.SetModalActive(false)
	card.IsVisible = false
	card.TitleVisible = false
	s.transition.PlayOut()

	if s.analytics != nil {
		s.analytics.Track(game.AnalyticsEventCardDismissed)
	}

	log.Printf("[OrientationCard] dismissed")
}

// Update 每帧推进：先推进两个面板的动画，再重算整体可见标志。
//
// 可见标志的唯一权威是头部面板进度（进度 > 0 即可见），
// 无论是否有过渡在进行都必须每帧重算——"完全隐藏"的判定
// 正是头部进度精确归零的那一帧。
func (s *OrientationCardSystem) Update(deltaTime float64) {
	if !s.initialized {
		return
	}

	s.transition.Update(deltaTime)

	card, ok := ecs.GetComponent[*components.OrientationCardComponent](s.entityManager, s.cardEntity)
	if !ok {
		return
	}

	header, ok := ecs.GetComponent[*components.CardPanelComponent](s.entityManager, card.HeaderEntity)
	if ok {
		// 注意：整体可见性只看头部进度，从不参考背景进度。
		// 背景动画较慢的配置下可能出现叠加层已标记可见而背景仍全透明的帧，
		// 这是有意保留的既有规则（头部是权威框架层）。
		card.IsVisible = header.Progress > 0
	}

	// 朝向跟随：每帧使卡片正面朝向观察者
	billboard, ok := ecs.GetComponent[*components.BillboardComponent](s.entityManager, s.cardEntity)
	if ok && billboard.Enabled {
		if camera := s.gameState.GetCamera(); camera != nil {
			if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.cardEntity); ok {
				billboard.Yaw = camera.YawToward(pos.X, pos.Z)
			}
		}
	}
}

// SetOnFullyHidden 设置隐藏序列完成时的回调
// 这是本核心对外发出的唯一事件
func (s *OrientationCardSystem) SetOnFullyHidden(fn func()) {
	if s.transition != nil {
		s.transition.SetOnFullyHidden(fn)
	}
}

// State 返回叠加层当前的整体过渡状态
func (s *OrientationCardSystem) State() components.TransitionState {
	if !s.initialized {
		return components.TransitionHidden
	}
	return s.transition.State()
}

// CardEntity 返回卡片实体ID（0 表示尚未初始化）
func (s *OrientationCardSystem) CardEntity() ecs.EntityID {
	return s.cardEntity
}

// Transition 返回过渡系统（渲染/输入系统读取面板进度用）
func (s *OrientationCardSystem) Transition() *CardTransitionSystem {
	return s.transition
}

// IsInitialized 返回系统是否已初始化
func (s *OrientationCardSystem) IsInitialized() bool {
	return s.initialized
}
