package systems

import (
	"log"

	"github.com/decker502/orientcard/pkg/components"
	"github.com/decker502/orientcard/pkg/ecs"
	"github.com/decker502/orientcard/pkg/game"
	"github.com/decker502/orientcard/pkg/utils"
)

// CardInputSystem 定向卡片输入系统
// 检测指针释放（pointer-up，鼠标或触摸）是否落在头部面板的
// 关闭点击区域内，命中时调用卡片系统的 Dismiss。
//
// 只做矩形命中检测，不做射线投射；叠加层非模态激活时不响应。
type CardInputSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	cardSystem    *OrientationCardSystem
	windowWidth   int
	windowHeight  int
}

// NewCardInputSystem 创建卡片输入系统
func NewCardInputSystem(em *ecs.EntityManager, gs *game.GameState, cardSystem *OrientationCardSystem, windowWidth, windowHeight int) *CardInputSystem {
	return &CardInputSystem{
		entityManager: em,
		gameState:     gs,
		cardSystem:    cardSystem,
		windowWidth:   windowWidth,
		windowHeight:  windowHeight,
	}
}

// Update 处理本帧的指针输入
func (s *CardInputSystem) Update(deltaTime float64) {
	// 跟踪触摸位置，供释放事件取位置用
	utils.UpdateLastTouchPosition()

	if !s.cardSystem.IsInitialized() || !s.gameState.IsModalActive {
		return
	}

	released, px, py := utils.IsPointerJustReleased()
	if !released {
		return
	}

	x, y, w, h, ok := s.dismissHitRegion()
	if !ok {
		return
	}

	fx, fy := float64(px), float64(py)
	if fx >= x && fx <= x+w && fy >= y && fy <= y+h {
		log.Printf("[CardInput] dismiss region clicked at (%d, %d)", px, py)
		s.cardSystem.Dismiss()
	}
}

// dismissHitRegion 返回关闭点击区域的屏幕矩形（即头部面板的投影矩形）
func (s *CardInputSystem) dismissHitRegion() (x, y, w, h float64, ok bool) {
	camera := s.gameState.GetCamera()
	if camera == nil {
		return 0, 0, 0, 0, false
	}

	card, found := ecs.GetComponent[*components.OrientationCardComponent](s.entityManager, s.cardSystem.CardEntity())
	if !found || !card.IsVisible {
		return 0, 0, 0, 0, false
	}

	pos, found := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.cardSystem.CardEntity())
	if !found {
		return 0, 0, 0, 0, false
	}

	header, found := ecs.GetComponent[*components.CardPanelComponent](s.entityManager, card.HeaderEntity)
	if !found {
		return 0, 0, 0, 0, false
	}

	return PanelScreenRect(camera, pos, header, s.windowWidth, s.windowHeight)
}
