// Package scenes 提供宿主场景实现
//
// 定向卡片核心只暴露同步方法（Reveal/Dismiss/Update），
// 场景作为薄适配层，把宿主的事件机制（启动触发、按键、指针）
// 订阅到这些方法上。
package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/orientcard/pkg/config"
	"github.com/decker502/orientcard/pkg/ecs"
	"github.com/decker502/orientcard/pkg/game"
	"github.com/decker502/orientcard/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 摄像机转动速度（弧度/秒），用于演示卡片的朝向跟随
const cameraTurnSpeed = 1.2

// CardScene 定向卡片演示场景
// 承载卡片系统并把用户输入适配到卡片的同步入口：
//   - 启动时根据设置与引导状态自动唤出（首次启动语义）
//   - 回车键唤出，ESC 键关闭
//   - 头部面板点击关闭由 CardInputSystem 处理
//   - 左右方向键转动摄像机（验证朝向跟随）
type CardScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	onboarding    *game.OnboardingManager

	cardSystem   *systems.OrientationCardSystem
	inputSystem  *systems.CardInputSystem
	renderSystem *systems.CardRenderSystem

	// autoRevealPending 启动自动唤出待执行标志
	// 摄像机在首帧前已就位，首次 Update 时执行
	autoRevealPending bool
}

// NewCardScene 创建定向卡片演示场景
// 卡片配置、引导状态与埋点由调用方（App）注入
func NewCardScene(gs *game.GameState, cfg config.OverlayConfig, onboarding *game.OnboardingManager, analytics *game.AnalyticsManager) (*CardScene, error) {
	em := ecs.NewEntityManager()

	cardSystem := systems.NewOrientationCardSystem(em, gs, analytics)
	if err := cardSystem.Initialize(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize orientation card: %w", err)
	}

	scene := &CardScene{
		entityManager: em,
		gameState:     gs,
		onboarding:    onboarding,
		cardSystem:    cardSystem,
		inputSystem:   systems.NewCardInputSystem(em, gs, cardSystem, config.WindowWidth, config.WindowHeight),
		renderSystem:  systems.NewCardRenderSystem(em, gs, config.WindowWidth, config.WindowHeight),
	}

	// 隐藏序列完成（fully-hidden）即视为用户看完了引导
	cardSystem.SetOnFullyHidden(func() {
		log.Printf("[CardScene] card fully hidden")
		if scene.onboarding != nil {
			scene.onboarding.MarkCardSeen()
		}
	})

	// 启动自动唤出：仅当设置允许且卡片未被看过
	showOnLaunch := gs.GetSettingsManager().GetSettings().ShowCardOnLaunch
	seen := onboarding != nil && onboarding.IsCardSeen()
	scene.autoRevealPending = showOnLaunch && !seen

	return scene, nil
}

// Update 更新场景逻辑
func (s *CardScene) Update(deltaTime float64) {
	// 启动触发：延迟到首次 Update 执行，保证摄像机锚点可用
	if s.autoRevealPending {
		s.autoRevealPending = false
		if err := s.cardSystem.Reveal(); err != nil {
			log.Printf("[CardScene] auto reveal failed: %v", err)
		}
	}

	s.handleInput(deltaTime)

	s.inputSystem.Update(deltaTime)
	s.cardSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// handleInput 处理场景级按键输入
func (s *CardScene) handleInput(deltaTime float64) {
	camera := s.gameState.GetCamera()

	// 模态激活时摄像机停止响应转动（叠加层捕获主要交互）
	if camera != nil && !s.gameState.IsModalActive {
		if ebiten.IsKeyPressed(ebiten.KeyLeft) {
			camera.Rotate(-cameraTurnSpeed * deltaTime)
		}
		if ebiten.IsKeyPressed(ebiten.KeyRight) {
			camera.Rotate(cameraTurnSpeed * deltaTime)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := s.cardSystem.Reveal(); err != nil {
			log.Printf("[CardScene] reveal failed: %v", err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.cardSystem.Dismiss()
	}
}

// Draw 渲染场景
func (s *CardScene) Draw(screen *ebiten.Image) {
	// 深色场景背景
	screen.Fill(color.RGBA{R: 8, G: 10, B: 16, A: 255})

	s.renderSystem.Draw(screen)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("state: %s  (Enter: reveal, Esc/click header: dismiss, arrows: turn camera)", s.cardSystem.State()),
		8, config.WindowHeight-20)
}

// CardSystem 返回卡片系统（测试与验证工具用）
func (s *CardScene) CardSystem() *systems.OrientationCardSystem {
	return s.cardSystem
}
