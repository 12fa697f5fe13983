// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/orientcard/pkg/config"
	"github.com/decker502/orientcard/pkg/game"
	"github.com/decker502/orientcard/pkg/scenes"
	"github.com/decker502/orientcard/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 叠加层 YAML 配置路径，为空则使用默认配置
	ConfigPath string
	// ResetOnboarding 清除"卡片已看过"标记（调试用）
	ResetOnboarding bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化跨平台存储（失败进入降级模式：状态仅存内存）
	var gdataManager *gdata.Manager
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: Failed to prepare storage dir: %v", err)
	} else {
		m, err := gdata.Open(gdata.Config{AppName: "orientcard"})
		if err != nil {
			log.Printf("[App] Warning: Failed to open gdata storage: %v (running without persistence)", err)
		} else {
			gdataManager = m
		}
	}

	gameState := game.GetGameState()
	gameState.SetGdataManager(gdataManager)

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: settings load failed: %v", err)
	}
	gameState.SetSettingsManager(settingsManager)

	onboarding := game.NewOnboardingManager(gdataManager)
	if cfg.ResetOnboarding {
		onboarding.Reset()
		log.Printf("[App] onboarding state reset")
	}

	analytics := game.NewAnalyticsManager(gdataManager)

	// 加载叠加层配置
	overlayConfig := config.DefaultOverlayConfig()
	if cfg.ConfigPath != "" {
		loaded, err := config.LoadOverlayConfig(cfg.ConfigPath)
		if err != nil {
			log.Printf("[App] Warning: %v (using defaults)", err)
		} else {
			overlayConfig = loaded
		}
	}

	cardScene, err := scenes.NewCardScene(gameState, overlayConfig, onboarding, analytics)
	if err != nil {
		return nil, fmt.Errorf("failed to create card scene: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(cardScene)

	log.Printf("[App] initialized (title=%q)", overlayConfig.Title)

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
