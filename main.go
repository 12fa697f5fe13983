package main

import (
	"flag"
	"log"

	"github.com/decker502/orientcard/pkg/app"
	"github.com/decker502/orientcard/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "叠加层 YAML 配置路径（可选）")
	resetOnboarding := flag.Bool("reset-onboarding", false, "清除卡片已看过标记")
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:         *verbose,
		ConfigPath:      *configPath,
		ResetOnboarding: *resetOnboarding,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
