// verify_card 定向卡片过渡时序验证工具
//
// 无窗口运行：以固定步长驱动卡片的显示/隐藏序列，
// 打印每个关键时刻的面板进度与整体状态，便于人工核对时序：
//
//	go run ./cmd/verify_card
//	go run ./cmd/verify_card -step 0.01 -redirect
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/orientcard/pkg/components"
	"github.com/decker502/orientcard/pkg/config"
	"github.com/decker502/orientcard/pkg/ecs"
	"github.com/decker502/orientcard/pkg/game"
	"github.com/decker502/orientcard/pkg/systems"
)

var (
	step     = flag.Float64("step", 0.05, "模拟步长（秒）")
	redirect = flag.Bool("redirect", false, "在显示中途触发关闭（验证重定向）")
	verbose  = flag.Bool("verbose", false, "显示系统日志")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(0)

	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	gs.GetCamera().SetPosition(0, 1.6, 0)

	cardSystem := systems.NewOrientationCardSystem(em, gs, nil)
	if err := cardSystem.Initialize(config.DefaultOverlayConfig()); err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	fullyHidden := false
	cardSystem.SetOnFullyHidden(func() { fullyHidden = true })

	printHeader()

	t := 0.0
	dump := func(label string) {
		card, _ := ecs.GetComponent[*components.OrientationCardComponent](em, cardSystem.CardEntity())
		header, _ := ecs.GetComponent[*components.CardPanelComponent](em, card.HeaderEntity)
		background, _ := ecs.GetComponent[*components.CardPanelComponent](em, card.BackgroundEntity)
		fmt.Printf("%6.2fs  %-8s  header=%.2f  background=%.2f  visible=%-5v  %s\n",
			t, cardSystem.State(), header.Progress, background.Progress, card.IsVisible, label)
	}

	advance := func(until float64) {
		for t < until {
			cardSystem.Update(*step)
			t += *step
		}
	}

	if err := cardSystem.Reveal(); err != nil {
		log.Fatalf("唤出失败: %v", err)
	}
	dump("reveal")

	if *redirect {
		// 显示中途（头部约升至一半）触发关闭
		advance(0.05 + config.CardPanelDuration/2)
		dump("mid-reveal")
		cardSystem.Dismiss()
		dump("dismiss (redirect)")
	} else {
		advance(0.05)
		dump("")
		advance(0.30)
		dump("background starts")
		advance(1.0)
		dump("shown")
		cardSystem.Dismiss()
		dump("dismiss")
	}

	advance(t + 1.2)
	dump("")

	fmt.Printf("\nfully-hidden fired: %v\n", fullyHidden)
	if cardSystem.State() != components.TransitionHidden {
		fmt.Println("结果: FAIL（最终状态不是 Hidden）")
		os.Exit(1)
	}
	fmt.Println("结果: OK")
}

func printHeader() {
	fmt.Printf("面板时长 %.2fs；显示错开 header=%.2fs background=%.2fs；隐藏错开 background=%.2fs header=%.2fs\n\n",
		config.CardPanelDuration,
		config.CardShowHeaderDelay,
		config.CardShowBackgroundDelay+config.CardShowBackgroundStagger,
		config.CardHideBackgroundDelay,
		config.CardHideHeaderDelay+config.CardHideHeaderStagger)
}
