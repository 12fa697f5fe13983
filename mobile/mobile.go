//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker.orientcard -o build/android/orientcard.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/OrientCard.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/orientcard/pkg/app"
)

func init() {
	// 创建应用，使用默认配置
	cfg := app.Config{
		Verbose: true, // Enable verbose logging for debugging
	}

	cardApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	// 注册应用到 ebitenmobile
	mobile.SetGame(cardApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
