package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OverlayConfig 定向卡片的每实例配置
// 构造时设置一次，之后不再修改
//
// 对应 YAML 结构：
//
//	width: 1.2
//	height: 0.8
//	title: "Welcome"
type OverlayConfig struct {
	// Width 背景面板宽度（世界单位）
	Width float64 `yaml:"width"`

	// Height 背景面板高度（世界单位）
	Height float64 `yaml:"height"`

	// Title 卡片标题文字
	Title string `yaml:"title"`
}

// DefaultOverlayConfig 返回默认的叠加层配置
func DefaultOverlayConfig() OverlayConfig {
	return OverlayConfig{
		Width:  CardDefaultWidth,
		Height: CardDefaultHeight,
		Title:  "Welcome",
	}
}

// LoadOverlayConfig 从 YAML 文件加载叠加层配置
// 文件缺失或解析失败时返回错误，调用方可回退到 DefaultOverlayConfig
func LoadOverlayConfig(path string) (OverlayConfig, error) {
	cfg := DefaultOverlayConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read overlay config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse overlay config %s: %w", path, err)
	}

	// 非法尺寸回退到默认值（配置文件只覆盖合法字段）
	if cfg.Width <= 0 {
		cfg.Width = CardDefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = CardDefaultHeight
	}

	return cfg, nil
}
