//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 可以通过设置环境变量 ORIENTCARD_MOBILE_EMULATE=1 强制启用移动模式（用于本地调试）
func IsMobile() bool {
	return os.Getenv("ORIENTCARD_MOBILE_EMULATE") == "1"
}

// 卡片深度偏移（世界单位，沿观察方向）
// 移动端视场角更大，卡片需要离观察者更近一些才能保持同样的视觉占比
const (
	cardDepthOffsetDesktop = -0.50
	cardDepthOffsetMobile  = -0.27
)

// CardDepthOffset 返回当前平台的卡片深度偏移
// 负值表示从锚点位置向观察者方向拉近
func CardDepthOffset() float64 {
	if IsMobile() {
		return cardDepthOffsetMobile
	}
	return cardDepthOffsetDesktop
}
