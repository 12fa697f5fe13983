//go:build mobile

package utils

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时返回 true
func IsMobile() bool {
	return true
}

// 卡片深度偏移（世界单位，沿观察方向）
const (
	cardDepthOffsetMobile = -0.27
)

// CardDepthOffset 返回当前平台的卡片深度偏移
func CardDepthOffset() float64 {
	return cardDepthOffsetMobile
}
