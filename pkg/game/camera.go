package game

import (
	"math"

	"github.com/decker502/orientcard/pkg/config"
)

// Camera 观察者视角（摄像机位姿）
// 坐标系：X 向右，Y 向上，Z 指向观察者身后（右手系）。
// Yaw 为绕 Y 轴的朝向角（弧度），0 表示朝向 +X 方向。
//
// 卡片显示时从这里读取一次锚点采样（卡片应吸附到的观察者前方位置），
// 采样是瞬时值，不做持久化。
type Camera struct {
	X, Y, Z float64
	Yaw     float64
}

// NewCamera 创建位于原点、朝向 +X 的摄像机
func NewCamera() *Camera {
	return &Camera{}
}

// GetForward 返回水平面内的前向单位向量
func (c *Camera) GetForward() (fx, fz float64) {
	return math.Cos(c.Yaw), math.Sin(c.Yaw)
}

// GetPosition 返回摄像机当前世界位置
func (c *Camera) GetPosition() (x, y, z float64) {
	return c.X, c.Y, c.Z
}

// SetPosition 设置摄像机世界位置
func (c *Camera) SetPosition(x, y, z float64) {
	c.X = x
	c.Y = y
	c.Z = z
}

// Rotate 按给定角度（弧度）旋转摄像机
func (c *Camera) Rotate(angle float64) {
	c.Yaw += angle
}

// AnchorPosition 返回卡片锚点采样：观察者前方固定距离处的世界位置
// 垂直方向保持与视线同高
func (c *Camera) AnchorPosition() (x, y, z float64) {
	fx, fz := c.GetForward()
	return c.X + fx*config.CardAnchorDistance, c.Y, c.Z + fz*config.CardAnchorDistance
}

// YawToward 返回从世界位置 (x, z) 朝向摄像机的偏航角（弧度）
// 卡片的朝向跟随使用此角度，使卡片正面始终面向观察者
func (c *Camera) YawToward(x, z float64) float64 {
	return math.Atan2(c.Z-z, c.X-x)
}
