package systems

import (
	"image/color"

	"github.com/decker502/orientcard/pkg/components"
	"github.com/decker502/orientcard/pkg/config"
	"github.com/decker502/orientcard/pkg/ecs"
	"github.com/decker502/orientcard/pkg/game"
	"github.com/decker502/orientcard/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// 投影参数
const (
	// projectionFocalRatio 焦距与窗口高度的比值
	projectionFocalRatio = 0.8

	// projectionNearPlane 近裁剪面（深度小于此值的面板不渲染）
	projectionNearPlane = 0.05
)

// CardRenderSystem 定向卡片渲染系统
// 负责把两个面板投影到屏幕并按动画进度绘制：
//   - 透明度 = 缓出后的面板进度
//   - 轻微缩放弹出效果（ReducedMotion 设置开启时关闭）
//   - 头部标题文字（左侧内边距 + 垂直居中）与右侧关闭提示
//
// 卡片始终面向观察者（billboard），因此面板以无倾斜矩形绘制。
type CardRenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	windowWidth   int
	windowHeight  int
	titleFace     text.Face // 标题字体（内置 basicfont，无需资源文件）
}

// NewCardRenderSystem 创建卡片渲染系统
func NewCardRenderSystem(em *ecs.EntityManager, gs *game.GameState, windowWidth, windowHeight int) *CardRenderSystem {
	return &CardRenderSystem{
		entityManager: em,
		gameState:     gs,
		windowWidth:   windowWidth,
		windowHeight:  windowHeight,
		titleFace:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 渲染所有定向卡片实体
func (s *CardRenderSystem) Draw(screen *ebiten.Image) {
	camera := s.gameState.GetCamera()
	if camera == nil {
		return
	}

	cardEntities := ecs.GetEntitiesWith2[*components.OrientationCardComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range cardEntities {
		card, ok := ecs.GetComponent[*components.OrientationCardComponent](s.entityManager, entityID)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		background, ok := ecs.GetComponent[*components.CardPanelComponent](s.entityManager, card.BackgroundEntity)
		if ok {
			s.drawPanel(screen, camera, pos, background, config.CardBackgroundColor)
		}

		header, ok := ecs.GetComponent[*components.CardPanelComponent](s.entityManager, card.HeaderEntity)
		if ok {
			s.drawPanel(screen, camera, pos, header, config.CardHeaderColor)
			s.drawTitle(screen, camera, pos, card, header)
		}
	}
}

// drawPanel 绘制单个面板矩形
// 透明度按缓出后的进度缩放；进度为 0 时完全不绘制
func (s *CardRenderSystem) drawPanel(screen *ebiten.Image, camera *game.Camera, pos *components.PositionComponent, panel *components.CardPanelComponent, clr color.RGBA) {
	if panel.Progress <= 0 {
		return
	}

	x, y, w, h, visible := PanelScreenRect(camera, pos, panel, s.windowWidth, s.windowHeight)
	if !visible {
		return
	}

	eased := utils.EaseOutCubic(utils.Clamp01(panel.Progress))

	// 缩放弹出效果：面板从 92% 放大到 100%
	if !s.gameState.GetSettingsManager().GetSettings().ReducedMotion {
		scale := utils.Lerp(0.92, 1.0, utils.EaseInOutCubic(utils.Clamp01(panel.Progress)))
		cx, cy := x+w/2, y+h/2
		w *= scale
		h *= scale
		x = cx - w/2
		y = cy - h/2
	}

	faded := color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: uint8(float64(clr.A) * eased)}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), faded, true)
}

// drawTitle 在头部面板上绘制标题和关闭提示
func (s *CardRenderSystem) drawTitle(screen *ebiten.Image, camera *game.Camera, pos *components.PositionComponent, card *components.OrientationCardComponent, header *components.CardPanelComponent) {
	if !card.TitleVisible || header.Progress <= 0 {
		return
	}

	x, y, w, h, visible := PanelScreenRect(camera, pos, header, s.windowWidth, s.windowHeight)
	if !visible {
		return
	}

	eased := utils.EaseOutCubic(utils.Clamp01(header.Progress))

	// 标题：左侧内边距，垂直居中
	paddingPx := config.CardTitlePaddingX / header.Width * w
	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Translate(x+paddingPx, y+h/2)
	titleOp.PrimaryAlign = text.AlignStart
	titleOp.SecondaryAlign = text.AlignCenter
	titleOp.ColorScale.ScaleWithColor(config.CardTitleColor)
	titleOp.ColorScale.ScaleAlpha(float32(eased))
	text.Draw(screen, card.Title, s.titleFace, titleOp)

	// 关闭提示：右侧内边距，整个头部即关闭点击区域
	dismissOp := &text.DrawOptions{}
	dismissOp.GeoM.Translate(x+w-paddingPx, y+h/2)
	dismissOp.PrimaryAlign = text.AlignEnd
	dismissOp.SecondaryAlign = text.AlignCenter
	dismissOp.ColorScale.ScaleWithColor(config.CardDismissColor)
	dismissOp.ColorScale.ScaleAlpha(float32(eased))
	text.Draw(screen, "x", s.titleFace, dismissOp)
}

// PanelScreenRect 计算面板投影后的屏幕矩形
//
// 投影模型：以摄像机为原点的透视投影，焦距为窗口高度的固定比例。
// 卡片始终面向观察者，面板因此退化为屏幕对齐矩形。
// 面板位于近裁剪面之内或观察者身后时返回 visible=false。
func PanelScreenRect(camera *game.Camera, pos *components.PositionComponent, panel *components.CardPanelComponent, windowWidth, windowHeight int) (x, y, w, h float64, visible bool) {
	fx, fz := camera.GetForward()
	// 右向量：前向量绕 Y 轴旋转 -90°
	rx, rz := -fz, fx

	dx := pos.X - camera.X
	dz := pos.Z - camera.Z

	depth := dx*fx + dz*fz
	if depth < projectionNearPlane {
		return 0, 0, 0, 0, false
	}

	focal := float64(windowHeight) * projectionFocalRatio
	lateral := dx*rx + dz*rz
	centerY := pos.Y + panel.OffsetY

	screenX := float64(windowWidth)/2 + lateral*focal/depth
	screenY := float64(windowHeight)/2 - (centerY-camera.Y)*focal/depth

	w = panel.Width * focal / depth
	h = panel.Height * focal / depth
	return screenX - w/2, screenY - h/2, w, h, true
}
