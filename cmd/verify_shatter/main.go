// verify_shatter 碎片爆裂效果展示工具
//
// 打开窗口逐个触发三种粒子批次，肉眼检查布局、速度、重力和淡出，
// 以及同种子重放的一致性。
//
// 用法：
//
//	go run ./cmd/verify_shatter [flags]
//
// 控制：
//
//	鼠标点击   - 在光标处触发碎片爆裂
//	S         - 在舞台中心触发碎片爆裂
//	W         - 在舞台中心触发中奖爆发
//	C         - 触发彩带喷泉
//	A         - 模拟完整揭晓：在每个卡槽位触发爆裂
//	Space     - 用同一种子重放上一次效果（应与上次逐帧一致）
//	N         - 换一个种子
//	R         - 清除全部粒子
//	Q/Escape  - 退出
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/entities"
	"github.com/gonewx/luckypick/pkg/game"
	"github.com/gonewx/luckypick/pkg/systems"
)

const (
	screenWidth  = 960
	screenHeight = 600
)

var (
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
	seedFlag = flag.Uint64("seed", 1, "起始批次种子")
)

var errQuit = errors.New("quit requested")

// ShatterViewerGame 碎片效果查看器
type ShatterViewerGame struct {
	entityManager        *ecs.EntityManager
	particleSystem       *systems.ParticleSystem
	particleRenderSystem *systems.ParticleRenderSystem

	hintFace   text.Face
	seed       uint64
	lastEffect string // 上一次触发的效果（Space 重放用）
	lastX      float64
	lastY      float64
}

// NewShatterViewerGame 创建查看器实例
func NewShatterViewerGame(seed uint64) *ShatterViewerGame {
	em := ecs.NewEntityManager()
	rm := game.NewResourceManager()

	return &ShatterViewerGame{
		entityManager:        em,
		particleSystem:       systems.NewParticleSystem(em),
		particleRenderSystem: systems.NewParticleRenderSystem(em),
		hintFace:             rm.DefaultFace(14),
		seed:                 seed,
		lastEffect:           "shatter",
		lastX:                float64(config.StageCenterX),
		lastY:                float64(config.StageCenterY),
	}
}

// spawn 触发一种效果并记录，供 Space 重放
func (g *ShatterViewerGame) spawn(effect string, x, y float64) {
	g.lastEffect = effect
	g.lastX = x
	g.lastY = y

	switch effect {
	case "shatter":
		entities.NewShatterBurst(g.entityManager, x, y, g.seed)
	case "winner":
		entities.NewWinnerBurst(g.entityManager, x, y, g.seed)
	case "confetti":
		entities.NewConfettiBurst(g.entityManager, g.seed)
	case "reveal":
		// 完整揭晓：模拟 4 个选项中 0 号获胜，其余 3 个爆裂
		for i := 1; i < 4; i++ {
			sx, sy := config.CardSlotPosition(i, 4)
			entities.NewShatterBurst(g.entityManager, sx, sy, g.seed+uint64(i)*7919)
		}
	}
	log.Printf("[Viewer] Spawned %s at (%.0f, %.0f), seed=%d", effect, x, y, g.seed)
}

// Update 处理输入并推进粒子模拟
func (g *ShatterViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	centerX := float64(config.StageCenterX)
	centerY := float64(config.StageCenterY)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		mx, my := ebiten.CursorPosition()
		g.spawn("shatter", float64(mx), float64(my))
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.spawn("shatter", centerX, centerY)
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.spawn("winner", centerX, centerY)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.spawn("confetti", centerX, centerY)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.spawn("reveal", centerX, centerY)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		// 同种子重放：布局应与上一次完全一致
		g.spawn(g.lastEffect, g.lastX, g.lastY)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.seed++
		log.Printf("[Viewer] Seed -> %d", g.seed)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.entityManager.DestroyAllEntities()
	}

	g.particleSystem.Update(1.0 / 60.0)
	g.entityManager.RemoveMarkedEntities()
	return nil
}

// Draw 绘制粒子和状态信息
func (g *ShatterViewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 22, B: 40, A: 255})

	g.particleRenderSystem.Draw(screen)

	// 状态行
	status := fmt.Sprintf("效果: %s | 种子: %d | 活跃粒子: %d",
		g.lastEffect, g.seed, g.particleSystem.Count())
	g.drawText(screen, status, 10, 20)

	// 快捷键提示
	hints := []string{
		"点击: 光标处爆裂 | S: 中心爆裂 | W: 中奖爆发 | C: 彩带 | A: 模拟揭晓",
		"Space: 同种子重放 | N: 换种子 | R: 清除 | Q: 退出",
	}
	y := float64(screenHeight - 50)
	for _, hint := range hints {
		g.drawText(screen, hint, 10, y)
		y += 20
	}
}

func (g *ShatterViewerGame) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 200, G: 208, B: 230, A: 255})
	text.Draw(screen, s, g.hintFace, op)
}

// Layout 设置屏幕布局
func (g *ShatterViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	game := NewShatterViewerGame(*seedFlag)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("碎片爆裂效果查看器")

	if err := ebiten.RunGame(game); err != nil && err != errQuit {
		log.Fatal(err)
	}
}
