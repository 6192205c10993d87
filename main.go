package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/luckypick/pkg/app"
	"github.com/gonewx/luckypick/pkg/config"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	seed       = flag.Int64("seed", 0, "固定会话种子（0 = 使用当前时间，每次结果不同）")
	options    = flag.String("options", "", "启动时预填的选项，逗号分隔（如 \"火锅,烧烤,日料\"）")
	wheelMode  = flag.Bool("wheel", false, "以转盘模式启动")
	tuningPath = flag.String("tuning", "", "动画手感参数 YAML 文件路径（为空使用内置默认值）")
	fontPath   = flag.String("font", "", "字体文件路径（为空自动探测系统中文字体）")
)

// parseOptions 将逗号分隔的选项串拆分为列表，空白项丢弃
func parseOptions(raw string) []string {
	if raw == "" {
		return nil
	}
	var result []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

func main() {
	flag.Parse()

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		Options:    parseOptions(*options),
		WheelMode:  *wheelMode,
		TuningPath: *tuningPath,
		FontPath:   *fontPath,
	})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameTitle)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
