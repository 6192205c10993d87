// verify_flow 无头验证抽取流程时间线
//
// 不创建窗口，直接驱动逻辑系统逐帧推进，验证：
//   - idle → spinning → revealing → result 的阶段时序（3.5s + 1.2s）
//   - 中奖下标在 spinning → revealing 时发布，此前始终为 -1
//   - 卡片角色分派（1 个 winner，其余 loser 且隐藏）
//   - 转盘模式下转盘停在中奖扇区
//   - 粒子批次按阶段出现，PickAgain/Reset 后全部清理
//   - 固定种子下整个会话可复现
//
// 用法：
//
//	go run ./cmd/verify_flow                # 卡片模式，3 个周期
//	go run ./cmd/verify_flow --wheel        # 转盘模式
//	go run ./cmd/verify_flow --seed 7 --cycles 5 --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/entities"
	"github.com/gonewx/luckypick/pkg/game"
	"github.com/gonewx/luckypick/pkg/systems"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	seedFlag    = flag.Int64("seed", 42, "会话种子（固定以便复现）")
	optionsFlag = flag.String("options", "火锅,烧烤,日料,披萨", "逗号分隔的选项列表")
	wheelFlag   = flag.Bool("wheel", false, "验证转盘模式（默认卡片模式）")
	cyclesFlag  = flag.Int("cycles", 3, "连续验证的抽取周期数")
)

const deltaTime = 1.0 / 60.0

// maxFramesPerCycle 单周期帧数上限（完整周期约 4.7 秒 ≈ 282 帧）
const maxFramesPerCycle = 600

// harness 无头验证环境：只挂逻辑系统，不挂渲染系统
type harness struct {
	entityManager  *ecs.EntityManager
	gameState      *game.GameState
	flowSystem     *systems.SpinFlowSystem
	wheelSystem    *systems.WheelSystem
	cardSystem     *systems.CardAnimationSystem
	particleSystem *systems.ParticleSystem

	wheelEntity ecs.EntityID // 转盘模式下的转盘实体，卡片模式为 0
	frame       int
	failures    int
}

func newHarness(labels []string, seed int64, wheelMode bool) (*harness, error) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()

	for _, label := range labels {
		if err := gs.AddOption(label); err != nil {
			return nil, fmt.Errorf("invalid option %q: %w", label, err)
		}
	}

	h := &harness{
		entityManager: em,
		gameState:     gs,
	}

	randomSource := rand.New(rand.NewSource(seed))
	h.flowSystem = systems.NewSpinFlowSystem(em, gs, nil, randomSource, uint64(seed))
	h.wheelSystem = systems.NewWheelSystem(em)
	h.cardSystem = systems.NewCardAnimationSystem(em)
	h.particleSystem = systems.NewParticleSystem(em)

	if wheelMode {
		wheelEntity, err := entities.NewWheel(em, gs.Options())
		if err != nil {
			return nil, fmt.Errorf("failed to create wheel: %w", err)
		}
		h.wheelEntity = wheelEntity
	} else {
		entities.NewOptionCards(em, gs.Options(), uint64(seed))
	}

	return h, nil
}

// step 推进一帧，系统顺序与真实场景一致
func (h *harness) step() {
	h.flowSystem.Update(deltaTime)
	h.wheelSystem.Update(deltaTime)
	h.cardSystem.Update(deltaTime)
	h.particleSystem.Update(deltaTime)
	h.entityManager.RemoveMarkedEntities()
	h.frame++
}

// stepUntilPhase 推进到目标阶段，返回经过的帧数
func (h *harness) stepUntilPhase(target components.AnimationPhase) (int, bool) {
	start := h.frame
	for i := 0; i < maxFramesPerCycle; i++ {
		h.step()
		if h.flowSystem.Phase() == target {
			return h.frame - start, true
		}
	}
	return h.frame - start, false
}

func (h *harness) check(ok bool, format string, args ...interface{}) {
	if ok {
		fmt.Printf("  ✅ "+format+"\n", args...)
	} else {
		fmt.Printf("  ❌ "+format+"\n", args...)
		h.failures++
	}
}

// cardCensus 统计卡片角色分布
func (h *harness) cardCensus() (winners, losers, hidden int) {
	for _, id := range ecs.GetEntitiesWith1[*components.CardComponent](h.entityManager) {
		card, _ := ecs.GetComponent[*components.CardComponent](h.entityManager, id)
		switch card.Role {
		case components.CardRoleWinner:
			winners++
		case components.CardRoleLoser:
			losers++
		}
		if card.Hidden {
			hidden++
		}
	}
	return winners, losers, hidden
}

// runCycle 走完一个完整抽取周期并检查各阶段行为，返回中奖下标
func (h *harness) runCycle(cycle int, wheelMode bool, optionCount int) int {
	fmt.Printf("\n--- 周期 %d (gen %d -> %d) ---\n", cycle, h.flowSystem.Generation(), h.flowSystem.Generation()+1)

	// 阶段变更轨迹
	var trace []string
	winnerAtReveal := -1
	h.flowSystem.SetOnPhaseChange(func(from, to components.AnimationPhase) {
		trace = append(trace, fmt.Sprintf("%s->%s@%.2fs", from, to, float64(h.frame)*deltaTime))
		if to == components.PhaseRevealing {
			// 发布时机检查：进入 revealing 的瞬间必须已有中奖下标
			winnerAtReveal = h.flowSystem.WinnerIndex()
		}
	})

	h.check(h.flowSystem.Decide(), "Decide 接受（idle 且选项充足）")
	h.check(h.flowSystem.Phase() == components.PhaseSpinning, "立即进入 spinning")
	h.check(h.flowSystem.WinnerIndex() == -1, "spinning 期间中奖下标未发布 (WinnerIndex=-1)")
	h.check(!h.flowSystem.Decide(), "spinning 期间重复 Decide 被拒绝")
	h.check(h.gameState.IsLocked(), "选项列表已锁定")

	frames, ok := h.stepUntilPhase(components.PhaseRevealing)
	h.check(ok, "到达 revealing")
	spinSeconds := float64(frames) * deltaTime
	h.check(math.Abs(spinSeconds-config.SpinDuration) < 0.05,
		"旋转时长 %.2fs（期望 %.1fs）", spinSeconds, config.SpinDuration)

	winner := h.flowSystem.WinnerIndex()
	h.check(winner >= 0 && winner < optionCount, "中奖下标 %d 在 [0, %d) 内", winner, optionCount)
	h.check(winnerAtReveal == winner, "中奖下标在进入 revealing 时已发布")

	if wheelMode {
		wheel, _ := ecs.GetComponent[*components.WheelComponent](h.entityManager, h.wheelEntity)
		h.check(wheel.WinnerSegment == winner, "转盘武装的扇区 %d 与中奖下标一致", wheel.WinnerSegment)
	} else {
		winners, losers, hidden := h.cardCensus()
		h.check(winners == 1, "恰好 1 张获胜卡片")
		h.check(losers == optionCount-1 && hidden == optionCount-1,
			"%d 张落选卡片全部隐藏", optionCount-1)
		h.check(h.particleSystem.Count() > 0, "落选卡片碎片已生成（%d 个粒子）", h.particleSystem.Count())
	}

	frames, ok = h.stepUntilPhase(components.PhaseResult)
	h.check(ok, "到达 result")
	revealSeconds := float64(frames) * deltaTime
	h.check(math.Abs(revealSeconds-config.RevealDelay) < 0.05,
		"揭晓停留 %.2fs（期望 %.1fs）", revealSeconds, config.RevealDelay)

	if wheelMode {
		wheel, _ := ecs.GetComponent[*components.WheelComponent](h.entityManager, h.wheelEntity)
		h.check(!wheel.Spinning, "转盘已停止")
		settled := systems.SegmentAtRotation(wheel.Rotation, optionCount)
		h.check(settled == winner, "指针停在扇区 %d（中奖下标 %d）", settled, winner)
	}

	dialogs := ecs.GetEntitiesWith1[*components.DialogComponent](h.entityManager)
	h.check(len(dialogs) == 1, "结果对话框已弹出")
	h.check(h.particleSystem.Count() > 0, "彩带/爆发粒子在场（%d 个）", h.particleSystem.Count())

	label, labelOK := h.gameState.Option(winner)
	h.check(labelOK, "中奖选项可取")
	fmt.Printf("  🏆 获胜: [%d] %s\n", winner, label)

	if *verbose {
		fmt.Printf("  轨迹: %s\n", strings.Join(trace, " "))
	}
	h.check(len(trace) == 3, "本周期恰好三次阶段切换（idle->spinning->revealing->result）")

	return winner
}

// finishCycle 用 PickAgain 收尾并检查清理
func (h *harness) finishCycle(wheelMode bool) {
	genBefore := h.flowSystem.Generation()
	h.check(h.flowSystem.PickAgain(), "PickAgain 接受")
	h.check(h.flowSystem.Generation() == genBefore+1, "PickAgain 递增代数")
	h.step()

	h.check(h.flowSystem.Phase() == components.PhaseIdle, "回到 idle")
	h.check(!h.gameState.IsLocked(), "选项列表解锁")
	h.check(h.particleSystem.Count() == 0, "粒子全部清理")
	h.check(len(ecs.GetEntitiesWith1[*components.DialogComponent](h.entityManager)) == 0, "对话框已关闭")

	if !wheelMode {
		winners, losers, hidden := h.cardCensus()
		h.check(winners == 0 && losers == 0 && hidden == 0, "卡片全部恢复空闲状态")
	}
}

// runSession 跑一个完整会话，返回每个周期的中奖序列
func runSession(labels []string, seed int64, wheelMode bool, cycles int) ([]int, int, error) {
	h, err := newHarness(labels, seed, wheelMode)
	if err != nil {
		return nil, 0, err
	}

	// 空转几帧：idle 阶段不应自行切换
	for i := 0; i < 120; i++ {
		h.step()
	}
	h.check(h.flowSystem.Phase() == components.PhaseIdle, "idle 阶段稳定（2 秒空转后仍为 idle）")

	winners := make([]int, 0, cycles)
	for c := 1; c <= cycles; c++ {
		winners = append(winners, h.runCycle(c, wheelMode, len(labels)))
		h.finishCycle(wheelMode)
	}

	// 最后验证 Reset：清空选项
	fmt.Printf("\n--- Reset ---\n")
	h.flowSystem.Reset()
	h.step()
	h.check(h.gameState.Count() == 0, "Reset 清空选项")
	h.check(!h.flowSystem.Decide(), "空列表 Decide 被拒绝")

	return winners, h.failures, nil
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	labels := parseOptions(*optionsFlag)
	if len(labels) < config.MinOptions {
		fmt.Printf("至少需要 %d 个选项（--options 提供了 %d 个）\n", config.MinOptions, len(labels))
		os.Exit(1)
	}

	mode := "卡片"
	if *wheelFlag {
		mode = "转盘"
	}
	fmt.Printf("=== 抽取流程无头验证 ===\n")
	fmt.Printf("模式: %s | 种子: %d | 选项: %v | 周期: %d\n", mode, *seedFlag, labels, *cyclesFlag)

	winners, failures, err := runSession(labels, *seedFlag, *wheelFlag, *cyclesFlag)
	if err != nil {
		fmt.Printf("❌ 初始化失败: %v\n", err)
		os.Exit(1)
	}

	// 可复现性：同种子重跑必须得到同一串中奖下标
	fmt.Printf("\n--- 可复现性 ---\n")
	fmt.Printf("第一轮中奖序列: %v\n", winners)
	winners2, failures2, err := runSessionQuiet(labels, *seedFlag, *wheelFlag, *cyclesFlag)
	if err != nil {
		fmt.Printf("❌ 重跑失败: %v\n", err)
		os.Exit(1)
	}
	failures += failures2
	if equalInts(winners, winners2) {
		fmt.Printf("  ✅ 同种子重跑得到相同序列 %v\n", winners2)
	} else {
		fmt.Printf("  ❌ 重跑序列不一致: %v vs %v\n", winners, winners2)
		failures++
	}

	fmt.Printf("\n=== 验证结果 ===\n")
	if failures > 0 {
		fmt.Printf("❌ %d 项检查未通过\n", failures)
		os.Exit(1)
	}
	fmt.Printf("✅ 全部检查通过\n")
}

// runSessionQuiet 静默重跑（只收集中奖序列，不打印逐项检查）
func runSessionQuiet(labels []string, seed int64, wheelMode bool, cycles int) ([]int, int, error) {
	h, err := newHarness(labels, seed, wheelMode)
	if err != nil {
		return nil, 0, err
	}

	winners := make([]int, 0, cycles)
	for c := 0; c < cycles; c++ {
		if !h.flowSystem.Decide() {
			return nil, 1, fmt.Errorf("decide rejected at cycle %d", c+1)
		}
		if _, ok := h.stepUntilPhase(components.PhaseResult); !ok {
			return nil, 1, fmt.Errorf("cycle %d did not reach result", c+1)
		}
		winners = append(winners, h.flowSystem.WinnerIndex())
		if !h.flowSystem.PickAgain() {
			return nil, 1, fmt.Errorf("pick again rejected at cycle %d", c+1)
		}
		h.step()
	}
	return winners, 0, nil
}

func parseOptions(raw string) []string {
	var result []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
