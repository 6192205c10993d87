package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/luckypick/pkg/components"
	"github.com/gonewx/luckypick/pkg/config"
	"github.com/gonewx/luckypick/pkg/ecs"
	"github.com/gonewx/luckypick/pkg/entities"
	"github.com/gonewx/luckypick/pkg/game"
	"github.com/gonewx/luckypick/pkg/systems"
)

// 场景配色
var (
	sceneBackgroundColor = color.RGBA{R: 18, G: 22, B: 40, A: 255}
	sceneDividerColor    = color.RGBA{R: 46, G: 54, B: 92, A: 255}

	// 按钮底色/文字色（[R, G, B, A]，与按钮工厂的参数形式一致）
	addButtonFillColor    = [4]uint8{58, 70, 122, 255}
	decideButtonFillColor = [4]uint8{150, 118, 36, 255}
	toggleFillColor       = [4]uint8{42, 50, 88, 255}
	toggleMutedFillColor  = [4]uint8{48, 52, 64, 255}
	buttonLabelColor      = [4]uint8{236, 240, 252, 255}
	decideLabelColor      = [4]uint8{250, 244, 224, 255}
	toggleMutedLabelColor = [4]uint8{150, 158, 190, 255}
)

// PickerScene 抽取主场景
//
// 左侧是选项面板（输入框、添加按钮、选项列表、决定按钮），
// 右侧是舞台（卡片环或转盘，碎片和彩带也在这里）。
// 场景持有实体管理器和全部系统，Update 按固定顺序推进，
// Draw 按图层从底到顶渲染。
//
// 选项列表变化（添加/移除/清空）和模式切换都会触发舞台重建：
// 销毁旧的卡片/转盘实体，按当前列表重新创建。
type PickerScene struct {
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager // 可为 nil（无音频环境）
	gameState       *game.GameState

	entityManager *ecs.EntityManager

	// 逻辑系统
	spinFlowSystem      *systems.SpinFlowSystem
	wheelSystem         *systems.WheelSystem
	cardAnimationSystem *systems.CardAnimationSystem
	particleSystem      *systems.ParticleSystem
	buttonSystem        *systems.ButtonSystem
	textInputSystem     *systems.TextInputSystem
	optionPanelSystem   *systems.OptionPanelSystem
	dialogInputSystem   *systems.DialogInputSystem

	// 渲染系统
	panelRenderSystem     *systems.PanelRenderSystem
	cardRenderSystem      *systems.CardRenderSystem
	wheelRenderSystem     *systems.WheelRenderSystem
	particleRenderSystem  *systems.ParticleRenderSystem
	buttonRenderSystem    *systems.ButtonRenderSystem
	textInputRenderSystem *systems.TextInputRenderSystem
	dialogRenderSystem    *systems.DialogRenderSystem

	// 固定 UI 实体
	inputEntity  ecs.EntityID
	addButton    ecs.EntityID
	decideButton ecs.EntityID
	soundToggle  ecs.EntityID
	modeToggle   ecs.EntityID

	// 舞台实体（卡片环或转盘，二者只存在其一）
	cardEntities []ecs.EntityID
	wheelEntity  ecs.EntityID // 0 表示没有转盘

	// sessionSeed 会话种子，决定卡片漂浮相位和各粒子批次
	sessionSeed uint64

	// stageDirty 选项列表或模式变化后置位，本帧末尾重建舞台
	stageDirty bool
}

// NewPickerScene 创建抽取主场景
//
// 参数：
//   - rm: 资源管理器（字体）
//   - settings: 设置管理器（音效开关、转盘模式）
//   - am: 音频管理器，可为 nil
//   - rs: 中奖抽取的随机来源，nil 则使用时间种子
//   - sessionSeed: 会话种子（粒子/布局批次的基底）
//   - initialOptions: 预填选项（来自命令行），非法项跳过
func NewPickerScene(
	rm *game.ResourceManager,
	settings *game.SettingsManager,
	am *game.AudioManager,
	rs game.RandomSource,
	sessionSeed uint64,
	initialOptions []string,
) *PickerScene {
	scene := &PickerScene{
		resourceManager: rm,
		settingsManager: settings,
		audioManager:    am,
		sessionSeed:     sessionSeed,
	}

	scene.entityManager = ecs.NewEntityManager()
	scene.gameState = game.NewGameState()

	for _, option := range initialOptions {
		if err := scene.gameState.AddOption(option); err != nil {
			log.Printf("[PickerScene] Skipping initial option %q: %v", option, err)
		}
	}

	// 逻辑系统
	scene.spinFlowSystem = systems.NewSpinFlowSystem(scene.entityManager, scene.gameState, am, rs, sessionSeed)
	scene.wheelSystem = systems.NewWheelSystem(scene.entityManager)
	scene.cardAnimationSystem = systems.NewCardAnimationSystem(scene.entityManager)
	scene.particleSystem = systems.NewParticleSystem(scene.entityManager)
	scene.buttonSystem = systems.NewButtonSystem(scene.entityManager)
	scene.textInputSystem = systems.NewTextInputSystem(scene.entityManager)
	scene.optionPanelSystem = systems.NewOptionPanelSystem(scene.entityManager, scene.gameState, am)
	scene.dialogInputSystem = systems.NewDialogInputSystem(scene.entityManager)

	// 渲染系统
	scene.panelRenderSystem = systems.NewPanelRenderSystem(scene.gameState, rm)
	scene.cardRenderSystem = systems.NewCardRenderSystem(scene.entityManager, rm)
	scene.wheelRenderSystem = systems.NewWheelRenderSystem(scene.entityManager, rm)
	scene.particleRenderSystem = systems.NewParticleRenderSystem(scene.entityManager)
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(scene.entityManager, rm)
	scene.textInputRenderSystem = systems.NewTextInputRenderSystem(scene.entityManager, rm)
	scene.dialogRenderSystem = systems.NewDialogRenderSystem(scene.entityManager, rm)

	scene.cardAnimationSystem.SetOnRevealComplete(func(index int) {
		log.Printf("[PickerScene] Winner card settled (option %d)", index)
	})

	scene.createUIEntities()

	// 列表变化 → 下一帧重建舞台（回调可能在系统遍历中触发，不能当场改实体）
	scene.gameState.SetOnChange(func() {
		scene.stageDirty = true
	})
	scene.rebuildStage()

	log.Printf("[PickerScene] Initialized with %d options, seed=%d", scene.gameState.Count(), sessionSeed)
	return scene
}

// Update 按固定顺序更新所有系统
// deltaTime 是距上一帧的时间（秒）
func (s *PickerScene) Update(deltaTime float64) {
	// 输入系统在前：对话框可见时吞掉场景点击
	s.dialogInputSystem.Update(deltaTime) // 1. 结果对话框输入（模态）
	s.buttonSystem.Update(deltaTime)      // 2. 场景按钮悬停/点击
	s.textInputSystem.Update(deltaTime)   // 3. 输入框焦点与键盘
	s.optionPanelSystem.Update(deltaTime) // 4. 选项行 ✕ 移除

	// 按钮可用态跟随选项数和流程阶段
	s.syncUIState()

	// 流程与动画
	s.spinFlowSystem.Update(deltaTime)      // 5. 抽取流程（阶段时间线）
	s.wheelSystem.Update(deltaTime)         // 6. 转盘缓动转动
	s.cardAnimationSystem.Update(deltaTime) // 7. 卡片逐帧变换
	s.particleSystem.Update(deltaTime)      // 8. 碎片/彩带运动积分

	if s.audioManager != nil {
		s.audioManager.Update(deltaTime) // 9. 音频时钟（钟声去重用）
	}

	// 选项列表或模式变化后重建舞台实体
	if s.stageDirty {
		s.rebuildStage()
	}

	s.entityManager.RemoveMarkedEntities() // 10. 清理已销毁实体（必须最后）
}

// Draw 按图层从底到顶渲染场景
func (s *PickerScene) Draw(screen *ebiten.Image) {
	// Layer 1: 背景与面板/舞台分隔线
	screen.Fill(sceneBackgroundColor)
	dividerX := float32(config.PanelX + config.PanelWidth + 24)
	vector.StrokeLine(screen, dividerX, 64, dividerX, config.GameWindowHeight-36, 1, sceneDividerColor, true)

	// Layer 2: 标题与选项列表
	s.panelRenderSystem.Draw(screen)

	// Layer 3: 舞台（卡片环或转盘，只会存在其一）
	s.cardRenderSystem.Draw(screen)
	s.wheelRenderSystem.Draw(screen)

	// Layer 4: 粒子（碎片、中奖爆发、彩带）
	s.particleRenderSystem.Draw(screen)

	// Layer 5: 输入框与按钮
	s.textInputRenderSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)

	// Layer 6: 结果对话框（模态，最上层）
	s.dialogRenderSystem.Draw(screen)
}

// createUIEntities 创建固定 UI 实体：输入框和四个按钮
func (s *PickerScene) createUIEntities() {
	var err error

	s.inputEntity, err = entities.NewTextInput(s.entityManager,
		config.InputBoxX, config.InputBoxY,
		config.InputBoxWidth, config.InputBoxHeight,
		config.MaxOptionLength, "输入选项…",
		func(text string) { s.submitOption(text) })
	if err != nil {
		log.Printf("[PickerScene] ERROR: failed to create input box: %v", err)
	}

	s.addButton, err = entities.NewButton(s.entityManager,
		config.AddButtonX, config.AddButtonY,
		config.AddButtonWidth, config.AddButtonHeight,
		"添加", addButtonFillColor, buttonLabelColor,
		func() { s.onAddClicked() })
	if err != nil {
		log.Printf("[PickerScene] ERROR: failed to create add button: %v", err)
	}

	s.decideButton, err = entities.NewButton(s.entityManager,
		config.DecideButtonX, config.DecideButtonY,
		config.DecideButtonWidth, config.DecideButtonHeight,
		"决定", decideButtonFillColor, decideLabelColor,
		func() { s.spinFlowSystem.Decide() })
	if err != nil {
		log.Printf("[PickerScene] ERROR: failed to create decide button: %v", err)
	}

	s.soundToggle, err = entities.NewButton(s.entityManager,
		config.SoundToggleX, config.SoundToggleY,
		config.ToggleButtonSize, config.ToggleButtonSize,
		"声", toggleFillColor, buttonLabelColor,
		func() { s.onSoundToggleClicked() })
	if err != nil {
		log.Printf("[PickerScene] ERROR: failed to create sound toggle: %v", err)
	}

	s.modeToggle, err = entities.NewButton(s.entityManager,
		config.ModeToggleX, config.ModeToggleY,
		config.ToggleButtonSize, config.ToggleButtonSize,
		s.modeLabel(), toggleFillColor, buttonLabelColor,
		func() { s.onModeToggleClicked() })
	if err != nil {
		log.Printf("[PickerScene] ERROR: failed to create mode toggle: %v", err)
	}
}

// onAddClicked 添加按钮：提交输入框当前文本
func (s *PickerScene) onAddClicked() {
	input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, s.inputEntity)
	if !ok {
		return
	}
	s.submitOption(input.Text)
}

// submitOption 把一段文本加入选项列表，成功后清空输入框
func (s *PickerScene) submitOption(text string) {
	if err := s.gameState.AddOption(text); err != nil {
		log.Printf("[PickerScene] Option rejected: %v", err)
		return
	}

	if input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, s.inputEntity); ok {
		input.Text = ""
	}
	if s.audioManager != nil {
		s.audioManager.PlaySound(game.SoundClick)
	}
}

// onSoundToggleClicked 音效开关：翻转并持久化
func (s *PickerScene) onSoundToggleClicked() {
	enabled := !s.settingsManager.GetSettings().SoundEnabled
	s.settingsManager.SetSoundEnabled(enabled)
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[PickerScene] WARNING: failed to save settings: %v", err)
	}

	// 先翻转再播放：开启时立即可闻，关闭时自然静音
	if s.audioManager != nil {
		s.audioManager.PlaySound(game.SoundClick)
	}
}

// onModeToggleClicked 模式开关：卡片 ↔ 转盘，仅空闲阶段有效
func (s *PickerScene) onModeToggleClicked() {
	if s.spinFlowSystem.Phase() != components.PhaseIdle {
		return
	}

	wheelMode := !s.settingsManager.GetSettings().WheelMode
	s.settingsManager.SetWheelMode(wheelMode)
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[PickerScene] WARNING: failed to save settings: %v", err)
	}

	s.stageDirty = true
	if s.audioManager != nil {
		s.audioManager.PlaySound(game.SoundClick)
	}
	log.Printf("[PickerScene] Visualization mode: wheel=%v", wheelMode)
}

// modeLabel 模式开关按钮显示当前模式
func (s *PickerScene) modeLabel() string {
	if s.settingsManager.GetSettings().WheelMode {
		return "盘"
	}
	return "卡"
}

// syncUIState 每帧同步按钮可用态和开关外观
func (s *PickerScene) syncUIState() {
	idle := s.spinFlowSystem.Phase() == components.PhaseIdle

	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.decideButton); ok {
		button.Enabled = idle && s.gameState.CanDecide()
	}
	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.addButton); ok {
		button.Enabled = idle && s.gameState.CanAdd()
	}
	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.modeToggle); ok {
		button.Enabled = idle
		button.Text = s.modeLabel()
	}
	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.soundToggle); ok {
		if s.settingsManager.GetSettings().SoundEnabled {
			button.FillColor = toggleFillColor
			button.TextColor = buttonLabelColor
		} else {
			button.FillColor = toggleMutedFillColor
			button.TextColor = toggleMutedLabelColor
		}
	}
}

// rebuildStage 按当前选项列表和模式重建舞台实体
//
// 先销毁旧的卡片/转盘，再整批重建。只在空闲阶段发生：
// 周期进行中列表被锁定，模式开关也被禁用。
func (s *PickerScene) rebuildStage() {
	s.stageDirty = false

	for _, id := range s.cardEntities {
		s.entityManager.DestroyEntity(id)
	}
	s.cardEntities = nil

	if s.wheelEntity != 0 {
		s.entityManager.DestroyEntity(s.wheelEntity)
		s.wheelEntity = 0
	}

	labels := s.gameState.Options()
	if len(labels) == 0 {
		return
	}

	if s.settingsManager.GetSettings().WheelMode {
		wheel, err := entities.NewWheel(s.entityManager, labels)
		if err != nil {
			log.Printf("[PickerScene] ERROR: failed to create wheel: %v", err)
			return
		}
		s.wheelEntity = wheel
		return
	}

	s.cardEntities = entities.NewOptionCards(s.entityManager, labels, s.sessionSeed)
}
