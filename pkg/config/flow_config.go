package config

// 抽取流程的行为常量
// 这些值定义流程语义（阶段时长、数量边界、去重窗口），
// 修改会改变测试基准，与 tuning.go 中的手感参数分开维护

const (
	// MinOptions 允许开始抽取的最少选项数
	MinOptions = 2

	// MaxOptions 允许添加的最多选项数
	MaxOptions = 8

	// MaxOptionLength 单个选项的最大字符数（rune计）
	MaxOptionLength = 16

	// SpinDuration 旋转阶段时长（秒）
	SpinDuration = 3.5

	// RevealDelay 揭晓阶段时长（秒），结束后进入结果阶段
	RevealDelay = 1.2

	// WheelHighlightDuration 转盘停止后中奖扇区的高亮渐显时长（秒）
	WheelHighlightDuration = 0.3

	// WinChimeDebounce 胜利音效的去重窗口（秒）
	// 窗口内的重复触发被忽略，跨周期的触发正常播放
	WinChimeDebounce = 1.0

	// FragmentsPerCard 每张落选卡片爆裂产生的碎片数
	FragmentsPerCard = 24

	// WinnerBurstParticles 中奖爆发的粒子数
	WinnerBurstParticles = 36

	// ConfettiParticles 彩带粒子数
	ConfettiParticles = 80
)
