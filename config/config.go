package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ObstacleCategory 障碍物类别。类别只影响呈现层的配色，
// 对仿真核心而言两种类别的行为完全一致（都阻滞捕食者、都可供躲藏）。
type ObstacleCategory string

const (
	CategoryCoral   ObstacleCategory = "CORAL"   // 珊瑚
	CategorySeaweed ObstacleCategory = "SEAWEED" // 海藻
)

// ObstacleConfig 描述一块轴对齐的矩形障碍物。
// 障碍物集合在进程启动后不可变。
type ObstacleConfig struct {
	X        float64          `json:"x"`
	Y        float64          `json:"y"`
	W        float64          `json:"w"`
	H        float64          `json:"h"`
	Category ObstacleCategory `json:"category"`
}

// ===================================================================
//                           调度参数
// ===================================================================

// MaxStepsPerTick 限制外部调度器单次推进的最大步数（"速度倍率"上限）。
const MaxStepsPerTick = 50

// Config 结构体封装了所有可以从外部配置的环境参数。
// 所有字段在 Validate 通过之后即视为合法，仿真过程中不再检查。
type Config struct {
	// --- 场地参数 ---
	ArenaWidth  float64 `json:"arenaWidth"`
	ArenaHeight float64 `json:"arenaHeight"`

	// --- 智能体与捕食者 ---
	FishRadius     float64 `json:"fishRadius"`     // 小鱼碰撞半径（也用于边界收缩）
	PredatorRadius float64 `json:"predatorRadius"` // 捕食者碰撞半径
	FishSpeed      float64 `json:"fishSpeed"`      // 小鱼每步位移长度
	PredatorSpeed  float64 `json:"predatorSpeed"`  // 捕食者基础追击速度

	// --- Q-learning 超参数 ---
	Alpha          float64 `json:"alpha"`          // 学习率 α
	Gamma          float64 `json:"gamma"`          // 折扣因子 γ
	EpsilonInitial float64 `json:"epsilonInitial"` // 初始探索率 ε
	EpsilonDecay   float64 `json:"epsilonDecay"`   // 每代探索率衰减系数
	EpsilonFloor   float64 `json:"epsilonFloor"`   // 探索率下限 εmin

	// --- 状态离散化阈值 ---
	CriticalDistance float64 `json:"criticalDistance"` // 距离 < 该值 -> CRITICAL 档
	CloseDistance    float64 `json:"closeDistance"`    // 距离 < 该值 -> CLOSE 档（也是躲藏奖励的触发距离）
	WallDistance     float64 `json:"wallDistance"`     // 距场地边缘多近算"贴墙"

	// --- 场景 ---
	Obstacles []ObstacleConfig `json:"obstacles"`

	// --- 调度与呈现 ---
	StepsPerTick int  `json:"stepsPerTick"` // 每个外部 tick 推进的仿真步数 (1~50)
	ShowSensors  bool `json:"showSensors"`  // 呈现层是否叠加传感器调试图形（核心不使用，仅透传）

	// --- 运行控制 ---
	Seed                int64  `json:"seed"`                // 随机数种子，0 表示使用当前时间
	EnableAPIServer     bool   `json:"enableApiServer"`     // true: 启动 gRPC 服务供外部调度器驱动
	ListenAddr          string `json:"listenAddr"`          // gRPC 监听地址
	HeadlessGenerations int    `json:"headlessGenerations"` // 无界面模式下训练的代数
	ReportDir           string `json:"reportDir"`           // 统计报表输出目录
}

// Default 返回参考场景的完整配置：800x600 场地、4 块障碍物、
// 以及参考实现使用的全部超参数。
func Default() *Config {
	return &Config{
		ArenaWidth:  800,
		ArenaHeight: 600,

		FishRadius:     10,
		PredatorRadius: 14,
		FishSpeed:      4,
		PredatorSpeed:  2.2,

		Alpha:          0.1,
		Gamma:          0.9,
		EpsilonInitial: 1.0,
		EpsilonDecay:   0.995,
		EpsilonFloor:   0.05,

		CriticalDistance: 60,
		CloseDistance:    150,
		WallDistance:     40,

		Obstacles: []ObstacleConfig{
			{X: 120, Y: 100, W: 140, H: 90, Category: CategoryCoral},
			{X: 520, Y: 80, W: 160, H: 100, Category: CategorySeaweed},
			{X: 150, Y: 380, W: 180, H: 110, Category: CategorySeaweed},
			{X: 500, Y: 360, W: 150, H: 120, Category: CategoryCoral},
		},

		StepsPerTick: 1,
		ShowSensors:  false,

		Seed:                0,
		EnableAPIServer:     false,
		ListenAddr:          ":50051",
		HeadlessGenerations: 200,
		ReportDir:           "report",
	}
}

// Load 从 JSON 文件读取配置。文件中省略的字段保持 Default 取值。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}
	return cfg, nil
}

// Validate 在配置阶段拒绝所有非法参数。
// 仿真核心假定配置合法，因此这里必须把关：任何能让物理步产生
// 非数值结果或死循环的取值都在此报错，而不是留到运行期。
func (c *Config) Validate() error {
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		return fmt.Errorf("场地尺寸必须为正数, 得到 %.1f x %.1f", c.ArenaWidth, c.ArenaHeight)
	}
	if c.FishRadius <= 0 || c.PredatorRadius <= 0 {
		return fmt.Errorf("碰撞半径必须为正数, 得到 鱼=%.1f 捕食者=%.1f", c.FishRadius, c.PredatorRadius)
	}
	if c.FishRadius*2 >= c.ArenaWidth || c.FishRadius*2 >= c.ArenaHeight {
		return fmt.Errorf("小鱼半径 %.1f 相对场地过大", c.FishRadius)
	}
	if c.FishSpeed <= 0 || c.PredatorSpeed <= 0 {
		return fmt.Errorf("移动速度必须为正数, 得到 鱼=%.2f 捕食者=%.2f", c.FishSpeed, c.PredatorSpeed)
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("学习率 α 必须在 (0,1] 内, 得到 %.3f", c.Alpha)
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("折扣因子 γ 必须在 [0,1] 内, 得到 %.3f", c.Gamma)
	}
	if c.EpsilonInitial < 0 || c.EpsilonInitial > 1 {
		return fmt.Errorf("初始探索率 ε 必须在 [0,1] 内, 得到 %.3f", c.EpsilonInitial)
	}
	if c.EpsilonDecay <= 0 || c.EpsilonDecay > 1 {
		return fmt.Errorf("探索率衰减系数必须在 (0,1] 内, 得到 %.4f", c.EpsilonDecay)
	}
	if c.EpsilonFloor < 0 || c.EpsilonFloor > c.EpsilonInitial {
		return fmt.Errorf("探索率下限必须在 [0, ε初始值] 内, 得到 %.3f", c.EpsilonFloor)
	}
	if c.CriticalDistance <= 0 || c.CloseDistance <= c.CriticalDistance {
		return fmt.Errorf("距离分档阈值必须满足 0 < CRITICAL(%.1f) < CLOSE(%.1f)", c.CriticalDistance, c.CloseDistance)
	}
	if c.WallDistance <= 0 {
		return fmt.Errorf("贴墙阈值必须为正数, 得到 %.1f", c.WallDistance)
	}
	if c.StepsPerTick < 1 || c.StepsPerTick > MaxStepsPerTick {
		return fmt.Errorf("每 tick 步数必须在 1~%d 内, 得到 %d", MaxStepsPerTick, c.StepsPerTick)
	}
	for i, obs := range c.Obstacles {
		if obs.W <= 0 || obs.H <= 0 {
			return fmt.Errorf("障碍物 #%d 尺寸非法: w=%.1f h=%.1f", i, obs.W, obs.H)
		}
		if obs.Category != CategoryCoral && obs.Category != CategorySeaweed {
			return fmt.Errorf("障碍物 #%d 类别未知: %q", i, obs.Category)
		}
	}
	if c.HeadlessGenerations < 0 {
		return fmt.Errorf("训练代数不能为负数, 得到 %d", c.HeadlessGenerations)
	}
	return nil
}
