package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"Evasion-Simulator/config"
)

// Snapshot 是供呈现层消费的只读状态快照。
// 其中全部字段（含障碍物切片）都是副本，呈现层拿不到核心的可变结构，
// 学习与渲染之间不存在别名风险。
type Snapshot struct {
	Fish             Vec2       `json:"fish"`
	Predator         Vec2       `json:"predator"`
	Obstacles        []Obstacle `json:"obstacles"`
	Ticks            int        `json:"ticks"`
	Terminal         bool       `json:"terminal"`
	Epsilon          float64    `json:"epsilon"`
	StatesDiscovered int        `json:"statesDiscovered"`
	Generation       int        `json:"generation"`
	BestSurvival     int        `json:"bestSurvival"`
	LastSurvival     int        `json:"lastSurvival"`
	TotalSteps       int64      `json:"totalSteps"`
	ShowSensors      bool       `json:"showSensors"`
}

// Environment 聚合一次运行的全部仿真组件：Q 表、当前局面、
// 超参数、仿真器与局管理器。整个核心按单线程协作式模型设计，
// 由外部调度器决定何时、连续推进多少步；核心内部无锁。
// 并发防护（如果外部需要）放在 API 边界，不在这里。
type Environment struct {
	cfg *config.Config

	qtable  *QTable
	episode EpisodeState
	hp      Hyperparameters

	simulator *Simulator
	manager   *EpisodeManager

	totalSteps int64
}

// NewEnvironment 按配置组装全部组件并开出第一局。
// 调用方必须先通过 cfg.Validate()。
func NewEnvironment(cfg *config.Config) *Environment {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	env := &Environment{
		cfg:    cfg,
		qtable: NewQTable(),
		hp: Hyperparameters{
			Alpha:        cfg.Alpha,
			Gamma:        cfg.Gamma,
			Epsilon:      cfg.EpsilonInitial,
			EpsilonDecay: cfg.EpsilonDecay,
			EpsilonFloor: cfg.EpsilonFloor,
		},
		simulator: NewSimulator(cfg, NewStateEncoder(cfg), NewPolicyEngine(rng)),
		manager:   NewEpisodeManager(cfg, rng),
	}
	env.episode.Obstacles = obstaclesFromConfig(cfg.Obstacles)
	env.manager.Reset(&env.episode)
	return env
}

// Advance 连续推进 n 个仿真步（外部 tick 的"速度倍率"），
// 返回期间结束的局数。每个子步都能看到之前所有子步对 Q 表的更新。
// 某一步判终局时，先交给 OnEpisodeEnd 完成统计与重置，再走下一步:
// 绝不会对终局且未重置的局面继续推进。
func (e *Environment) Advance(n int) (int, error) {
	if n < 1 || n > config.MaxStepsPerTick {
		return 0, fmt.Errorf("单次推进步数必须在 1~%d 内, 得到 %d", config.MaxStepsPerTick, n)
	}

	completed := 0
	for i := 0; i < n; i++ {
		outcome := e.simulator.Step(&e.episode, e.qtable, &e.hp)
		e.totalSteps++
		if outcome.Terminal {
			e.manager.OnEpisodeEnd(&e.episode, outcome.SurvivalTicks, &e.hp)
			completed++
		}
	}
	return completed, nil
}

// Reset 只重开当前一局（不动 Q 表、探索率和统计）。
func (e *Environment) Reset() {
	e.manager.Reset(&e.episode)
}

// ResetAll 丢弃全部学习成果：清空 Q 表、探索率回到初始值、
// 统计清零、步数归零，并重开一局。
func (e *Environment) ResetAll() {
	e.qtable.Reset()
	e.hp.Epsilon = e.cfg.EpsilonInitial
	e.manager.ResetStats()
	e.totalSteps = 0
	e.manager.Reset(&e.episode)
}

// Snapshot 生成当前状态的只读副本，呈现层每个外部 tick 读取一次。
func (e *Environment) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(e.episode.Obstacles))
	copy(obstacles, e.episode.Obstacles)

	return Snapshot{
		Fish:             e.episode.Fish,
		Predator:         e.episode.Predator,
		Obstacles:        obstacles,
		Ticks:            e.episode.Ticks,
		Terminal:         e.episode.Terminal,
		Epsilon:          e.hp.Epsilon,
		StatesDiscovered: e.qtable.CountKeys(),
		Generation:       e.manager.Stats.Generation,
		BestSurvival:     e.manager.Stats.BestSurvival,
		LastSurvival:     e.manager.Stats.LastSurvival,
		TotalSteps:       e.totalSteps,
		ShowSensors:      e.cfg.ShowSensors,
	}
}

// SurvivalHistory 返回每局存活步数历史的副本（统计报表用）。
func (e *Environment) SurvivalHistory() []float64 {
	history := make([]float64, len(e.manager.Stats.History))
	for i, ticks := range e.manager.Stats.History {
		history[i] = float64(ticks)
	}
	return history
}

// Config 返回环境的配置（只读约定）。
func (e *Environment) Config() *config.Config {
	return e.cfg
}
