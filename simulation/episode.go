package simulation

import (
	"math/rand"

	"Evasion-Simulator/config"
)

// RunStatistics 记录一次运行的训练统计。历史序列只追加不收缩。
type RunStatistics struct {
	Generation   int   `json:"generation"`   // 已完成的局数（代数）
	BestSurvival int   `json:"bestSurvival"` // 历史最佳存活步数
	LastSurvival int   `json:"lastSurvival"` // 最近一局的存活步数
	History      []int `json:"history"`      // 每局存活步数，按结束顺序追加
}

// EpisodeManager 负责局间生命周期：重置场面、衰减探索率、维护统计。
type EpisodeManager struct {
	cfg   *config.Config
	rng   *rand.Rand
	Stats RunStatistics
}

// NewEpisodeManager 创建局管理器。
func NewEpisodeManager(cfg *config.Config, rng *rand.Rand) *EpisodeManager {
	return &EpisodeManager{cfg: cfg, rng: rng}
}

// Reset 重开一局：小鱼放在场地中心附近（每轴 ±SpawnJitter 均匀抖动），
// 捕食者从四个角落中均匀随机挑一个、向场内收缩固定边距出场；
// 存活计数与终局标志清零。统计数据不受影响。
func (m *EpisodeManager) Reset(ep *EpisodeState) {
	ep.Fish = Vec2{
		X: m.cfg.ArenaWidth/2 + (m.rng.Float64()*2-1)*SpawnJitter,
		Y: m.cfg.ArenaHeight/2 + (m.rng.Float64()*2-1)*SpawnJitter,
	}

	corners := [4]Vec2{
		{X: CornerMargin, Y: CornerMargin},
		{X: m.cfg.ArenaWidth - CornerMargin, Y: CornerMargin},
		{X: CornerMargin, Y: m.cfg.ArenaHeight - CornerMargin},
		{X: m.cfg.ArenaWidth - CornerMargin, Y: m.cfg.ArenaHeight - CornerMargin},
	}
	ep.Predator = corners[m.rng.Intn(len(corners))]

	ep.Ticks = 0
	ep.Terminal = false
}

// OnEpisodeEnd 在一局结束（被捕获）时调用：
// 追加本局成绩、刷新最佳/最近记录、衰减探索率
// ε = max(εmin, ε·decay)、代数 +1，最后立即 Reset 开下一局。
// 仿真驱动方在 Step 报告终局后必须先走到这里，才允许继续推进。
func (m *EpisodeManager) OnEpisodeEnd(ep *EpisodeState, survivalTicks int, hp *Hyperparameters) {
	m.Stats.History = append(m.Stats.History, survivalTicks)
	m.Stats.LastSurvival = survivalTicks
	if survivalTicks > m.Stats.BestSurvival {
		m.Stats.BestSurvival = survivalTicks
	}
	m.Stats.Generation++

	hp.Epsilon *= hp.EpsilonDecay
	if hp.Epsilon < hp.EpsilonFloor {
		hp.Epsilon = hp.EpsilonFloor
	}

	m.Reset(ep)
}

// ResetStats 清零全部统计（ResetAll 流程的一部分）。
func (m *EpisodeManager) ResetStats() {
	m.Stats = RunStatistics{}
}
