package simulation

import (
	"math"

	"Evasion-Simulator/config"
)

// EpisodeState 是一局追逃的全部可变状态。
// 障碍物切片为共享只读引用；呈现层只能拿到 Snapshot 副本，拿不到这个结构。
type EpisodeState struct {
	Fish      Vec2       // 小鱼当前位置
	Predator  Vec2       // 捕食者当前位置
	Obstacles []Obstacle // 共享只读
	Ticks     int        // 本局已存活步数
	Terminal  bool       // true 表示已被捕获，必须先 Reset 才能继续推进
}

// Simulator 执行单步物理与学习更新。自身无可变状态，
// 所有可变量都通过参数显式传入（EpisodeState / QTable / Hyperparameters）。
type Simulator struct {
	cfg     *config.Config
	encoder *StateEncoder
	policy  *PolicyEngine
}

// NewSimulator 创建仿真器。
func NewSimulator(cfg *config.Config, encoder *StateEncoder, policy *PolicyEngine) *Simulator {
	return &Simulator{cfg: cfg, encoder: encoder, policy: policy}
}

// Step 原子地执行一个时间步。固定顺序：
//
//  1. 编码当前状态 s
//  2. ε-greedy 选动作
//  3. 小鱼按动作位移并夹取到场地边界内（两轴均收缩一个半径）
//  4. 以捕食者*移动前*的位置判定障碍物阻滞，决定本步追击速度
//     （障碍物减慢捕食者而不减慢小鱼, 这是让"躲藏"有价值的核心机制）
//  5. 捕食者沿直线方位朝小鱼*新*位置追击（纯追踪，不预测、不绕路）
//  6. 存活计数 +1
//  7. 编码后继状态 s'
//  8. 结算奖励：存活 +1；受威胁时躲在障碍物内额外 +0.5；
//     若鱼-捕食者距离小于碰撞半径之和，奖励被 -100 覆盖并判终局
//  9. 单步 Q-learning 更新: newQ = oldQ + α(r + γ·max Q(s') - oldQ)，
//     自举目标读取的是更新前的表（off-policy，非 SARSA）
//
// 调用方必须保证不对 Terminal 且未 Reset 的局面继续调用 Step。
func (s *Simulator) Step(ep *EpisodeState, qt *QTable, hp *Hyperparameters) StepOutcome {
	stateKey := s.encoder.Encode(ep.Fish, ep.Predator, ep.Obstacles)
	action := s.policy.ChooseAction(stateKey, hp.Epsilon, qt)

	// --- 小鱼移动 ---
	ep.Fish = ep.Fish.Add(action.Displacement().Scale(s.cfg.FishSpeed))
	ep.Fish.X = clamp(ep.Fish.X, s.cfg.FishRadius, s.cfg.ArenaWidth-s.cfg.FishRadius)
	ep.Fish.Y = clamp(ep.Fish.Y, s.cfg.FishRadius, s.cfg.ArenaHeight-s.cfg.FishRadius)

	// --- 捕食者追击 ---
	// 阻滞判定基于捕食者本步移动前的位置（行为保真所需的固定顺序）
	predatorSpeed := s.cfg.PredatorSpeed
	if insideAnyObstacle(ep.Predator, ep.Obstacles) {
		predatorSpeed /= 2
	}
	angle := Bearing(ep.Predator, ep.Fish)
	ep.Predator.X += math.Cos(angle) * predatorSpeed
	ep.Predator.Y += math.Sin(angle) * predatorSpeed
	ep.Predator.X = clamp(ep.Predator.X, s.cfg.PredatorRadius, s.cfg.ArenaWidth-s.cfg.PredatorRadius)
	ep.Predator.Y = clamp(ep.Predator.Y, s.cfg.PredatorRadius, s.cfg.ArenaHeight-s.cfg.PredatorRadius)

	ep.Ticks++
	nextKey := s.encoder.Encode(ep.Fish, ep.Predator, ep.Obstacles)

	// --- 奖励结算 ---
	dist := Distance(ep.Fish, ep.Predator)
	reward := RewardSurvive
	if insideAnyObstacle(ep.Fish, ep.Obstacles) && dist < s.cfg.CloseDistance {
		// 只奖励"有威胁时"的躲藏，而不是躲藏本身
		reward += RewardHiding
	}
	if dist < s.cfg.FishRadius+s.cfg.PredatorRadius {
		reward = RewardCaptured
		ep.Terminal = true
	}

	// --- Q-learning 更新 ---
	oldQ := qt.Get(stateKey, action)
	maxNextQ := qt.MaxValue(nextKey)
	qt.Set(stateKey, action, qUpdate(oldQ, reward, maxNextQ, hp.Alpha, hp.Gamma))

	return StepOutcome{
		Terminal:      ep.Terminal,
		SurvivalTicks: ep.Ticks,
		Reward:        reward,
		Action:        action,
		StateKey:      stateKey,
	}
}

// qUpdate 标准单步 Q-learning 更新规则。
func qUpdate(oldQ, reward, maxNextQ, alpha, gamma float64) float64 {
	return oldQ + alpha*(reward+gamma*maxNextQ-oldQ)
}
