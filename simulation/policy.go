package simulation

import "math/rand"

// PolicyEngine 实现 ε-greedy 动作选择。
// 随机源由外部注入，整个核心共享同一个种子化的 *rand.Rand，
// 既保证测试可复现，也保证核心保持单线程无锁。
type PolicyEngine struct {
	rng *rand.Rand
}

// NewPolicyEngine 创建策略引擎。
func NewPolicyEngine(rng *rand.Rand) *PolicyEngine {
	return &PolicyEngine{rng: rng}
}

// ChooseAction 以概率 ε 均匀随机探索，否则在当前状态的动作值向量上取贪心动作。
//
// 贪心分支必须收集所有并列最大的动作下标并在其中均匀随机挑选。
// 训练早期大量状态的动作值全为零，若总取第一个最大值，
// 智能体会被永久偏置到最低下标动作，探索覆盖会坍缩。
// 因此并列判定使用对最大值的精确相等比较，不做容差。
func (p *PolicyEngine) ChooseAction(key string, epsilon float64, qt *QTable) AgentAction {
	if p.rng.Float64() < epsilon {
		return AgentAction(p.rng.Intn(ActionCount))
	}

	values := qt.values(key)
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}

	best := make([]AgentAction, 0, ActionCount)
	for i, v := range values {
		if v == max {
			best = append(best, AgentAction(i))
		}
	}
	return best[p.rng.Intn(len(best))]
}
