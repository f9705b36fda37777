package simulation

// AgentAction 代表小鱼在一个时间步内可以执行的离散动作。
type AgentAction int

const (
	// ActionStay 代表原地不动。
	ActionStay AgentAction = iota
	// ActionUp 代表向场地上方移动（y 减小）。
	ActionUp
	// ActionDown 代表向场地下方移动（y 增大）。
	ActionDown
	// ActionLeft 代表向左移动。
	ActionLeft
	// ActionRight 代表向右移动。
	ActionRight
)

// ActionCount 动作空间大小。Q 表中每个状态恒有这么多个动作值。
const ActionCount = 5

// actionDisplacements 每个动作对应的单位位移向量（Stay 为零向量），
// 实际位移 = 单位向量 * 每步速度。
var actionDisplacements = [ActionCount]Vec2{
	ActionStay:  {X: 0, Y: 0},
	ActionUp:    {X: 0, Y: -1},
	ActionDown:  {X: 0, Y: 1},
	ActionLeft:  {X: -1, Y: 0},
	ActionRight: {X: 1, Y: 0},
}

// Displacement 返回该动作的单位位移向量。
func (a AgentAction) Displacement() Vec2 {
	if a < 0 || a >= ActionCount {
		return Vec2{}
	}
	return actionDisplacements[a]
}

// ActionDisplacements 返回整张动作-位移表（按数组值拷贝, 调用方改不到原表）,
// 供配置面向外上报动作集合及各动作的位移向量。
func ActionDisplacements() [ActionCount]Vec2 {
	return actionDisplacements
}

func (a AgentAction) String() string {
	switch a {
	case ActionStay:
		return "STAY"
	case ActionUp:
		return "UP"
	case ActionDown:
		return "DOWN"
	case ActionLeft:
		return "LEFT"
	case ActionRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Hyperparameters 封装 Q-learning 的全部可调超参数。
// ε 随训练代数衰减，由 EpisodeManager 显式持有并修改，不存在隐藏全局量。
type Hyperparameters struct {
	Alpha        float64 `json:"alpha"`        // 学习率 α
	Gamma        float64 `json:"gamma"`        // 折扣因子 γ
	Epsilon      float64 `json:"epsilon"`      // 当前探索率 ε
	EpsilonDecay float64 `json:"epsilonDecay"` // 每代衰减系数
	EpsilonFloor float64 `json:"epsilonFloor"` // ε 下限
}

// StepOutcome 封装单个时间步执行后的完整结果。
type StepOutcome struct {
	Terminal      bool        // 本步是否以被捕获告终
	SurvivalTicks int         // 截至本步的存活步数（终局时即本局最终成绩）
	Reward        float64     // 本步获得的奖励
	Action        AgentAction // 本步实际执行的动作
	StateKey      string      // 本步决策所依据的离散状态键
}
