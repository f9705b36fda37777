package simulation

// QTable 是稀疏的状态-动作值表：状态键 -> 长度固定为 ActionCount 的动作值向量。
// 未见过的状态在首次访问（读或写）时惰性初始化为全零向量，
// 之后的读取保证一致。表在一次运行内单调增长，只有显式 Reset 才会清空。
type QTable struct {
	entries map[string][]float64
}

// NewQTable 创建一张空的 Q 表。
func NewQTable() *QTable {
	return &QTable{entries: make(map[string][]float64)}
}

// values 返回 key 对应的动作值向量，不存在时先零初始化。
// 所有读写都经过这里，保证不变量：已创建的条目长度恒为 ActionCount。
func (q *QTable) values(key string) []float64 {
	v, ok := q.entries[key]
	if !ok {
		v = make([]float64, ActionCount)
		q.entries[key] = v
	}
	return v
}

// Get 返回 (key, action) 的当前值，未见过的 key 视为 0 并顺带完成初始化。
func (q *QTable) Get(key string, action AgentAction) float64 {
	return q.values(key)[action]
}

// Set 写入 (key, action) 的值，必要时先零初始化整条向量。
func (q *QTable) Set(key string, action AgentAction, value float64) {
	q.values(key)[action] = value
}

// MaxValue 返回 key 下所有动作值的最大值。
// 未见过的 key 等价于全零向量，最大值为 0。
func (q *QTable) MaxValue(key string) float64 {
	v := q.values(key)
	max := v[0]
	for _, val := range v[1:] {
		if val > max {
			max = val
		}
	}
	return max
}

// CountKeys 返回已发现的离散状态数量（诊断用）。
func (q *QTable) CountKeys() int {
	return len(q.entries)
}

// Reset 清空全部已学习的条目（操作员要求"遗忘所有学习"时使用）。
func (q *QTable) Reset() {
	q.entries = make(map[string][]float64)
}
