package simulation

import "testing"

// TestDisplacementTable 验证固定动作集合：Stay 为零向量，
// 其余四个动作是对应方向的单位位移（画布坐标系, y 向下增大）。
func TestDisplacementTable(t *testing.T) {
	cases := []struct {
		action AgentAction
		want   Vec2
	}{
		{ActionStay, Vec2{X: 0, Y: 0}},
		{ActionUp, Vec2{X: 0, Y: -1}},
		{ActionDown, Vec2{X: 0, Y: 1}},
		{ActionLeft, Vec2{X: -1, Y: 0}},
		{ActionRight, Vec2{X: 1, Y: 0}},
	}
	for _, tc := range cases {
		if got := tc.action.Displacement(); got != tc.want {
			t.Errorf("动作 %v: 期望位移 %+v, 得到 %+v", tc.action, tc.want, got)
		}
	}

	// 越界动作安全地返回零向量
	if got := AgentAction(99).Displacement(); got != (Vec2{}) {
		t.Errorf("非法动作应返回零向量, 得到 %+v", got)
	}
}

// TestActionDisplacementsCopy 对外上报的位移表是值拷贝, 改写副本不影响原表。
func TestActionDisplacementsCopy(t *testing.T) {
	table := ActionDisplacements()
	if len(table) != ActionCount {
		t.Fatalf("位移表长度应为 %d, 得到 %d", ActionCount, len(table))
	}

	table[ActionUp] = Vec2{X: 9, Y: 9}
	if got := ActionUp.Displacement(); got != (Vec2{X: 0, Y: -1}) {
		t.Errorf("改写副本影响到了原表: %+v", got)
	}
}
