package simulation

import "testing"

// TestQTableLazyInit 验证未见过的键在首次读取时惰性初始化为全零向量，
// 且初始化后的条目长度恒为动作数。
func TestQTableLazyInit(t *testing.T) {
	qt := NewQTable()

	if qt.CountKeys() != 0 {
		t.Fatalf("新表应为空, 得到 %d 个键", qt.CountKeys())
	}

	// 首次 Get 返回 0 并作为副作用创建条目
	if v := qt.Get("unseen", ActionUp); v != 0 {
		t.Errorf("未见键的取值应为 0, 得到 %f", v)
	}
	if qt.CountKeys() != 1 {
		t.Errorf("Get 之后应有 1 个键, 得到 %d", qt.CountKeys())
	}
	if len(qt.entries["unseen"]) != ActionCount {
		t.Errorf("条目长度应为 %d, 得到 %d", ActionCount, len(qt.entries["unseen"]))
	}
}

// TestQTableSetGet 验证写后读的一致性，以及 Set 对新键的整条初始化。
func TestQTableSetGet(t *testing.T) {
	qt := NewQTable()
	qt.Set("s1", ActionLeft, 3.25)

	if v := qt.Get("s1", ActionLeft); v != 3.25 {
		t.Errorf("期望 3.25, 得到 %f", v)
	}
	// 同键其余动作保持零初始化
	if v := qt.Get("s1", ActionRight); v != 0 {
		t.Errorf("未写入的动作应为 0, 得到 %f", v)
	}
}

// TestQTableMaxValue 验证 MaxValue：未见键为 0，负值向量的最大值也要正确。
func TestQTableMaxValue(t *testing.T) {
	qt := NewQTable()

	if v := qt.MaxValue("unseen"); v != 0 {
		t.Errorf("未见键的最大值应为 0, 得到 %f", v)
	}

	qt.Set("s1", ActionStay, -7)
	qt.Set("s1", ActionUp, -2)
	qt.Set("s1", ActionDown, -9)
	qt.Set("s1", ActionLeft, -3)
	qt.Set("s1", ActionRight, -4)
	if v := qt.MaxValue("s1"); v != -2 {
		t.Errorf("期望最大值 -2, 得到 %f", v)
	}
}

// TestQTableReset 验证 Reset 清空全部条目。
func TestQTableReset(t *testing.T) {
	qt := NewQTable()
	qt.Set("s1", ActionStay, 1)
	qt.Set("s2", ActionUp, 2)

	qt.Reset()
	if qt.CountKeys() != 0 {
		t.Fatalf("Reset 之后应无任何键, 得到 %d", qt.CountKeys())
	}
}
