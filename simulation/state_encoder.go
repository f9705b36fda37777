package simulation

import (
	"fmt"
	"math"

	"Evasion-Simulator/config"
)

// 距离分档标签。完整的连续状态对表格型学习来说不可行，
// 这里的离散化刻意只保留逃生行为所需的最小充分统计量：
// 威胁方位、威胁距离、撞墙风险、躲藏机会。
const (
	TierCritical = "CRITICAL"
	TierClose    = "CLOSE"
	TierFar      = "FAR"
)

// StateEncoder 把连续的（小鱼位置, 捕食者位置, 障碍物集合）
// 映射为确定性的离散状态键。纯函数：相同输入必得相同键。
type StateEncoder struct {
	cfg *config.Config
}

// NewStateEncoder 创建状态编码器。阈值全部取自配置。
func NewStateEncoder(cfg *config.Config) *StateEncoder {
	return &StateEncoder{cfg: cfg}
}

// Encode 生成状态键，格式: "<八分区>|<距离档>|<四位贴墙串>|<躲藏位>"。
// 用 '|' 分隔保证四元组不同则键必不同。复杂度 O(障碍物数量)。
func (e *StateEncoder) Encode(fish, predator Vec2, obstacles []Obstacle) string {
	octant := e.threatOctant(fish, predator)
	tier := e.distanceTier(Distance(fish, predator))
	walls := e.wallProximity(fish)
	hiding := 0
	if insideAnyObstacle(fish, obstacles) {
		hiding = 1
	}
	return fmt.Sprintf("%d|%s|%s|%d", octant, tier, walls, hiding)
}

// threatOctant 把小鱼指向捕食者的方位角离散成 8 个 45° 扇区 (0~7)。
// 两点重合时 Bearing 返回 0，对应扇区 4，不会产生非法值。
func (e *StateEncoder) threatOctant(fish, predator Vec2) int {
	angle := Bearing(fish, predator)
	octant := int(math.Floor((angle + math.Pi) / (2 * math.Pi) * 8))
	// angle == +π 时上式恰好得到 8，归并到最后一个扇区
	if octant > 7 {
		octant = 7
	}
	if octant < 0 {
		octant = 0
	}
	return octant
}

// distanceTier 把鱼-捕食者距离分成三档，边界语义严格取 "<"：
// 距离恰为 CriticalDistance 时已属 CLOSE，恰为 CloseDistance 时已属 FAR。
func (e *StateEncoder) distanceTier(dist float64) string {
	switch {
	case dist < e.cfg.CriticalDistance:
		return TierCritical
	case dist < e.cfg.CloseDistance:
		return TierClose
	default:
		return TierFar
	}
}

// wallProximity 生成四位 '0'/'1' 串，顺序固定为 北、南、西、东，
// 表示小鱼是否贴近对应场边（阈值 WallDistance）。
func (e *StateEncoder) wallProximity(fish Vec2) string {
	walls := [4]byte{'0', '0', '0', '0'}
	if fish.Y < e.cfg.WallDistance {
		walls[0] = '1'
	}
	if fish.Y > e.cfg.ArenaHeight-e.cfg.WallDistance {
		walls[1] = '1'
	}
	if fish.X < e.cfg.WallDistance {
		walls[2] = '1'
	}
	if fish.X > e.cfg.ArenaWidth-e.cfg.WallDistance {
		walls[3] = '1'
	}
	return string(walls[:])
}
