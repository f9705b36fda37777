package simulation

import (
	"math"

	"Evasion-Simulator/config"
)

// Vec2 表示场地坐标系中的一个二维向量/位置。
// 坐标系与画布一致：x 向右增大，y 向下增大。
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Length 返回向量长度。
func (a Vec2) Length() float64 {
	return math.Hypot(a.X, a.Y)
}

// Distance 返回两点间的欧氏距离。
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Bearing 返回 from 指向 to 的方位角 (弧度, atan2 约定)。
// 两点重合时方位角未定义，约定返回 0，保证后续计算不会产生 NaN。
func Bearing(from, to Vec2) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dy, dx)
}

// clamp 把 v 限制在 [lo, hi] 区间内。
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Obstacle 是仿真核心使用的障碍物表示，由 config.ObstacleConfig 映射而来。
// 整个进程生命周期内只读。
type Obstacle struct {
	X        float64                 `json:"x"`
	Y        float64                 `json:"y"`
	W        float64                 `json:"w"`
	H        float64                 `json:"h"`
	Category config.ObstacleCategory `json:"category"`
}

// Contains 判断点 p 是否落在障碍物矩形内部。
// 按参考行为使用开区间（边界本身不算"在内部"）。
// 尺寸非法的障碍物一律视为"不在内部"，绝不让坏数据中断物理步。
func (o Obstacle) Contains(p Vec2) bool {
	if o.W <= 0 || o.H <= 0 {
		return false
	}
	return p.X > o.X && p.X < o.X+o.W && p.Y > o.Y && p.Y < o.Y+o.H
}

// insideAnyObstacle 判断点 p 是否位于任何一块障碍物内部。
func insideAnyObstacle(p Vec2, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if o.Contains(p) {
			return true
		}
	}
	return false
}

// obstaclesFromConfig 把配置层的障碍物描述映射为核心表示。
func obstaclesFromConfig(list []config.ObstacleConfig) []Obstacle {
	obstacles := make([]Obstacle, len(list))
	for i, oc := range list {
		obstacles[i] = Obstacle{X: oc.X, Y: oc.Y, W: oc.W, H: oc.H, Category: oc.Category}
	}
	return obstacles
}
