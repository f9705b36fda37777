package simulation

// 全局仿真常量
const (
	// SpawnJitter 每局开始时小鱼相对场地中心的随机偏移幅度（每轴 ±50）
	SpawnJitter = 50.0

	// CornerMargin 捕食者出生角落向场内收缩的固定边距
	CornerMargin = 40.0

	// 终局奖励与生存奖励
	RewardSurvive  = 1.0    // 每存活一步的基础奖励
	RewardHiding   = 0.5    // 受威胁时躲进障碍物的额外奖励
	RewardCaptured = -100.0 // 被捕获的终局奖励（覆盖而非叠加）
)
