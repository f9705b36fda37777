package simulation

import "log"

// progressInterval 无界面训练时每多少代打印一次进度。
const progressInterval = 20

// RunTrainingSession 以无界面模式连续推进仿真，直到完成指定代数。
// 每次按配置的"速度倍率"批量推进，与外部调度器驱动时的路径完全一致。
func RunTrainingSession(env *Environment, generations int) {
	log.Printf("🐟 开始无界面训练: 目标 %d 代, 每批 %d 步", generations, env.Config().StepsPerTick)

	lastLogged := 0
	for env.manager.Stats.Generation < generations {
		if _, err := env.Advance(env.Config().StepsPerTick); err != nil {
			// StepsPerTick 已通过配置校验，这里不可能出错；万一出错立即止损
			log.Printf("❌ 推进仿真失败: %v", err)
			return
		}

		// 按"距上次打印的代数差"判定, 批量推进跨过多代也不会漏报
		if gen := env.manager.Stats.Generation; gen-lastLogged >= progressInterval {
			log.Printf("🧠 [第 %d 代] 最近存活 %d 步, 最佳 %d 步, ε=%.3f, 已发现 %d 个状态",
				gen, env.manager.Stats.LastSurvival, env.manager.Stats.BestSurvival,
				env.hp.Epsilon, env.qtable.CountKeys())
			lastLogged = gen
		}
	}

	log.Printf("✅ 训练完成: 共 %d 代, 总步数 %d, 最佳存活 %d 步",
		env.manager.Stats.Generation, env.totalSteps, env.manager.Stats.BestSurvival)
}
