package main

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"Evasion-Simulator/api"
	"Evasion-Simulator/collector"
	"Evasion-Simulator/config"
	"Evasion-Simulator/simulation"
)

func main() {
	log.Println("=============================================")
	log.Println("=====  Pursuit-Evasion Q-Learning Sim  =====")
	log.Println("=============================================")

	// --- 1. 加载并校验配置 ---
	cfg := config.Default()
	if len(os.Args) > 1 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		cfg = loaded
		log.Printf("加载配置: 外部文件 %s", os.Args[1])
	} else {
		log.Println("加载配置: 内置参考场景")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ 配置非法: %v", err)
	}

	log.Printf("加载配置: 场地 %.0fx%.0f, 障碍物 %d 块, 每 tick %d 步",
		cfg.ArenaWidth, cfg.ArenaHeight, len(cfg.Obstacles), cfg.StepsPerTick)
	log.Printf("加载配置: α=%.2f γ=%.2f ε=%.2f (衰减 %.3f, 下限 %.2f)",
		cfg.Alpha, cfg.Gamma, cfg.EpsilonInitial, cfg.EpsilonDecay, cfg.EpsilonFloor)

	// --- 2. 组装仿真环境 ---
	env := simulation.NewEnvironment(cfg)
	log.Println("🐟 仿真环境已就绪, 第一局开始.")

	// --- 3. 启动独立的数据收集器 ---
	var collectorWg sync.WaitGroup
	collectorWg.Add(1)
	doneChan := make(chan struct{})

	dataCollector := collector.NewDataCollector(&collectorWg, doneChan, env)
	go dataCollector.Run()

	// --- 4. 运行：gRPC 服务模式或无界面训练模式 ---
	if cfg.EnableAPIServer {
		grpcServer, err := api.ListenAndServe(cfg.ListenAddr, env)
		if err != nil {
			log.Fatalf("❌ 无法启动 gRPC 服务: %v", err)
		}

		// 等待退出信号后优雅停机
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("... 收到退出信号, 正在停止 gRPC 服务 ...")
		grpcServer.GracefulStop()
	} else {
		simulation.RunTrainingSession(env, cfg.HeadlessGenerations)
	}

	// --- 5. 结束并保存 ---
	log.Println("... 正在停止数据收集器并保存结果 ...")
	close(doneChan)    // 发送停止信号
	collectorWg.Wait() // 等待收集器完成文件保存

	log.Println("=============================================")
	log.Println("===========  SIMULATION FINISHED  ===========")
	log.Println("=============================================")
}
