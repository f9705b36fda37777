package simulation

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"Evasion-Simulator/config"
)

// TestTrainingSessionProgress 验证无界面训练跑满目标代数，
// 且在最大速度倍率下（单批跨越多代）进度日志依然会出现。
func TestTrainingSessionProgress(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 53
	cfg.StepsPerTick = config.MaxStepsPerTick
	if err := cfg.Validate(); err != nil {
		t.Fatalf("测试配置应合法: %v", err)
	}
	env := NewEnvironment(cfg)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	target := 2 * progressInterval
	RunTrainingSession(env, target)

	if gen := env.manager.Stats.Generation; gen < target {
		t.Fatalf("训练应完成至少 %d 代, 得到 %d", target, gen)
	}
	if !strings.Contains(buf.String(), "最近存活") {
		t.Errorf("跑满 %d 代后应至少打印过一次进度日志, 日志内容:\n%s", target, buf.String())
	}
}
