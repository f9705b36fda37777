package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfigValid 内置参考配置必须通过校验。
func TestDefaultConfigValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("参考配置应合法: %v", err)
	}
}

// TestValidateRejections 非法参数必须在配置阶段被拒绝, 而不是留到仿真期。
func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"场地宽度为零", func(c *Config) { c.ArenaWidth = 0 }},
		{"场地高度为负", func(c *Config) { c.ArenaHeight = -100 }},
		{"小鱼半径为零", func(c *Config) { c.FishRadius = 0 }},
		{"小鱼半径过大", func(c *Config) { c.FishRadius = 500 }},
		{"捕食者速度为负", func(c *Config) { c.PredatorSpeed = -1 }},
		{"学习率越界", func(c *Config) { c.Alpha = 1.5 }},
		{"折扣因子为负", func(c *Config) { c.Gamma = -0.1 }},
		{"探索率越界", func(c *Config) { c.EpsilonInitial = 1.2 }},
		{"衰减系数为零", func(c *Config) { c.EpsilonDecay = 0 }},
		{"探索下限高于初值", func(c *Config) { c.EpsilonInitial = 0.3; c.EpsilonFloor = 0.4 }},
		{"距离分档颠倒", func(c *Config) { c.CriticalDistance = 200; c.CloseDistance = 150 }},
		{"贴墙阈值为零", func(c *Config) { c.WallDistance = 0 }},
		{"速度倍率为零", func(c *Config) { c.StepsPerTick = 0 }},
		{"速度倍率超上限", func(c *Config) { c.StepsPerTick = MaxStepsPerTick + 1 }},
		{"障碍物宽度为零", func(c *Config) { c.Obstacles[0].W = 0 }},
		{"障碍物类别未知", func(c *Config) { c.Obstacles[0].Category = "LAVA" }},
		{"训练代数为负", func(c *Config) { c.HeadlessGenerations = -1 }},
	}

	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: 期望校验报错, 却通过了", tc.name)
		}
	}
}

// TestLoadOverridesDefaults 外部 JSON 只覆盖给出的字段, 其余保持默认值。
func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"arenaWidth": 1024, "stepsPerTick": 10, "epsilonDecay": 0.99}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("写入临时配置失败: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if cfg.ArenaWidth != 1024 || cfg.StepsPerTick != 10 || cfg.EpsilonDecay != 0.99 {
		t.Errorf("覆盖字段未生效: %+v", cfg)
	}
	// 未给出的字段保持默认
	def := Default()
	if cfg.ArenaHeight != def.ArenaHeight || cfg.Alpha != def.Alpha || len(cfg.Obstacles) != len(def.Obstacles) {
		t.Errorf("默认字段被意外改动: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("覆盖后的配置应仍然合法: %v", err)
	}
}

// TestLoadMissingFile 不存在的配置文件应返回错误。
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("no/such/config.json"); err == nil {
		t.Fatal("加载不存在的文件应报错")
	}
}
