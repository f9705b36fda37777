package collector

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"Evasion-Simulator/config"
	"Evasion-Simulator/simulation"

	"github.com/xuri/excelize/v2"
)

// TestStatRowShape 验证周期采样行与表头严格同列序、同长度，
// 且各列取值来自快照的对应字段。
func TestStatRowShape(t *testing.T) {
	snap := simulation.Snapshot{
		Epsilon:          0.42,
		StatesDiscovered: 17,
		Generation:       6,
		BestSurvival:     310,
		LastSurvival:     90,
		TotalSteps:       12345,
	}

	row := buildStatRow(55, snap)
	if len(row) != len(trainingHeaders) {
		t.Fatalf("行长 %d 与表头长 %d 不一致", len(row), len(trainingHeaders))
	}

	want := []interface{}{55, 6, 0.42, 17, 310, 90, int64(12345)}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("第 %d 列 (%s): 期望 %v, 得到 %v", i, trainingHeaders[i], want[i], row[i])
		}
	}
}

// TestSummaryRows 验证汇总表的均值/标准差计算及边界守卫：
// 多局取样本标准差, 单局标准差记 0, 空历史全部记 0。
func TestSummaryRows(t *testing.T) {
	snap := simulation.Snapshot{Generation: 3, TotalSteps: 600, StatesDiscovered: 9, Epsilon: 0.8, BestSurvival: 300}

	// 1. 多局历史: 均值 200, 样本标准差恰为 100
	rows := buildSummaryRows(snap, []float64{100, 200, 300})
	if len(rows) != 7 {
		t.Fatalf("汇总应有 7 行, 得到 %d", len(rows))
	}
	if rows[0][0] != "总代数" || rows[0][1] != 3 {
		t.Errorf("首行应为总代数 3, 得到 %v=%v", rows[0][0], rows[0][1])
	}
	if mean := rows[5][1].(float64); math.Abs(mean-200) > 1e-9 {
		t.Errorf("期望均值 200, 得到 %f", mean)
	}
	if stddev := rows[6][1].(float64); math.Abs(stddev-100) > 1e-9 {
		t.Errorf("期望标准差 100, 得到 %f", stddev)
	}

	// 2. 只有一局: 标准差无定义, 必须记 0 而不是 NaN
	rows = buildSummaryRows(snap, []float64{42})
	if mean := rows[5][1].(float64); mean != 42 {
		t.Errorf("单局均值应为 42, 得到 %f", mean)
	}
	if stddev := rows[6][1].(float64); stddev != 0 {
		t.Errorf("单局标准差应记 0, 得到 %f", stddev)
	}

	// 3. 空历史: 均值与标准差都记 0
	rows = buildSummaryRows(snap, nil)
	if rows[5][1].(float64) != 0 || rows[6][1].(float64) != 0 {
		t.Errorf("空历史应全部记 0, 得到 均值=%v 标准差=%v", rows[5][1], rows[6][1])
	}
}

// TestRunSavesReport 验证收集器生命周期：收到停止信号后把报表
// 保存到配置目录, 且工作簿中两张表的首格与约定一致。
func TestRunSavesReport(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 61
	cfg.ReportDir = t.TempDir()
	env := simulation.NewEnvironment(cfg)

	var wg sync.WaitGroup
	wg.Add(1)
	done := make(chan struct{})
	dc := NewDataCollector(&wg, done, env)

	// 1. 启动后立即发停止信号, 走保存路径
	go dc.Run()
	close(done)
	wg.Wait()

	// 2. 输出目录下应恰有一份带时间戳的报表
	entries, err := os.ReadDir(cfg.ReportDir)
	if err != nil {
		t.Fatalf("读取报告目录失败: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("期望 1 份报表, 得到 %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "training_results_") || !strings.HasSuffix(name, ".xlsx") {
		t.Fatalf("报表文件名不符合约定: %q", name)
	}

	// 3. 打开工作簿验证表头与汇总首格
	f, err := excelize.OpenFile(filepath.Join(cfg.ReportDir, name))
	if err != nil {
		t.Fatalf("打开报表失败: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			t.Errorf("关闭报表失败: %v", err)
		}
	}()

	if got, _ := f.GetCellValue("Training_Stats", "A1"); got != trainingHeaders[0] {
		t.Errorf("采样表首格期望 %q, 得到 %q", trainingHeaders[0], got)
	}
	if got, _ := f.GetCellValue("Summary", "A1"); got != "总代数" {
		t.Errorf("汇总表首格期望 %q, 得到 %q", "总代数", got)
	}
}
