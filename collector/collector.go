package collector

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"Evasion-Simulator/simulation"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/stat"
)

const (
	// collectionInterval 定义了数据采样并写入 Excel 的时间间隔。
	collectionInterval = 5 * time.Second
)

// trainingHeaders 周期采样表的表头, 列序与 buildStatRow 一一对应。
var trainingHeaders = []string{"采样时间", "代数", "探索率 ε", "已发现状态数", "最佳存活步数", "最近存活步数", "累计总步数"}

// DataCollector 结构体封装了训练数据收集器的所有依赖和状态。
// 它在独立的 goroutine 中周期性读取环境快照，进程结束时
// 把统计汇总保存为 Excel 报表。收集器只消费 Snapshot，
// 从不触碰仿真核心的可变结构。
type DataCollector struct {
	env      *simulation.Environment
	filename string
	wg       *sync.WaitGroup
	done     <-chan struct{}
}

// NewDataCollector 创建一个新的数据收集器实例。
func NewDataCollector(wg *sync.WaitGroup, done <-chan struct{}, env *simulation.Environment) *DataCollector {
	// 1. 创建一个带时间戳的基础文件名
	baseFilename := fmt.Sprintf("training_results_%s.xlsx", time.Now().Format("20060102_150405"))

	// 2. 使用 filepath.Join 拼接输出目录, 保证跨平台兼容
	fullPath := filepath.Join(env.Config().ReportDir, baseFilename)

	return &DataCollector{
		env:      env,
		filename: fullPath,
		wg:       wg,
		done:     done,
	}
}

// Run 启动数据收集过程。它应该在一个单独的 goroutine 中运行。
func (dc *DataCollector) Run() {
	defer dc.wg.Done()
	log.Printf("📊 数据收集器已启动, 将每隔 %v 记录一次训练状态...", collectionInterval)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("❌ 关闭Excel文件时出错: %v", err)
		}
	}()

	trainingSheet, summarySheet := "Training_Stats", "Summary"
	f.NewSheet(trainingSheet)
	f.NewSheet(summarySheet)
	f.DeleteSheet("Sheet1")

	// --- 写入表头 ---
	_ = f.SetSheetRow(trainingSheet, "A1", &trainingHeaders)
	row := 2

	ticker := time.NewTicker(collectionInterval)
	defer ticker.Stop()

	startTime := time.Now()

	for {
		select {
		case <-ticker.C:
			rowData := buildStatRow(int(time.Since(startTime).Seconds()), dc.env.Snapshot())
			_ = f.SetSheetRow(trainingSheet, fmt.Sprintf("A%d", row), &rowData)
			row++

		case <-dc.done:
			dc.writeSummary(f, summarySheet)

			// 在保存文件之前，确保目标目录存在
			reportDir := filepath.Dir(dc.filename)
			if err := os.MkdirAll(reportDir, 0755); err != nil {
				log.Printf("❌ 错误: 无法创建报告目录 '%s': %v", reportDir, err)
				// 即使创建目录失败，也尝试保存，以防根目录可写
			}

			if err := f.SaveAs(dc.filename); err != nil {
				log.Printf("❌ 错误: 无法保存 Excel 文件: %v", err)
			} else {
				log.Printf("✅ 训练数据已成功保存到 %s", dc.filename)
			}
			return
		}
	}
}

// buildStatRow 组装一行周期采样数据, 列序与 trainingHeaders 一一对应。
func buildStatRow(elapsedSeconds int, snap simulation.Snapshot) []interface{} {
	return []interface{}{
		elapsedSeconds,
		snap.Generation,
		snap.Epsilon,
		snap.StatesDiscovered,
		snap.BestSurvival,
		snap.LastSurvival,
		snap.TotalSteps,
	}
}

// buildSummaryRows 组装汇总表的 标签-数值 行。
// 历史为空时均值记 0; 只有一局时标准差无定义, 同样记 0。
func buildSummaryRows(snap simulation.Snapshot, history []float64) [][]interface{} {
	var mean, stddev float64
	if len(history) > 0 {
		mean = stat.Mean(history, nil)
	}
	if len(history) > 1 {
		stddev = stat.StdDev(history, nil)
	}

	return [][]interface{}{
		{"总代数", snap.Generation},
		{"累计总步数", snap.TotalSteps},
		{"已发现状态数", snap.StatesDiscovered},
		{"最终探索率 ε", snap.Epsilon},
		{"最佳存活步数", snap.BestSurvival},
		{"平均存活步数", mean},
		{"存活步数标准差", stddev},
	}
}

// writeSummary 在收尾时写入汇总表：存活步数历史的均值与标准差等。
func (dc *DataCollector) writeSummary(f *excelize.File, sheet string) {
	rows := buildSummaryRows(dc.env.Snapshot(), dc.env.SurvivalHistory())
	for i := range rows {
		_ = f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &rows[i])
	}
}
