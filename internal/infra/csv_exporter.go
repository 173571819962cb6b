package infra

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nrad-K/go-payroll/internal/constants"
	"github.com/nrad-K/go-payroll/internal/domain/model"
)

// CSVExporterは帳票をCSV形式で書き出すReportRendererです。
// 金額は通貨記号なしの小数2桁で出力します。
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func (c *CSVExporter) RenderCategory(w io.Writer, t model.EmploymentType, lines []model.PayrollLine) error {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		worker := line.Worker
		row := []string{
			worker.EntryID().String(),
			worker.ID(),
			worker.Name(),
			worker.JobTitle().String(),
			worker.EmploymentType().String(),
		}
		if t == model.PartTime {
			row = append(row,
				formatHours(line.ScheduledHours),
				formatAmount(line.Payslip.Net),
			)
		} else {
			row = append(row,
				strconv.Itoa(worker.SickDays()),
				formatHours(worker.ExtraHours()),
				formatAmount(line.Payslip.Gross),
				formatAmount(line.Payslip.Tax),
				formatAmount(line.Payslip.Net),
			)
		}
		rows = append(rows, row)
	}

	return c.write(w, constants.GetCategoryCSVHeaders(t), rows)
}

func (c *CSVExporter) RenderCombined(w io.Writer, lines []model.PayrollLine) error {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		worker := line.Worker
		rows = append(rows, []string{
			worker.EntryID().String(),
			worker.ID(),
			worker.Name(),
			worker.JobTitle().String(),
			worker.EmploymentType().String(),
			formatAmount(line.Payslip.Net),
		})
	}

	return c.write(w, constants.GetCombinedCSVHeaders(), rows)
}

func (c *CSVExporter) RenderSummary(w io.Writer, summary model.MonthlySummary) error {
	rows := make([][]string, 0, len(summary.Categories)+1)
	for _, category := range summary.Categories {
		rows = append(rows, []string{
			category.Type.String(),
			strconv.Itoa(category.Count),
			formatAmount(category.TotalNet),
		})
	}
	rows = append(rows, []string{
		"total",
		strconv.Itoa(summary.TotalCount()),
		formatAmount(summary.TotalNet()),
	})

	return c.write(w, constants.GetSummaryCSVHeaders(), rows)
}

func (c *CSVExporter) write(w io.Writer, headers []string, rows [][]string) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("CSVヘッダーの書き込みに失敗しました: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("CSVの書き込みに失敗しました: %w", err)
	}

	return nil
}
