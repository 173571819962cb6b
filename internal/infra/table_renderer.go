package infra

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nrad-K/go-payroll/internal/domain/model"
)

// ReportRendererは帳票を出力先に書き出します。
type ReportRenderer interface {
	RenderCategory(w io.Writer, t model.EmploymentType, lines []model.PayrollLine) error
	RenderCombined(w io.Writer, lines []model.PayrollLine) error
	RenderSummary(w io.Writer, summary model.MonthlySummary) error
}

const invalidHoursMessage = "Error: Invalid working hours for part-time worker."

type tableRenderer struct {
	currency string
}

// NewTableRendererは固定幅の表形式で帳票を出力するレンダラーを生成します。
func NewTableRenderer(currency string) ReportRenderer {
	return &tableRenderer{currency: currency}
}

func (r *tableRenderer) RenderCategory(w io.Writer, t model.EmploymentType, lines []model.PayrollLine) error {
	if t == model.PartTime {
		return r.renderPartTime(w, lines)
	}
	return r.renderFullTime(w, lines)
}

func (r *tableRenderer) renderFullTime(w io.Writer, lines []model.PayrollLine) error {
	sep := strings.Repeat("-", 101)

	var b strings.Builder
	b.WriteString("\nFull-Time Worker Report\n\n")
	fmt.Fprintf(&b, "%-8s%-12s%-15s%-12s%-12s%-10s%-12s%-10s%s\n",
		"ID", "Name", "Job Title", "Type", "Sick Days", "Extra Hours", "Before Tax", "Tax Cost", "Net Salary")
	b.WriteString(sep + "\n")

	for _, line := range lines {
		worker := line.Worker
		fmt.Fprintf(&b, "%-8s%-12s%-15s%-12s%-12d%-10s%s%-11.2f%s%-10.2f%s%.2f\n",
			worker.ID(), worker.Name(), worker.JobTitle(), worker.EmploymentType(),
			worker.SickDays(), formatHours(worker.ExtraHours()),
			r.currency, line.Payslip.Gross,
			r.currency, line.Payslip.Tax,
			r.currency, line.Payslip.Net)
	}
	b.WriteString(sep + "\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *tableRenderer) renderPartTime(w io.Writer, lines []model.PayrollLine) error {
	sep := strings.Repeat("-", 76)

	var b strings.Builder
	b.WriteString("\nPart-Time Worker Report\n\n")
	fmt.Fprintf(&b, "%-8s%-12s%-17s%-12s%-17s%s\n",
		"ID", "Name", "Job Title", "Type", "Working Hours", "Net Salary")
	b.WriteString(sep + "\n")

	for _, line := range lines {
		if errors.Is(line.Err, model.ErrInvalidHours) {
			b.WriteString(invalidHoursMessage + "\n")
		}
		worker := line.Worker
		fmt.Fprintf(&b, "%-8s%-12s%-17s%-12s%-17s%s%.2f\n",
			worker.ID(), worker.Name(), worker.JobTitle(), worker.EmploymentType(),
			formatHours(line.ScheduledHours),
			r.currency, line.Payslip.Net)
	}
	b.WriteString(sep + "\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *tableRenderer) RenderCombined(w io.Writer, lines []model.PayrollLine) error {
	sep := strings.Repeat("-", 57)

	var b strings.Builder
	b.WriteString("\nAll Workers Report (Sorted by Name)\n\n")
	fmt.Fprintf(&b, "%-8s%-12s%-15s%-12s%s\n", "ID", "Name", "Job Title", "Type", "Net Salary")
	b.WriteString(sep + "\n")

	for _, line := range lines {
		if errors.Is(line.Err, model.ErrInvalidHours) {
			b.WriteString(invalidHoursMessage + "\n")
		}
		worker := line.Worker
		fmt.Fprintf(&b, "%-8s%-12s%-15s%-12s%s%.2f\n",
			worker.ID(), worker.Name(), worker.JobTitle(), worker.EmploymentType(),
			r.currency, line.Payslip.Net)
	}
	b.WriteString(sep + "\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *tableRenderer) RenderSummary(w io.Writer, summary model.MonthlySummary) error {
	sep := strings.Repeat("-", 51)

	var b strings.Builder
	for i := 0; i < summary.InvalidHours; i++ {
		b.WriteString(invalidHoursMessage + "\n")
	}
	b.WriteString("\nMonthly Payment Summary\n")
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "%-25s%-10s%s\n", "Worker Type", "Count", "Total Net Salary")
	b.WriteString(sep + "\n")
	for _, c := range summary.Categories {
		fmt.Fprintf(&b, "%-25s%-10d%s%.2f\n", c.Type.Label()+" Workers", c.Count, r.currency, c.TotalNet)
	}
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "%-25s%-10d%s%.2f\n", "Total Workers", summary.TotalCount(), r.currency, summary.TotalNet())
	b.WriteString(sep + "\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// formatHoursは時間数を余分な0を付けずに文字列化します。
func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
