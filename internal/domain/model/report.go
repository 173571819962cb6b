package model

import "errors"

// PayrollLineは帳票1行分の従業員と計算結果です。
// Errには計算時のエラー(ErrInvalidHoursなど)が入ります。
type PayrollLine struct {
	Worker         Worker
	Payslip        Payslip
	ScheduledHours float64
	Err            error
}

// CategoryTotalは雇用区分ごとの人数と手取り合計です。
type CategoryTotal struct {
	Type     EmploymentType
	Count    int
	TotalNet float64
}

type MonthlySummary struct {
	Categories   []CategoryTotal
	InvalidHours int // 労働時間が不正で手取り0として数えた人数
}

// Summarizeは帳票行を雇用区分ごとに集計します。
// 区分の並びはEmploymentTypesの順で、0人の区分も含みます。
func Summarize(lines []PayrollLine) MonthlySummary {
	totals := make(map[EmploymentType]*CategoryTotal, len(EmploymentTypes))
	summary := MonthlySummary{Categories: make([]CategoryTotal, len(EmploymentTypes))}
	for i, t := range EmploymentTypes {
		summary.Categories[i].Type = t
		totals[t] = &summary.Categories[i]
	}

	for _, line := range lines {
		total, ok := totals[line.Worker.EmploymentType()]
		if !ok {
			continue
		}
		if errors.Is(line.Err, ErrInvalidHours) {
			summary.InvalidHours++
		}
		total.Count++
		total.TotalNet += line.Payslip.Net
	}

	return summary
}

func (s MonthlySummary) TotalCount() int {
	var count int
	for _, c := range s.Categories {
		count += c.Count
	}
	return count
}

func (s MonthlySummary) TotalNet() float64 {
	var total float64
	for _, c := range s.Categories {
		total += c.TotalNet
	}
	return total
}

// Forは指定区分の集計を返します。
func (s MonthlySummary) For(t EmploymentType) CategoryTotal {
	for _, c := range s.Categories {
		if c.Type == t {
			return c
		}
	}
	return CategoryTotal{Type: t}
}
