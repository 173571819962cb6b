package model

import (
	"fmt"
	"math"
)

// SalaryKeyは基本給テーブルのキーです。
type SalaryKey struct {
	Type  EmploymentType
	Title JobTitle
}

// PayRulesは給与計算に使う定数をまとめたものです。
type PayRules struct {
	BaseSalaries       map[SalaryKey]float64
	StandardDays       int
	HoursPerDay        int
	FullTimeHours      float64
	TaxRate            float64
	SocialSecurityTax  float64
	OvertimeMultiplier float64
	SickBonus          []float64 // 添字が病欠日数。範囲外は0
	SickPenaltyRate    float64
	SickPenaltyDays    int // この日数以上の病欠かつ残業ありで減額
}

// DefaultPayRulesは標準の給与規程を返します。
func DefaultPayRules() PayRules {
	return PayRules{
		BaseSalaries: map[SalaryKey]float64{
			{FullTime, Barista}:      1920,
			{FullTime, Cashier}:      1790,
			{FullTime, Supervisor}:   2400,
			{PartTime, KitchenStaff}: 1850,
			{PartTime, Cleaner}:      1400,
			{PartTime, Waiter}:       1700,
		},
		StandardDays:       30,
		HoursPerDay:        8,
		FullTimeHours:      160,
		TaxRate:            0.02,
		SocialSecurityTax:  10.0,
		OvertimeMultiplier: 2,
		SickBonus:          []float64{500, 200, 100},
		SickPenaltyRate:    0.01,
		SickPenaltyDays:    3,
	}
}

// Payslipは1人分の計算結果です。
type Payslip struct {
	Base       float64
	HourlyRate float64
	ExtraPay   float64
	SickBonus  float64
	Penalty    float64
	Gross      float64
	Tax        float64
	Net        float64
}

// BaseSalaryは雇用区分と職種の組から基本給を引きます。
// 組み合わせがテーブルにない場合は0とfalseを返します。
func (r PayRules) BaseSalary(t EmploymentType, title JobTitle) (float64, bool) {
	base, ok := r.BaseSalaries[SalaryKey{Type: t, Title: title}]
	return base, ok
}

// TitlesForは基本給が設定されている職種をJobTitlesの順で返します。
func (r PayRules) TitlesFor(t EmploymentType) []JobTitle {
	var titles []JobTitle
	for _, title := range JobTitlesFor(t) {
		if _, ok := r.BaseSalary(t, title); ok {
			titles = append(titles, title)
		}
	}
	return titles
}

func (r PayRules) StandardMonthHours() float64 {
	return float64(r.StandardDays * r.HoursPerDay)
}

func (r PayRules) HourlyRate(base float64) float64 {
	hours := r.StandardMonthHours()
	if hours <= 0 {
		return 0
	}
	return base / hours
}

func (r PayRules) SickBonusFor(sickDays int) float64 {
	if sickDays < 0 || sickDays >= len(r.SickBonus) {
		return 0
	}
	return r.SickBonus[sickDays]
}

// ScheduledHoursは所定労働時間を返します。正社員は固定値です。
func (r PayRules) ScheduledHours(w Worker) float64 {
	switch terms := w.Employment().(type) {
	case FullTimeTerms:
		return r.FullTimeHours
	case PartTimeTerms:
		return terms.ScheduledHours
	default:
		return 0
	}
}

// Calculateは従業員の給与を計算します。
// パートタイムで労働時間が0以下の場合はErrInvalidHoursを返し、手取りは0になります。
func (r PayRules) Calculate(w Worker) (Payslip, error) {
	base, _ := r.BaseSalary(w.EmploymentType(), w.JobTitle())
	slip := Payslip{
		Base:       base,
		HourlyRate: r.HourlyRate(base),
	}

	switch terms := w.Employment().(type) {
	case PartTimeTerms:
		if terms.ScheduledHours <= 0 {
			return slip, fmt.Errorf("worker %s: %w", w.ID(), ErrInvalidHours)
		}
		slip.Gross = slip.HourlyRate * terms.ScheduledHours
		slip.Net = slip.Gross
		return slip, nil

	case FullTimeTerms:
		slip.ExtraPay = r.OvertimeMultiplier * slip.HourlyRate * terms.ExtraHours
		slip.SickBonus = r.SickBonusFor(terms.SickDays)
		slip.Gross = slip.Base + slip.ExtraPay + slip.SickBonus
		slip.Tax = r.TaxRate*slip.Gross + r.SocialSecurityTax

		net := slip.Gross - slip.Tax
		if terms.SickDays >= r.SickPenaltyDays && terms.ExtraHours > 0 {
			slip.Penalty = r.SickPenaltyRate * slip.Gross
			net -= slip.Penalty
		}
		slip.Net = math.Max(net, 0)
		return slip, nil

	default:
		return slip, ErrInvalidCategory
	}
}
