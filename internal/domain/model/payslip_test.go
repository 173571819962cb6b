package model

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func mustWorker(t *testing.T, title JobTitle, employment Employment) Worker {
	t.Helper()
	w, err := NewWorker(WorkerArgs{ID: "W1", Name: "Test", JobTitle: title, Employment: employment})
	if err != nil {
		t.Fatalf("NewWorker returned error: %v", err)
	}
	return w
}

func TestCalculate_FullTimeBaristaNoSickDays(t *testing.T) {
	t.Parallel()

	rules := DefaultPayRules()
	w := mustWorker(t, Barista, FullTimeTerms{SickDays: 0, ExtraHours: 0})

	slip, err := rules.Calculate(w)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if slip.Base != 1920 {
		t.Fatalf("expected base 1920, got %v", slip.Base)
	}
	if !almostEqual(slip.HourlyRate, 8) {
		t.Fatalf("expected hourly rate 8, got %v", slip.HourlyRate)
	}
	if slip.SickBonus != 500 {
		t.Fatalf("expected sick bonus 500, got %v", slip.SickBonus)
	}
	if !almostEqual(slip.Gross, 2420) {
		t.Fatalf("expected gross 2420, got %v", slip.Gross)
	}
	if !almostEqual(slip.Tax, 58.40) {
		t.Fatalf("expected tax 58.40, got %v", slip.Tax)
	}
	if !almostEqual(slip.Net, 2361.60) {
		t.Fatalf("expected net 2361.60, got %v", slip.Net)
	}
}

func TestCalculate_SickBonusTable(t *testing.T) {
	t.Parallel()

	rules := DefaultPayRules()
	cases := []struct {
		sickDays int
		bonus    float64
	}{
		{0, 500},
		{1, 200},
		{2, 100},
		{3, 0},
		{10, 0},
	}

	for _, tc := range cases {
		w := mustWorker(t, Cashier, FullTimeTerms{SickDays: tc.sickDays})
		slip, err := rules.Calculate(w)
		if err != nil {
			t.Fatalf("sick days %d: unexpected error: %v", tc.sickDays, err)
		}
		if slip.SickBonus != tc.bonus {
			t.Fatalf("sick days %d: expected bonus %v, got %v", tc.sickDays, tc.bonus, slip.SickBonus)
		}
		if !almostEqual(slip.Gross, 1790+tc.bonus) {
			t.Fatalf("sick days %d: expected gross %v, got %v", tc.sickDays, 1790+tc.bonus, slip.Gross)
		}
	}
}

func TestCalculate_SickPenaltyWithExtraHours(t *testing.T) {
	t.Parallel()

	rules := DefaultPayRules()
	w := mustWorker(t, Supervisor, FullTimeTerms{SickDays: 4, ExtraHours: 12})

	slip, err := rules.Calculate(w)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	// 2400/240=10, 残業代 2*10*12=240
	if !almostEqual(slip.ExtraPay, 240) {
		t.Fatalf("expected extra pay 240, got %v", slip.ExtraPay)
	}
	if !almostEqual(slip.Gross, 2640) {
		t.Fatalf("expected gross 2640, got %v", slip.Gross)
	}
	want := (slip.Gross - slip.Tax) - 0.01*slip.Gross
	if !almostEqual(slip.Net, want) {
		t.Fatalf("expected net %v, got %v", want, slip.Net)
	}
	if !almostEqual(slip.Penalty, 26.4) {
		t.Fatalf("expected penalty 26.4, got %v", slip.Penalty)
	}
}

func TestCalculate_NoPenaltyWithoutExtraHours(t *testing.T) {
	t.Parallel()

	rules := DefaultPayRules()
	w := mustWorker(t, Supervisor, FullTimeTerms{SickDays: 5, ExtraHours: 0})

	slip, err := rules.Calculate(w)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if slip.Penalty != 0 {
		t.Fatalf("expected no penalty, got %v", slip.Penalty)
	}
	if !almostEqual(slip.Net, 2400-(0.02*2400+10)) {
		t.Fatalf("unexpected net %v", slip.Net)
	}
}

func TestCalculate_NetFlooredAtZero(t *testing.T) {
	t.Parallel()

	rules := DefaultPayRules()
	// 基本給0の組み合わせでは税の定額分で手取りが負になる
	w := mustWorker(t, Cleaner, FullTimeTerms{SickDays: 3})

	slip, err := rules.Calculate(w)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if slip.Base != 0 {
		t.Fatalf("expected base 0 for unmatched title, got %v", slip.Base)
	}
	if slip.Net != 0 {
		t.Fatalf("expected net floored at 0, got %v", slip.Net)
	}
}

func TestCalculate_PartTimeCleaner(t *testing.T) {
	t.Parallel()

	rules := DefaultPayRules()
	w := mustWorker(t, Cleaner, PartTimeTerms{ScheduledHours: 80})

	slip, err := rules.Calculate(w)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if !almostEqual(slip.Gross, 1400.0/240.0*80) {
		t.Fatalf("expected gross 466.67, got %v", slip.Gross)
	}
	if slip.Tax != 0 {
		t.Fatalf("expected no tax for part-time, got %v", slip.Tax)
	}
	if slip.Net != slip.Gross {
		t.Fatalf("expected net == gross, got %v and %v", slip.Net, slip.Gross)
	}
}

func TestCalculate_PartTimeZeroHours(t *testing.T) {
	t.Parallel()

	rules := DefaultPayRules()
	w := mustWorker(t, Waiter, PartTimeTerms{ScheduledHours: 0})

	slip, err := rules.Calculate(w)
	if !errors.Is(err, ErrInvalidHours) {
		t.Fatalf("expected ErrInvalidHours, got %v", err)
	}
	if slip.Net != 0 {
		t.Fatalf("expected net 0, got %v", slip.Net)
	}
}

func TestBaseSalary_UnknownPair(t *testing.T) {
	t.Parallel()

	rules := DefaultPayRules()
	if base, ok := rules.BaseSalary(PartTime, Barista); ok || base != 0 {
		t.Fatalf("expected no base for part-time barista, got %v %v", base, ok)
	}
	if base, ok := rules.BaseSalary(FullTime, JobTitle("Chef")); ok || base != 0 {
		t.Fatalf("expected no base for unknown title, got %v %v", base, ok)
	}
}

func TestScheduledHours(t *testing.T) {
	t.Parallel()

	rules := DefaultPayRules()
	full := mustWorker(t, Barista, FullTimeTerms{})
	part := mustWorker(t, Cleaner, PartTimeTerms{ScheduledHours: 42})

	if got := rules.ScheduledHours(full); got != 160 {
		t.Fatalf("expected 160 hours for full-time, got %v", got)
	}
	if got := rules.ScheduledHours(part); got != 42 {
		t.Fatalf("expected 42 hours for part-time, got %v", got)
	}
}
