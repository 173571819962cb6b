package cmd

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/nrad-K/go-payroll/internal/config"
	"github.com/nrad-K/go-payroll/internal/domain/model"
	"github.com/nrad-K/go-payroll/internal/infra"
)

func TestCalculateOne_FullTime(t *testing.T) {
	t.Parallel()

	line, err := calculateOne(config.DefaultPayrollConfig(), calcFlags{
		id: "W1", name: "Alice", kind: "fulltime", title: "barista",
	})
	if err != nil {
		t.Fatalf("calculateOne returned error: %v", err)
	}
	if line.Worker.JobTitle() != model.Barista {
		t.Fatalf("expected barista, got %s", line.Worker.JobTitle())
	}
	if math.Abs(line.Payslip.Net-2361.60) > 1e-6 {
		t.Fatalf("expected net 2361.60, got %v", line.Payslip.Net)
	}
}

func TestCalculateOne_PartTimeZeroHours(t *testing.T) {
	t.Parallel()

	line, err := calculateOne(config.DefaultPayrollConfig(), calcFlags{
		id: "P1", name: "Bob", kind: "parttime", title: "Cleaner",
	})
	if err != nil {
		t.Fatalf("expected zero hours to be reported on the line, got %v", err)
	}
	if !errors.Is(line.Err, model.ErrInvalidHours) {
		t.Fatalf("expected ErrInvalidHours on line, got %v", line.Err)
	}
	if line.Payslip.Net != 0 {
		t.Fatalf("expected zero net, got %v", line.Payslip.Net)
	}

	var buf bytes.Buffer
	if err := mustRenderer(t).RenderCategory(&buf, model.PartTime, []model.PayrollLine{line}); err != nil {
		t.Fatalf("RenderCategory returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "Error: Invalid working hours for part-time worker.") {
		t.Fatalf("expected invalid hours message, got:\n%s", buf.String())
	}
}

func TestCalculateOne_RejectsNonFiniteFlags(t *testing.T) {
	t.Parallel()

	_, err := calculateOne(config.DefaultPayrollConfig(), calcFlags{
		id: "W1", name: "Alice", kind: "fulltime", title: "Barista", extraHours: math.Inf(1),
	})
	if !errors.Is(err, model.ErrNonFiniteField) {
		t.Fatalf("expected ErrNonFiniteField, got %v", err)
	}
}

func TestCalculateOne_TitleOutsideCategory(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultPayrollConfig()
	_, err := calculateOne(cfg, calcFlags{id: "P1", name: "Bob", kind: "parttime", title: "Barista", hours: 10})
	if !errors.Is(err, model.ErrUnknownJobTitle) {
		t.Fatalf("expected ErrUnknownJobTitle, got %v", err)
	}

	cfg.StrictJobTitles = false
	line, err := calculateOne(cfg, calcFlags{id: "P1", name: "Bob", kind: "parttime", title: "Barista", hours: 10})
	if err != nil {
		t.Fatalf("expected lenient calculation, got %v", err)
	}
	if line.Payslip.Net != 0 {
		t.Fatalf("expected zero net, got %v", line.Payslip.Net)
	}
}

func TestCalculateOne_InvalidType(t *testing.T) {
	t.Parallel()

	_, err := calculateOne(config.DefaultPayrollConfig(), calcFlags{kind: "contract", title: "Barista"})
	if !errors.Is(err, model.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestNewRenderer(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "table", "csv"} {
		if _, err := newRenderer(name, "$"); err != nil {
			t.Errorf("%q: unexpected error: %v", name, err)
		}
	}
	if _, err := newRenderer("pdf", "$"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestPrintPayslip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := printPayslip(&buf, model.Payslip{Gross: 2420, Tax: 58.4, Net: 2361.6}, "$"); err != nil {
		t.Fatalf("printPayslip returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "Net Salary     : $2361.60\n") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func mustRenderer(t *testing.T) infra.ReportRenderer {
	t.Helper()

	r, err := newRenderer("table", "$")
	if err != nil {
		t.Fatalf("newRenderer returned error: %v", err)
	}
	return r
}
