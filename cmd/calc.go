package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/nrad-K/go-payroll/internal/config"
	"github.com/nrad-K/go-payroll/internal/domain/model"
	"github.com/spf13/cobra"
)

// calcFlagsは、calcコマンドで1人分の従業員を組み立てるための入力です。
type calcFlags struct {
	id         string
	name       string
	kind       string
	title      string
	sickDays   int
	extraHours float64
	hours      float64
}

var calcInput calcFlags

var calcCmd = &cobra.Command{
	Use:          "calc",
	Short:        "1人分の給与をフラグから計算して表示します",
	Long:         `対話入力を使わずに、雇用区分と職種、勤務状況をフラグで指定して給与明細を出力します。`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}

		line, err := calculateOne(env.cfg, calcInput)
		if err != nil {
			env.logger.Error("給与計算に失敗しました", "error", err)
			return err
		}

		if line.Err != nil {
			env.logger.Warn("給与計算に失敗しました", "worker_id", line.Worker.ID(), "error", line.Err)
		}

		out := cmd.OutOrStdout()
		if err := env.renderer.RenderCategory(out, line.Worker.EmploymentType(), []model.PayrollLine{line}); err != nil {
			return fmt.Errorf("帳票の出力に失敗しました: %w", err)
		}
		if format == "csv" {
			return nil
		}
		return printPayslip(out, line.Payslip, env.cfg.CurrencySymbol)
	},
}

// calculateOneは、フラグの値から従業員を作成して給与を計算します。
// パートタイムの労働時間が0以下の場合はエラーにせず、Errを持つ行を返します。
// 職種が雇用区分の基本給テーブルにない場合は、strict_job_titlesが有効ならエラーにします。
func calculateOne(cfg config.PayrollConfig, in calcFlags) (model.PayrollLine, error) {
	t, err := model.ParseEmploymentType(in.kind)
	if err != nil {
		return model.PayrollLine{}, err
	}

	title, err := model.ParseJobTitle(in.title)
	rules := cfg.PayRules()
	if _, ok := rules.BaseSalary(t, title); (err != nil || !ok) && cfg.StrictJobTitles {
		return model.PayrollLine{}, fmt.Errorf("職種 %q は %s では選択できません: %w", in.title, t, model.ErrUnknownJobTitle)
	}

	var employment model.Employment
	switch t {
	case model.PartTime:
		employment = model.PartTimeTerms{ScheduledHours: in.hours}
	default:
		employment = model.FullTimeTerms{SickDays: in.sickDays, ExtraHours: in.extraHours}
	}

	worker, err := model.NewWorker(model.WorkerArgs{
		ID:         in.id,
		Name:       in.name,
		JobTitle:   title,
		Employment: employment,
	})
	if err != nil {
		return model.PayrollLine{}, err
	}

	// 労働時間が不正な場合は手取り0の行として帳票に出す
	slip, err := rules.Calculate(worker)
	if err != nil && !errors.Is(err, model.ErrInvalidHours) {
		return model.PayrollLine{}, err
	}

	return model.PayrollLine{
		Worker:         worker,
		Payslip:        slip,
		ScheduledHours: rules.ScheduledHours(worker),
		Err:            err,
	}, nil
}

// printPayslipは、計算の内訳を表示します。
func printPayslip(w io.Writer, slip model.Payslip, currency string) error {
	rows := []struct {
		label  string
		amount float64
	}{
		{"Base Salary", slip.Base},
		{"Hourly Rate", slip.HourlyRate},
		{"Extra Pay", slip.ExtraPay},
		{"Sick Bonus", slip.SickBonus},
		{"Penalty", slip.Penalty},
		{"Before Tax", slip.Gross},
		{"Tax Cost", slip.Tax},
		{"Net Salary", slip.Net},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-15s: %s%.2f\n", row.label, currency, row.amount); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().StringVar(&calcInput.id, "id", "CALC", "従業員ID")
	calcCmd.Flags().StringVar(&calcInput.name, "name", "-", "従業員名")
	calcCmd.Flags().StringVarP(&calcInput.kind, "type", "t", "fulltime", "雇用区分 (fulltime|parttime)")
	calcCmd.Flags().StringVar(&calcInput.title, "title", "", "職種")
	calcCmd.Flags().IntVar(&calcInput.sickDays, "sick-days", 0, "病欠日数 (正社員)")
	calcCmd.Flags().Float64Var(&calcInput.extraHours, "extra-hours", 0, "残業時間 (正社員)")
	calcCmd.Flags().Float64Var(&calcInput.hours, "hours", 0, "労働時間 (パートタイム)")
	calcCmd.MarkFlagRequired("title")
}
