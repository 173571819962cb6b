package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nrad-K/go-payroll/internal/config"
	"github.com/nrad-K/go-payroll/internal/domain/model"
	"github.com/nrad-K/go-payroll/internal/domain/repository"
	"github.com/nrad-K/go-payroll/internal/infra"
	"github.com/nrad-K/go-payroll/internal/logger"
)

// PayrollUseCaseは、従業員の登録と帳票出力の操作を定義するインターフェースです。
type PayrollUseCase interface {
	AddWorkers(ctx context.Context) error
	PrintCategoryReport(ctx context.Context) error
	PrintCombinedReport(ctx context.Context) error
	PrintMonthlySummary(ctx context.Context) error
}

// PayrollArgsは、給与計算ユースケースを構築するための引数を保持します。
//
// フィールド:
//
//	Cfg      : 給与計算の設定情報
//	Repo     : 従業員リポジトリ
//	Terminal : 対話入力と画面出力
//	Renderer : 帳票の出力形式
//	Logger   : ロガー
type PayrollArgs struct {
	Cfg      config.PayrollConfig
	Repo     repository.WorkerRepository
	Terminal infra.Terminal
	Renderer infra.ReportRenderer
	Logger   logger.AppLogger
}

// payrollUseCaseは、従業員の登録と帳票出力を行うユースケースです。
type payrollUseCase struct {
	cfg      config.PayrollConfig
	rules    model.PayRules
	repo     repository.WorkerRepository
	terminal infra.Terminal
	renderer infra.ReportRenderer
	logger   logger.AppLogger
}

// NewPayrollUseCaseは、payrollUseCaseの新しいインスタンスを生成します。
//
// args:
//
//	args : PayrollArgs構造体（設定、リポジトリ、端末、レンダラー、ロガー）
//
// return:
//
//	PayrollUseCase : 生成されたユースケースインスタンス
func NewPayrollUseCase(args PayrollArgs) PayrollUseCase {
	return &payrollUseCase{
		cfg:      args.Cfg,
		rules:    args.Cfg.PayRules(),
		repo:     args.Repo,
		terminal: args.Terminal,
		renderer: args.Renderer,
		logger:   args.Logger,
	}
}

// AddWorkersは、登録人数を尋ねてから1人ずつ従業員情報を入力させ、リポジトリに保存します。
// 途中で上限に達した場合はその時点で打ち切り、それまでに登録した従業員は保持されます。
//
// args:
//
//	ctx : コンテキスト
//
// return:
//
//	error : 入力の終端(io.EOF)や保存時に発生したエラー
func (u *payrollUseCase) AddWorkers(ctx context.Context) error {
	count, err := u.promptInt("\nHow many workers would you like to add? ")
	if err != nil {
		return err
	}
	u.logger.Info("従業員の登録を開始します", "requested", count)

	added := 0
	for i := 0; i < count; i++ {
		remaining, err := u.repo.Remaining(ctx)
		if err != nil {
			return fmt.Errorf("登録可能人数の取得に失敗しました: %w", err)
		}
		if remaining <= 0 {
			u.terminal.Printf("Worker list is full.\n")
			u.logger.Warn("従業員数が上限に達しました", "capacity", u.cfg.Capacity)
			break
		}

		worker, err := u.inputWorker()
		if err != nil {
			return err
		}

		if err := u.repo.Save(ctx, worker); err != nil {
			if errors.Is(err, model.ErrCapacityExceeded) {
				u.terminal.Printf("Worker list is full.\n")
				u.logger.Warn("従業員数が上限に達しました", "capacity", u.cfg.Capacity)
				break
			}
			return fmt.Errorf("従業員の保存に失敗しました: %w", err)
		}
		added++
	}

	u.terminal.Printf("\nWorker(s) Added!\n\n")
	u.logger.Info("従業員の登録が完了しました", "added", added)
	return nil
}

// inputWorkerは、1人分の従業員情報を対話的に入力させます。
func (u *payrollUseCase) inputWorker() (model.Worker, error) {
	id, err := u.promptRequired("\nEnter Worker ID      : ")
	if err != nil {
		return model.Worker{}, err
	}

	name, err := u.promptRequired("Enter Worker Name    : ")
	if err != nil {
		return model.Worker{}, err
	}

	u.printJobMenu()

	rawTitle, err := u.promptRequired("\nEnter Job Title      : ")
	if err != nil {
		return model.Worker{}, err
	}

	employmentType, err := u.promptEmploymentType("Enter Employment Type (fulltime/parttime): ")
	if err != nil {
		return model.Worker{}, err
	}

	title, err := u.resolveJobTitle(rawTitle, employmentType)
	if err != nil {
		return model.Worker{}, err
	}

	var employment model.Employment
	switch employmentType {
	case model.PartTime:
		hours, err := u.promptNonNegativeFloat(
			"Enter Working Hours   : ",
			"Invalid input! Working hours cannot be negative. Please re-enter: ",
		)
		if err != nil {
			return model.Worker{}, err
		}
		employment = model.PartTimeTerms{ScheduledHours: hours}

	default:
		sickDays, err := u.promptNonNegativeInt(
			"Enter Sick Days       : ",
			"Invalid input! Sick days cannot be negative. Please re-enter: ",
		)
		if err != nil {
			return model.Worker{}, err
		}
		extraHours, err := u.promptNonNegativeFloat(
			"Enter Extra Hours     : ",
			"Invalid input! Extra hours cannot be negative. Please re-enter: ",
		)
		if err != nil {
			return model.Worker{}, err
		}
		employment = model.FullTimeTerms{SickDays: sickDays, ExtraHours: extraHours}
	}

	return model.NewWorker(model.WorkerArgs{
		ID:         id,
		Name:       name,
		JobTitle:   title,
		Employment: employment,
	})
}

// resolveJobTitleは、入力された職種を雇用区分と照合します。
// strict_job_titlesが有効な場合は、区分に合う職種が入力されるまで再入力させます。
// 無効な場合は入力をそのまま受け付け、基本給は0として扱われます。
func (u *payrollUseCase) resolveJobTitle(raw string, t model.EmploymentType) (model.JobTitle, error) {
	for {
		title, err := model.ParseJobTitle(raw)
		if _, ok := u.rules.BaseSalary(t, title); err == nil && ok {
			return title, nil
		}

		if !u.cfg.StrictJobTitles {
			u.logger.Warn("雇用区分に対応しない職種のため基本給は0になります", "job_title", raw, "type", t)
			return title, nil
		}

		var names []string
		for _, candidate := range u.rules.TitlesFor(t) {
			names = append(names, candidate.String())
		}
		u.logger.Debug("職種の再入力を求めます", "job_title", raw, "type", t)

		raw, err = u.promptRequired(fmt.Sprintf("Invalid job title for %s! Please enter one of (%s): ", t, strings.Join(names, ", ")))
		if err != nil {
			return "", err
		}
	}
}

// printJobMenuは、職種と基本給の一覧を表示します。
func (u *payrollUseCase) printJobMenu() {
	u.terminal.Printf("\nAvailable Job Titles and Basic Salaries:\n")
	u.terminal.Printf("-----------------------------------------\n")
	for _, title := range model.JobTitles {
		t, _ := title.EmploymentType()
		base, ok := u.rules.BaseSalary(t, title)
		if !ok {
			continue
		}
		label := title.String()
		if t == model.PartTime {
			label += " (part-time)"
		}
		u.terminal.Printf("%-28s: %s%.0f\n", label, u.cfg.CurrencySymbol, base)
	}
	u.terminal.Printf("-----------------------------------------\n")
}

// PrintCategoryReportは、雇用区分を尋ね、該当する従業員だけの帳票を出力します。
//
// args:
//
//	ctx : コンテキスト
//
// return:
//
//	error : 入力の終端や出力時に発生したエラー
func (u *payrollUseCase) PrintCategoryReport(ctx context.Context) error {
	t, err := u.promptEmploymentType("\nEnter Worker Type to view (fulltime/parttime): ")
	if err != nil {
		return err
	}

	workers, err := u.repo.FindByType(ctx, t)
	if err != nil {
		return fmt.Errorf("従業員の取得に失敗しました: %w", err)
	}

	lines := u.buildLines(workers)
	if err := u.renderer.RenderCategory(u.terminal.Writer(), t, lines); err != nil {
		u.logger.Error("帳票の出力に失敗しました", "error", err)
		return fmt.Errorf("帳票の出力に失敗しました: %w", err)
	}

	u.logger.Info("雇用区分別レポートを出力しました", "type", t, "count", len(lines))
	return nil
}

// PrintCombinedReportは、全従業員を名前順に並べた帳票を出力します。
// sort_in_placeが有効な場合はリポジトリの並び順自体を名前順に変更します。
//
// args:
//
//	ctx : コンテキスト
//
// return:
//
//	error : 取得や出力時に発生したエラー
func (u *payrollUseCase) PrintCombinedReport(ctx context.Context) error {
	if u.cfg.SortInPlace {
		if err := u.repo.SortByName(ctx); err != nil {
			return fmt.Errorf("従業員の並べ替えに失敗しました: %w", err)
		}
	}

	workers, err := u.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("従業員の取得に失敗しました: %w", err)
	}
	if !u.cfg.SortInPlace {
		model.SortByName(workers)
	}

	lines := u.buildLines(workers)
	if err := u.renderer.RenderCombined(u.terminal.Writer(), lines); err != nil {
		u.logger.Error("帳票の出力に失敗しました", "error", err)
		return fmt.Errorf("帳票の出力に失敗しました: %w", err)
	}

	u.logger.Info("全従業員レポートを出力しました", "count", len(lines), "sort_in_place", u.cfg.SortInPlace)
	return nil
}

// PrintMonthlySummaryは、雇用区分ごとの人数と手取り合計、および総計を出力します。
func (u *payrollUseCase) PrintMonthlySummary(ctx context.Context) error {
	workers, err := u.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("従業員の取得に失敗しました: %w", err)
	}

	summary := model.Summarize(u.buildLines(workers))
	if err := u.renderer.RenderSummary(u.terminal.Writer(), summary); err != nil {
		u.logger.Error("集計の出力に失敗しました", "error", err)
		return fmt.Errorf("集計の出力に失敗しました: %w", err)
	}

	u.logger.Info("月次集計を出力しました", "count", summary.TotalCount(), "total_net", summary.TotalNet())
	return nil
}

// buildLinesは、各従業員の給与を計算して帳票行にします。
// 計算エラーは行に保持し、処理は止めません。
func (u *payrollUseCase) buildLines(workers []model.Worker) []model.PayrollLine {
	lines := make([]model.PayrollLine, 0, len(workers))
	for _, w := range workers {
		slip, err := u.rules.Calculate(w)
		if err != nil {
			u.logger.Warn("給与計算に失敗しました", "worker_id", w.ID(), "error", err)
		}
		lines = append(lines, model.PayrollLine{
			Worker:         w,
			Payslip:        slip,
			ScheduledHours: u.rules.ScheduledHours(w),
			Err:            err,
		})
	}
	return lines
}
