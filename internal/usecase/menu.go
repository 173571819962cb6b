package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/nrad-K/go-payroll/internal/constants"
	"github.com/nrad-K/go-payroll/internal/domain/model"
	"github.com/nrad-K/go-payroll/internal/infra"
	"github.com/nrad-K/go-payroll/internal/logger"
)

// MenuUseCaseは、対話メニューの実行ロジックを定義するインターフェースです。
type MenuUseCase interface {
	Run(ctx context.Context) error
}

// MenuArgsは、メニューユースケースを構築するための引数を保持します。
type MenuArgs struct {
	Terminal infra.Terminal
	Payroll  PayrollUseCase
	Logger   logger.AppLogger
}

type menuUseCase struct {
	terminal infra.Terminal
	payroll  PayrollUseCase
	logger   logger.AppLogger
}

// NewMenuUseCaseは、menuUseCaseの新しいインスタンスを生成します。
func NewMenuUseCase(args MenuArgs) MenuUseCase {
	return &menuUseCase{
		terminal: args.Terminal,
		payroll:  args.Payroll,
		logger:   args.Logger,
	}
}

// Runは、終了が選ばれるか入力が尽きるまでメニューを繰り返し表示します。
// 入力の終端は正常終了として扱います。
//
// args:
//
//	ctx : コンテキスト
//
// return:
//
//	error : 各操作で発生した入力終端以外のエラー
func (u *menuUseCase) Run(ctx context.Context) error {
	u.logger.Info("メニューを開始します")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		u.printMenu()
		raw, err := u.terminal.Prompt("Enter your choice: ")
		if err != nil {
			return u.finish(err)
		}

		choice, err := strconv.Atoi(raw)
		if err != nil {
			choice = 0
		}

		if choice == constants.MenuExit {
			u.terminal.Printf("Exiting program...\n")
			u.logger.Info("メニューを終了します")
			return nil
		}

		if err := u.dispatch(ctx, choice); err != nil {
			if errors.Is(err, model.ErrInvalidMenuChoice) {
				u.terminal.Printf("Invalid choice! Please try again.\n")
				u.logger.Debug("メニューの選択が不正です", "input", raw)
				continue
			}
			return u.finish(err)
		}
	}
}

// dispatchは選ばれた番号に対応する操作を実行します。
func (u *menuUseCase) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case constants.MenuAddWorkers:
		return u.payroll.AddWorkers(ctx)
	case constants.MenuCategoryReport:
		return u.payroll.PrintCategoryReport(ctx)
	case constants.MenuCombinedReport:
		return u.payroll.PrintCombinedReport(ctx)
	case constants.MenuMonthlySummary:
		return u.payroll.PrintMonthlySummary(ctx)
	default:
		return fmt.Errorf("choice %d: %w", choice, model.ErrInvalidMenuChoice)
	}
}

func (u *menuUseCase) finish(err error) error {
	if errors.Is(err, io.EOF) {
		u.logger.Info("入力が終了したためメニューを終了します")
		return nil
	}
	u.logger.Error("メニューの実行中にエラーが発生しました", "error", err)
	return err
}

func (u *menuUseCase) printMenu() {
	u.terminal.Printf("Worker Management System\n")
	u.terminal.Printf("==========================\n")
	for i, option := range constants.GetMenuOptions() {
		u.terminal.Printf("%d. %s\n", i+1, option)
	}
}
