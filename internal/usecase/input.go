package usecase

import (
	"errors"
	"math"
	"strconv"

	"github.com/nrad-K/go-payroll/internal/domain/model"
)

const notANumberMessage = "Invalid input! Please enter a number: "

// promptRequiredは空でない入力が得られるまで同じ質問を繰り返します。
func (u *payrollUseCase) promptRequired(message string) (string, error) {
	for {
		value, err := u.terminal.Prompt(message)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
	}
}

// promptEmploymentTypeは正しい雇用区分が入力されるまで再入力させます。
func (u *payrollUseCase) promptEmploymentType(message string) (model.EmploymentType, error) {
	for {
		value, err := u.terminal.Prompt(message)
		if err != nil {
			return "", err
		}

		t, err := model.ParseEmploymentType(value)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, model.ErrInvalidCategory) {
			return "", err
		}

		u.logger.Debug("雇用区分の入力が不正です", "input", value)
		message = "Invalid type! Please enter 'fulltime' or 'parttime': "
	}
}

// promptIntは整数が入力されるまで再入力させます。
func (u *payrollUseCase) promptInt(message string) (int, error) {
	for {
		value, err := u.terminal.Prompt(message)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(value)
		if err == nil {
			return n, nil
		}
		message = notANumberMessage
	}
}

// promptNonNegativeIntは0以上の整数が入力されるまで再入力させます。
func (u *payrollUseCase) promptNonNegativeInt(message, negativeMessage string) (int, error) {
	for {
		n, err := u.promptInt(message)
		if err != nil {
			return 0, err
		}
		if n >= 0 {
			return n, nil
		}
		u.logger.Debug("負の値が入力されました", "error", model.ErrNegativeField, "value", n)
		message = negativeMessage
	}
}

// promptNonNegativeFloatは0以上の数値が入力されるまで再入力させます。
func (u *payrollUseCase) promptNonNegativeFloat(message, negativeMessage string) (float64, error) {
	for {
		value, err := u.terminal.Prompt(message)
		if err != nil {
			return 0, err
		}

		// inf や nan も ParseFloat は受け付けるため数値として扱わない
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			message = notANumberMessage
			continue
		}
		if f >= 0 {
			return f, nil
		}

		u.logger.Debug("負の値が入力されました", "error", model.ErrNegativeField, "value", f)
		message = negativeMessage
	}
}
