package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Employmentは雇用区分ごとの勤務条件です。
// FullTimeTermsとPartTimeTermsのどちらか一方だけを取ります。
type Employment interface {
	EmploymentType() EmploymentType
	validate() error
}

// FullTimeTermsは正社員の勤務条件です。
type FullTimeTerms struct {
	SickDays   int
	ExtraHours float64
}

func (FullTimeTerms) EmploymentType() EmploymentType {
	return FullTime
}

func (f FullTimeTerms) validate() error {
	if f.SickDays < 0 {
		return fmt.Errorf("sick days: %w", ErrNegativeField)
	}
	if !isFinite(f.ExtraHours) {
		return fmt.Errorf("extra hours: %w", ErrNonFiniteField)
	}
	if f.ExtraHours < 0 {
		return fmt.Errorf("extra hours: %w", ErrNegativeField)
	}
	return nil
}

// PartTimeTermsはパートタイムの勤務条件です。
type PartTimeTerms struct {
	ScheduledHours float64
}

func (PartTimeTerms) EmploymentType() EmploymentType {
	return PartTime
}

func (p PartTimeTerms) validate() error {
	if !isFinite(p.ScheduledHours) {
		return fmt.Errorf("working hours: %w", ErrNonFiniteField)
	}
	if p.ScheduledHours < 0 {
		return fmt.Errorf("working hours: %w", ErrNegativeField)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type WorkerArgs struct {
	ID         string
	Name       string
	JobTitle   JobTitle
	Employment Employment
}

// Workerは従業員1人分の記録です。
type Worker struct {
	entryID    uuid.UUID
	id         string
	name       string
	jobTitle   JobTitle
	employment Employment
}

// NewWorkerは入力値を検証してWorkerを生成します。
// 外部IDの重複はここでは検出しないため、内部の識別子としてentryIDを払い出します。
func NewWorker(args WorkerArgs) (Worker, error) {
	if args.Employment == nil {
		return Worker{}, ErrInvalidCategory
	}
	if err := args.Employment.validate(); err != nil {
		return Worker{}, err
	}

	return Worker{
		entryID:    uuid.New(),
		id:         args.ID,
		name:       args.Name,
		jobTitle:   args.JobTitle,
		employment: args.Employment,
	}, nil
}

func (w Worker) EntryID() uuid.UUID {
	return w.entryID
}

func (w Worker) ID() string {
	return w.id
}

func (w Worker) Name() string {
	return w.name
}

func (w Worker) JobTitle() JobTitle {
	return w.jobTitle
}

func (w Worker) Employment() Employment {
	return w.employment
}

func (w Worker) EmploymentType() EmploymentType {
	if w.employment == nil {
		return ""
	}
	return w.employment.EmploymentType()
}

// SickDaysは正社員以外では常に0を返します。
func (w Worker) SickDays() int {
	if terms, ok := w.employment.(FullTimeTerms); ok {
		return terms.SickDays
	}
	return 0
}

// ExtraHoursは正社員以外では常に0を返します。
func (w Worker) ExtraHours() float64 {
	if terms, ok := w.employment.(FullTimeTerms); ok {
		return terms.ExtraHours
	}
	return 0
}
