package repository

import (
	"context"

	"github.com/nrad-K/go-payroll/internal/domain/model"
)

type WorkerRepository interface {
	Save(ctx context.Context, worker model.Worker) error
	FindAll(ctx context.Context) ([]model.Worker, error)
	FindByType(ctx context.Context, t model.EmploymentType) ([]model.Worker, error)
	SortByName(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	Remaining(ctx context.Context) (int, error)
}
