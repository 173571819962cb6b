package infra

import (
	"context"
	"fmt"

	"github.com/nrad-K/go-payroll/internal/domain/model"
	"github.com/nrad-K/go-payroll/internal/domain/repository"
	"github.com/nrad-K/go-payroll/internal/logger"
)

// workerRegistryはプロセス内で従業員を保持するリポジトリ実装です。
// 登録順を保持し、capacityを超える登録は受け付けません。
type workerRegistry struct {
	workers  []model.Worker
	capacity int
	logger   logger.AppLogger
}

func NewWorkerRegistry(capacity int, appLogger logger.AppLogger) repository.WorkerRepository {
	return &workerRegistry{
		workers:  make([]model.Worker, 0, min(capacity, 128)),
		capacity: capacity,
		logger:   appLogger,
	}
}

func (r *workerRegistry) Save(ctx context.Context, worker model.Worker) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(r.workers) >= r.capacity {
		return fmt.Errorf("capacity %d: %w", r.capacity, model.ErrCapacityExceeded)
	}

	for _, existing := range r.workers {
		if existing.ID() == worker.ID() {
			r.logger.Warn("同じIDの従業員が既に登録されています", "worker_id", worker.ID())
			break
		}
	}

	r.workers = append(r.workers, worker)
	r.logger.Debug("従業員を登録しました", "worker_id", worker.ID(), "entry_id", worker.EntryID(), "count", len(r.workers))
	return nil
}

func (r *workerRegistry) FindAll(ctx context.Context) ([]model.Worker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workers := make([]model.Worker, len(r.workers))
	copy(workers, r.workers)
	return workers, nil
}

func (r *workerRegistry) FindByType(ctx context.Context, t model.EmploymentType) ([]model.Worker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var workers []model.Worker
	for _, w := range r.workers {
		if w.EmploymentType() == t {
			workers = append(workers, w)
		}
	}
	return workers, nil
}

// SortByNameは保持している並び順そのものを名前順に並べ替えます。
func (r *workerRegistry) SortByName(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model.SortByName(r.workers)
	return nil
}

func (r *workerRegistry) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(r.workers), nil
}

func (r *workerRegistry) Remaining(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.capacity - len(r.workers), nil
}
