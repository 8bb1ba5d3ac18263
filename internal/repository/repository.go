package repository

import (
	"context"

	"todoTracker/internal/models/task"
)

// TaskStorage хранит полный снимок списка задач: Save всегда перезаписывает
// всё содержимое, частичных записей нет
type TaskStorage interface {
	Load(ctx context.Context) ([]task.Task, error)
	Save(ctx context.Context, tasks []task.Task) error
}
