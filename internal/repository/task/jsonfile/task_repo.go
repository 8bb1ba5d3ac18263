package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"todoTracker/internal/logger"
	"todoTracker/internal/models/task"
	repo "todoTracker/internal/repository"

	"go.uber.org/zap"
)

// файловое хранилище: один JSON-файл со всем списком задач
type TaskStorage struct {
	path string
}

func NewTaskStorage(path string) *TaskStorage {
	return &TaskStorage{path: path}
}

// Load читает файл целиком; отсутствие файла - не ошибка, список просто пуст.
// Нечитаемое содержимое - фатальная ошибка, частичной загрузки нет.
func (s *TaskStorage) Load(ctx context.Context) ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("Repository: файл хранилища отсутствует, начинаем с пустого списка",
				zap.String("path", s.path))
			return nil, nil
		}
		return nil, repo.NewReadError(s.path, err)
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, repo.NewReadError(s.path, err)
	}

	tasks := make([]task.Task, 0, len(records))
	for _, record := range records {
		t, err := task.FromMap(record)
		if err != nil {
			return nil, repo.NewReadError(s.path, err)
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}

// Save перезаписывает файл полным снимком в читаемом виде.
// Атомарной записи и блокировок нет: один процесс за раз.
func (s *TaskStorage) Save(ctx context.Context, tasks []task.Task) error {
	records := make([]map[string]any, len(tasks))
	for i, t := range tasks {
		records[i] = t.ToMap()
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return repo.NewWriteError(s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return repo.NewWriteError(s.path, err)
	}

	return nil
}
