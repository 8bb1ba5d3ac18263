package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"todoTracker/internal/logger"
	"todoTracker/internal/models/task"
	"todoTracker/internal/repository"

	"go.uber.org/zap"
)

// дата-заглушка для задач без срока: при сортировке они всегда уходят в конец
const noDueDate = "9999-99-99"

// TaskStore владеет упорядоченным списком задач и счётчиком следующего id.
// Каждая мутация сбрасывает полный снимок в хранилище.
type TaskStore struct {
	storage repository.TaskStorage
	tasks   []task.Task
	nextID  int
}

// NewTaskStore загружает снимок из хранилища и вычисляет следующий id.
// Ошибка загрузки фатальна: store в частично рабочем виде не создаётся.
func NewTaskStore(ctx context.Context, storage repository.TaskStorage) (*TaskStore, error) {
	tasks, err := storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("загрузка задач: %w", err)
	}

	// id монотонно растут и не переиспользуются даже после удаления
	nextID := 1
	for _, t := range tasks {
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}

	return &TaskStore{
		storage: storage,
		tasks:   tasks,
		nextID:  nextID,
	}, nil
}

func (s *TaskStore) save(ctx context.Context) error {
	if err := s.storage.Save(ctx, s.tasks); err != nil {
		return fmt.Errorf("сохранение задач: %w", err)
	}
	return nil
}

func (s *TaskStore) Add(ctx context.Context, title, priority, dueDate, category string) (task.Task, error) {
	t := task.New(title, priority, dueDate, category)
	t.ID = s.nextID
	s.tasks = append(s.tasks, t)
	s.nextID++

	if err := s.save(ctx); err != nil {
		return task.Task{}, err
	}

	logger.Info("Store: задача добавлена",
		zap.Int("id", t.ID),
		zap.String("priority", string(t.Priority)),
		zap.String("category", t.Category))
	return t, nil
}

type ListFilter struct {
	ShowAll  bool
	Category string
	Priority string
}

// List отдаёт новый отсортированный срез, список в store не трогается
func (s *TaskStore) List(filter ListFilter) []task.Task {
	category := strings.ToLower(filter.Category)
	priority := strings.ToLower(filter.Priority)

	res := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !filter.ShowAll && t.Completed {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		if priority != "" && string(t.Priority) != priority {
			continue
		}
		res = append(res, t)
	}

	sortTasks(res)
	return res
}

// Overdue возвращает невыполненные задачи со сроком строго раньше today (YYYY-MM-DD)
func (s *TaskStore) Overdue(today string) []task.Task {
	res := make([]task.Task, 0)
	for _, t := range s.tasks {
		if t.IsOverdue(today) {
			res = append(res, t)
		}
	}

	sortTasks(res)
	return res
}

// сортировка: приоритет, потом срок; при равенстве ключей порядок вставки
func sortTasks(tasks []task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := tasks[i].Priority.Rank(), tasks[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return dueKey(tasks[i]) < dueKey(tasks[j])
	})
}

func dueKey(t task.Task) string {
	if t.DueDate == "" {
		return noDueDate
	}
	return t.DueDate
}

func (s *TaskStore) Complete(ctx context.Context, id int) (bool, error) {
	return s.setCompleted(ctx, id, true)
}

func (s *TaskStore) Uncomplete(ctx context.Context, id int) (bool, error) {
	return s.setCompleted(ctx, id, false)
}

func (s *TaskStore) setCompleted(ctx context.Context, id int, completed bool) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = completed
			if err := s.save(ctx); err != nil {
				return true, err
			}
			return true, nil
		}
	}

	logger.Warn("Store: задача не найдена", zap.Int("id", id))
	return false, nil
}

func (s *TaskStore) Delete(ctx context.Context, id int) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			if err := s.save(ctx); err != nil {
				return true, err
			}
			logger.Info("Store: задача удалена", zap.Int("id", id))
			return true, nil
		}
	}

	logger.Warn("Store: задача не найдена", zap.Int("id", id))
	return false, nil
}

// Edit применяет опции к найденной задаче; nil-опции пропускаются,
// так что пустой title/priority/category поле не затирает
func (s *TaskStore) Edit(ctx context.Context, id int, options ...task.TaskOption) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			for _, opt := range options {
				if opt == nil {
					continue
				}
				opt(&s.tasks[i])
			}
			if err := s.save(ctx); err != nil {
				return true, err
			}
			return true, nil
		}
	}

	logger.Warn("Store: задача не найдена", zap.Int("id", id))
	return false, nil
}

// ClearCompleted убирает все выполненные задачи; без изменений записи нет
func (s *TaskStore) ClearCompleted(ctx context.Context) (int, error) {
	remaining := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			remaining = append(remaining, t)
		}
	}

	removed := len(s.tasks) - len(remaining)
	if removed == 0 {
		return 0, nil
	}

	s.tasks = remaining
	if err := s.save(ctx); err != nil {
		return removed, err
	}

	logger.Info("Store: выполненные задачи удалены", zap.Int("removed", removed))
	return removed, nil
}

// Count возвращает размер списка без фильтров
func (s *TaskStore) Count() int {
	return len(s.tasks)
}
