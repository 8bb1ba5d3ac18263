package inmemory

import (
	"context"
	"sync"

	"todoTracker/internal/models/task"
)

// хранилище в памяти: эфемерный режим и тесты; снимок живёт до конца процесса
type TaskStorage struct {
	snapshot  []task.Task
	mtx       *sync.RWMutex
	saveCalls int
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		mtx: &sync.RWMutex{},
	}
}

// NewTaskStorageWith создаёт хранилище с готовым снимком
func NewTaskStorageWith(tasks ...task.Task) *TaskStorage {
	s := NewTaskStorage()
	s.snapshot = append([]task.Task{}, tasks...)
	return s
}

func (s *TaskStorage) Load(ctx context.Context) ([]task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	out := make([]task.Task, len(s.snapshot))
	copy(out, s.snapshot)
	return out, nil
}

func (s *TaskStorage) Save(ctx context.Context, tasks []task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.snapshot = make([]task.Task, len(tasks))
	copy(s.snapshot, tasks)
	s.saveCalls++
	return nil
}

// SaveCalls возвращает число выполненных записей снимка
func (s *TaskStorage) SaveCalls() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.saveCalls
}
