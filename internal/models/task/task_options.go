package task

import "strings"

// функция-модификатор для частичного обновления задачи (см. TaskStore.Edit);
// nil-опция означает "поле не трогать"
type TaskOption func(*Task)

// WithTitle пропускает пустое значение: очистить название через edit нельзя
func WithTitle(title string) TaskOption {
	if title == "" {
		return nil
	}
	return func(t *Task) {
		t.Title = title
	}
}

func WithPriority(priority string) TaskOption {
	if priority == "" {
		return nil
	}
	return func(t *Task) {
		t.Priority = Priority(strings.ToLower(priority))
	}
}

func WithCategory(category string) TaskOption {
	if category == "" {
		return nil
	}
	return func(t *Task) {
		t.Category = strings.ToLower(category)
	}
}

// WithDueDate перезаписывает срок всегда: пустая строка очищает его.
// Несимметрично с остальными опциями, поведение закреплено тестами.
func WithDueDate(dueDate string) TaskOption {
	return func(t *Task) {
		t.DueDate = dueDate
	}
}
