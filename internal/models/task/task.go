package task

import (
	"strings"
	"time"
)

type Priority string

const PriorityHigh Priority = "high"
const PriorityMedium Priority = "medium"
const PriorityLow Priority = "low"

const DefaultCategory = "general"

// порядок сортировки: high -> medium -> low, всё остальное уходит в конец
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

type Task struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Priority  Priority `json:"priority"`
	DueDate   string   `json:"due_date,omitempty"`
	Category  string   `json:"category"`
	Completed bool     `json:"completed"`
	CreatedAt string   `json:"created_at"`
}

// New собирает задачу с дефолтами; id назначает TaskStore, а не конструктор.
// Приоритет и категория всегда хранятся в нижнем регистре.
func New(title, priority, dueDate, category string) Task {
	if priority == "" {
		priority = string(PriorityMedium)
	}
	if category == "" {
		category = DefaultCategory
	}
	return Task{
		Title:     title,
		Priority:  Priority(strings.ToLower(priority)),
		DueDate:   dueDate,
		Category:  strings.ToLower(category),
		CreatedAt: time.Now().Format(time.RFC3339),
	}
}

// задача просрочена, если она не выполнена и срок строго раньше today (YYYY-MM-DD)
func (t Task) IsOverdue(today string) bool {
	return !t.Completed && t.DueDate != "" && t.DueDate < today
}
