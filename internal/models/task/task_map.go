package task

import (
	"fmt"
	"strings"
)

// явная поштучная (де)сериализация: никаких динамических наборов полей,
// обязательные поля проверяются, неизвестные ключи отклоняются

func (t Task) ToMap() map[string]any {
	m := map[string]any{
		"id":         t.ID,
		"title":      t.Title,
		"priority":   string(t.Priority),
		"due_date":   nil,
		"category":   t.Category,
		"completed":  t.Completed,
		"created_at": t.CreatedAt,
	}
	if t.DueDate != "" {
		m["due_date"] = t.DueDate
	}
	return m
}

func FromMap(data map[string]any) (Task, error) {
	for key := range data {
		switch key {
		case "id", "title", "priority", "due_date", "category", "completed", "created_at":
		default:
			return Task{}, fmt.Errorf("неизвестное поле %q", key)
		}
	}

	id, err := intField(data, "id")
	if err != nil {
		return Task{}, err
	}
	title, err := stringField(data, "title", true)
	if err != nil {
		return Task{}, err
	}
	createdAt, err := stringField(data, "created_at", true)
	if err != nil {
		return Task{}, err
	}
	priority, err := stringField(data, "priority", false)
	if err != nil {
		return Task{}, err
	}
	if priority == "" {
		priority = string(PriorityMedium)
	}
	category, err := stringField(data, "category", false)
	if err != nil {
		return Task{}, err
	}
	if category == "" {
		category = DefaultCategory
	}
	dueDate, err := stringField(data, "due_date", false)
	if err != nil {
		return Task{}, err
	}
	completed, err := boolField(data, "completed")
	if err != nil {
		return Task{}, err
	}

	return Task{
		ID:        id,
		Title:     title,
		Priority:  Priority(strings.ToLower(priority)),
		DueDate:   dueDate,
		Category:  strings.ToLower(category),
		Completed: completed,
		CreatedAt: createdAt,
	}, nil
}

// json.Unmarshal отдаёт числа как float64
func intField(data map[string]any, key string) (int, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return 0, fmt.Errorf("отсутствует обязательное поле %q", key)
	}
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	}
	return 0, fmt.Errorf("поле %q должно быть числом, получено %T", key, raw)
}

func stringField(data map[string]any, key string, required bool) (string, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		if required {
			return "", fmt.Errorf("отсутствует обязательное поле %q", key)
		}
		return "", nil
	}
	val, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("поле %q должно быть строкой, получено %T", key, raw)
	}
	return val, nil
}

func boolField(data map[string]any, key string) (bool, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return false, nil
	}
	val, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("поле %q должно быть bool, получено %T", key, raw)
	}
	return val, nil
}
