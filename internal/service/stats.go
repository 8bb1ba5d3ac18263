package service

import "todoTracker/internal/models/task"

type Stats struct {
	Total      int
	Completed  int
	Pending    int
	ByPriority map[string]int
	ByCategory map[string]int
}

// Stats считает сводку по списку; разбивки по приоритету и категории
// учитывают только невыполненные задачи. Ключи high/medium/low есть всегда,
// неизвестные приоритеты добавляются по факту; пустые категории не попадают.
func (s *TaskStore) Stats() Stats {
	stats := Stats{
		ByPriority: map[string]int{
			string(task.PriorityHigh):   0,
			string(task.PriorityMedium): 0,
			string(task.PriorityLow):    0,
		},
		ByCategory: map[string]int{},
	}

	for _, t := range s.tasks {
		stats.Total++
		if t.Completed {
			stats.Completed++
			continue
		}
		stats.ByPriority[string(t.Priority)]++
		stats.ByCategory[t.Category]++
	}

	stats.Pending = stats.Total - stats.Completed
	return stats
}
