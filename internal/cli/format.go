package cli

import (
	"fmt"
	"sort"
	"strings"

	"todoTracker/internal/models/task"
	"todoTracker/internal/service"
)

// всё оформление вывода живёт здесь: ядро про маркеры и рамки ничего не знает

func formatTask(t task.Task) string {
	status := "○"
	if t.Completed {
		status = "✓"
	}

	due := ""
	if t.DueDate != "" {
		due = fmt.Sprintf(" (due: %s)", t.DueDate)
	}

	return fmt.Sprintf("%s [%d] %s %s%s [%s]", status, t.ID, priorityMarker(t.Priority), t.Title, due, t.Category)
}

func priorityMarker(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "🔴"
	case task.PriorityMedium:
		return "🟡"
	case task.PriorityLow:
		return "🟢"
	default:
		return "⚪"
	}
}

func (a *App) printStats(stats service.Stats) {
	line := strings.Repeat("=", 40)

	fmt.Fprintf(a.stdout, "\n%s\nTODO STATISTICS\n%s\n", line, line)
	fmt.Fprintf(a.stdout, "Total todos:    %d\n", stats.Total)
	fmt.Fprintf(a.stdout, "Completed:      %d\n", stats.Completed)
	fmt.Fprintf(a.stdout, "Pending:        %d\n", stats.Pending)

	fmt.Fprintf(a.stdout, "\nBy Priority (pending):\n")
	for _, priority := range priorityOrder(stats.ByPriority) {
		marker := priorityMarker(task.Priority(priority))
		fmt.Fprintf(a.stdout, "%s %s: %d\n", marker, capitalize(priority), stats.ByPriority[priority])
	}

	if len(stats.ByCategory) > 0 {
		fmt.Fprintf(a.stdout, "\nBy Category (pending):\n")
		categories := make([]string, 0, len(stats.ByCategory))
		for category := range stats.ByCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			fmt.Fprintf(a.stdout, "• %s: %d\n", category, stats.ByCategory[category])
		}
	}

	fmt.Fprintf(a.stdout, "%s\n\n", line)
}

// сначала high/medium/low, затем нестандартные приоритеты по алфавиту
func priorityOrder(byPriority map[string]int) []string {
	order := []string{
		string(task.PriorityHigh),
		string(task.PriorityMedium),
		string(task.PriorityLow),
	}

	var extra []string
	for priority := range byPriority {
		switch priority {
		case order[0], order[1], order[2]:
		default:
			extra = append(extra, priority)
		}
	}
	sort.Strings(extra)

	return append(order, extra...)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
