package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"todoTracker/internal/logger"
	"todoTracker/internal/models/task"
	"todoTracker/internal/service"
)

func (a *App) addCommand(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	priority := fs.String("priority", string(task.PriorityMedium), "Priority level (high|medium|low)")
	fs.StringVar(priority, "p", string(task.PriorityMedium), "")
	due := fs.String("due", "", "Due date (YYYY-MM-DD)")
	fs.StringVar(due, "d", "", "")
	category := fs.String("category", task.DefaultCategory, "Category")
	fs.StringVar(category, "c", task.DefaultCategory, "")

	title, code := a.parseWithPositional(fs, args, "todo add <title> [options]")
	if code != exitOK {
		return code
	}

	if !validPriority(*priority) {
		fmt.Fprintf(a.stderr, "invalid priority %q (expected high, medium or low)\n", *priority)
		return exitUsage
	}
	if *due != "" && !validDate(*due) {
		fmt.Fprintf(a.stderr, "invalid due date %q (expected YYYY-MM-DD)\n", *due)
		return exitUsage
	}

	t, err := a.store.Add(ctx, title, *priority, *due, *category)
	if err != nil {
		return a.storageFailure(err)
	}

	fmt.Fprintf(a.stdout, "✓ Added: %s\n", formatTask(t))
	return exitOK
}

func (a *App) listCommand(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	all := fs.Bool("all", false, "Show completed todos too")
	fs.BoolVar(all, "a", false, "")
	category := fs.String("category", "", "Filter by category")
	fs.StringVar(category, "c", "", "")
	priority := fs.String("priority", "", "Filter by priority (high|medium|low)")
	fs.StringVar(priority, "p", "", "")
	overdue := fs.Bool("overdue", false, "Show only overdue pending todos")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *priority != "" && !validPriority(*priority) {
		fmt.Fprintf(a.stderr, "invalid priority %q (expected high, medium or low)\n", *priority)
		return exitUsage
	}

	var tasks []task.Task
	if *overdue {
		tasks = a.store.Overdue(time.Now().Format("2006-01-02"))
	} else {
		tasks = a.store.List(service.ListFilter{
			ShowAll:  *all,
			Category: *category,
			Priority: *priority,
		})
	}

	if len(tasks) == 0 {
		fmt.Fprintf(a.stdout, "No todos found%s.\n", filterInfo(*category, *priority))
		return exitOK
	}

	header := "TODO LIST"
	if *overdue {
		header = "OVERDUE TODOS"
	} else if *all {
		header += " (including completed)"
	}

	line := strings.Repeat("=", 50)
	fmt.Fprintf(a.stdout, "\n%s\n%s\n%s\n", line, header, line)
	for _, t := range tasks {
		fmt.Fprintln(a.stdout, formatTask(t))
	}
	fmt.Fprintf(a.stdout, "%s\nShowing %d item(s)\n\n", line, len(tasks))
	return exitOK
}

func (a *App) doneCommand(ctx context.Context, args []string) int {
	id, code := parseID(a.stderr, "done", args)
	if code != exitOK {
		return code
	}

	found, err := a.store.Complete(ctx, id)
	if err != nil {
		return a.storageFailure(err)
	}
	if !found {
		return a.notFound(id)
	}

	fmt.Fprintf(a.stdout, "✓ Marked todo #%d as completed\n", id)
	return exitOK
}

func (a *App) undoCommand(ctx context.Context, args []string) int {
	id, code := parseID(a.stderr, "undo", args)
	if code != exitOK {
		return code
	}

	found, err := a.store.Uncomplete(ctx, id)
	if err != nil {
		return a.storageFailure(err)
	}
	if !found {
		return a.notFound(id)
	}

	fmt.Fprintf(a.stdout, "✓ Marked todo #%d as not completed\n", id)
	return exitOK
}

func (a *App) deleteCommand(ctx context.Context, args []string) int {
	id, code := parseID(a.stderr, "delete", args)
	if code != exitOK {
		return code
	}

	found, err := a.store.Delete(ctx, id)
	if err != nil {
		return a.storageFailure(err)
	}
	if !found {
		return a.notFound(id)
	}

	fmt.Fprintf(a.stdout, "✓ Deleted todo #%d\n", id)
	return exitOK
}

func (a *App) editCommand(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	title := fs.String("title", "", "New title")
	fs.StringVar(title, "t", "", "")
	priority := fs.String("priority", "", "New priority (high|medium|low)")
	fs.StringVar(priority, "p", "", "")
	due := fs.String("due", "", "New due date (YYYY-MM-DD), empty clears")
	fs.StringVar(due, "d", "", "")
	category := fs.String("category", "", "New category")
	fs.StringVar(category, "c", "", "")

	rawID, code := a.parseWithPositional(fs, args, "todo edit <id> [options]")
	if code != exitOK {
		return code
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Fprintf(a.stderr, "invalid id %q\n", rawID)
		return exitUsage
	}

	// только реально переданные флаги становятся опциями: непереданный --due
	// срок не трогает, а --due "" очищает его
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	var options []task.TaskOption
	if set["title"] || set["t"] {
		options = append(options, task.WithTitle(*title))
	}
	if set["priority"] || set["p"] {
		if !validPriority(*priority) {
			fmt.Fprintf(a.stderr, "invalid priority %q (expected high, medium or low)\n", *priority)
			return exitUsage
		}
		options = append(options, task.WithPriority(*priority))
	}
	if set["due"] || set["d"] {
		if *due != "" && !validDate(*due) {
			fmt.Fprintf(a.stderr, "invalid due date %q (expected YYYY-MM-DD)\n", *due)
			return exitUsage
		}
		options = append(options, task.WithDueDate(*due))
	}
	if set["category"] || set["c"] {
		options = append(options, task.WithCategory(*category))
	}

	found, err := a.store.Edit(ctx, id, options...)
	if err != nil {
		return a.storageFailure(err)
	}
	if !found {
		return a.notFound(id)
	}

	fmt.Fprintf(a.stdout, "✓ Updated todo #%d\n", id)
	return exitOK
}

func (a *App) statsCommand(args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(a.stderr, "usage: todo stats")
		return exitUsage
	}

	a.printStats(a.store.Stats())
	return exitOK
}

func (a *App) clearCommand(ctx context.Context, args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(a.stderr, "usage: todo clear")
		return exitUsage
	}

	count, err := a.store.ClearCompleted(ctx)
	if err != nil {
		return a.storageFailure(err)
	}

	fmt.Fprintf(a.stdout, "✓ Cleared %d completed todo(s)\n", count)
	return exitOK
}

// parseWithPositional разбирает флаги вокруг одного позиционного аргумента:
// поддерживаются оба порядка "todo add --priority high <title>" и
// "todo add <title> --priority high"
func (a *App) parseWithPositional(fs *flag.FlagSet, args []string, usage string) (string, int) {
	if err := fs.Parse(args); err != nil {
		return "", exitUsage
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fmt.Fprintf(a.stderr, "usage: %s\n", usage)
		return "", exitUsage
	}

	positional := rest[0]
	if err := fs.Parse(rest[1:]); err != nil {
		return "", exitUsage
	}
	if len(fs.Args()) != 0 {
		fmt.Fprintf(a.stderr, "usage: %s\n", usage)
		return "", exitUsage
	}

	return positional, exitOK
}

func parseID(w io.Writer, command string, args []string) (int, int) {
	if len(args) != 1 {
		fmt.Fprintf(w, "usage: todo %s <id>\n", command)
		return 0, exitUsage
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(w, "invalid id %q\n", args[0])
		return 0, exitUsage
	}

	return id, exitOK
}

func (a *App) notFound(id int) int {
	fmt.Fprintf(a.stderr, "✗ Todo #%d not found\n", id)
	return exitError
}

func (a *App) storageFailure(err error) int {
	logger.Error("CLI: ошибка хранилища", err)
	fmt.Fprintf(a.stderr, "✗ Storage error: %v\n", err)
	return exitError
}

func validPriority(priority string) bool {
	switch task.Priority(strings.ToLower(priority)) {
	case task.PriorityHigh, task.PriorityMedium, task.PriorityLow:
		return true
	}
	return false
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func filterInfo(category, priority string) string {
	var parts []string
	if category != "" {
		parts = append(parts, fmt.Sprintf("category=%q", category))
	}
	if priority != "" {
		parts = append(parts, fmt.Sprintf("priority=%q", priority))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
