// Package cli реализует команды консольного интерфейса todoTracker.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"todoTracker/internal/logger"
	"todoTracker/internal/service"

	"go.uber.org/zap"
)

// коды выхода: 1 - не найдено / ошибка хранилища, 2 - неверные аргументы
const exitOK = 0
const exitError = 1
const exitUsage = 2

type App struct {
	store  *service.TaskStore
	stdout io.Writer
	stderr io.Writer
}

func New(store *service.TaskStore, stdout, stderr io.Writer) *App {
	return &App{
		store:  store,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run разбирает команду и выполняет её; возвращает код выхода процесса
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.printUsage(a.stderr)
		return exitError
	}

	command, rest := args[0], args[1:]
	logger.CommandInfo(command, rest, "CLI_IN:")
	start := time.Now()

	var code int
	switch command {
	case "add":
		code = a.addCommand(ctx, rest)
	case "list":
		code = a.listCommand(rest)
	case "done":
		code = a.doneCommand(ctx, rest)
	case "undo":
		code = a.undoCommand(ctx, rest)
	case "delete":
		code = a.deleteCommand(ctx, rest)
	case "edit":
		code = a.editCommand(ctx, rest)
	case "stats":
		code = a.statsCommand(rest)
	case "clear":
		code = a.clearCommand(ctx, rest)
	case "help", "-h", "--help":
		a.printUsage(a.stdout)
		code = exitOK
	default:
		fmt.Fprintf(a.stderr, "unknown command: %s\n", command)
		a.printUsage(a.stderr)
		code = exitError
	}

	logger.Info("CLI_OUT:",
		zap.String("command", command),
		zap.Int("exit_code", code),
		zap.Duration("took", time.Since(start)))
	return code
}

func (a *App) printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: todo <command> [options]

Commands:
  add <title> [-p|--priority high|medium|low] [-d|--due YYYY-MM-DD] [-c|--category NAME]
        Add a new todo
  list [-a|--all] [-c|--category NAME] [-p|--priority high|medium|low] [--overdue]
        List todos (pending only unless --all)
  done <id>
        Mark todo as completed
  undo <id>
        Mark todo as not completed
  delete <id>
        Delete a todo
  edit <id> [-t|--title TITLE] [-p|--priority PRIO] [-d|--due YYYY-MM-DD] [-c|--category NAME]
        Edit a todo (--due "" clears the due date)
  stats
        Show statistics
  clear
        Remove all completed todos
  help
        Show this message

Examples:
  todo add "Buy groceries" --priority high --due 2025-12-25 --category shopping
  todo list --category work --priority high
  todo done 1
`)
}
