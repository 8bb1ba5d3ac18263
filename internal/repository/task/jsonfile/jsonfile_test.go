package jsonfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"todoTracker/internal/models/task"
	"todoTracker/internal/repository"
	"todoTracker/internal/repository/task/jsonfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTaskStorage_Load_MissingFile тестирует загрузку при отсутствии файла
func TestTaskStorage_Load_MissingFile(t *testing.T) {
	ctx := context.Background()
	storage := jsonfile.NewTaskStorage(filepath.Join(t.TempDir(), "todos.json"))

	tasks, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

// TestTaskStorage_SaveLoad тестирует круговой обход снимка через файл
func TestTaskStorage_SaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "todos.json")
	storage := jsonfile.NewTaskStorage(path)

	snapshot := []task.Task{
		{ID: 1, Title: "first", Priority: task.PriorityHigh, DueDate: "2026-01-01", Category: "work", CreatedAt: "2026-08-30T10:00:00Z"},
		{ID: 2, Title: "second", Priority: task.PriorityLow, Category: "general", Completed: true, CreatedAt: "2026-08-30T11:00:00Z"},
	}

	require.NoError(t, storage.Save(ctx, snapshot))

	loaded, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)
}

// TestTaskStorage_Save_PrettyPrinted тестирует читаемость формата на диске
func TestTaskStorage_Save_PrettyPrinted(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "todos.json")
	storage := jsonfile.NewTaskStorage(path)

	err := storage.Save(ctx, []task.Task{
		{ID: 1, Title: "visible", Priority: task.PriorityMedium, Category: "general", CreatedAt: "2026-08-30T10:00:00Z"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// формат самоописывающий и с отступами: имена полей видны глазами
	content := string(data)
	assert.Contains(t, content, "\n  {")
	assert.Contains(t, content, `"title": "visible"`)
	assert.Contains(t, content, `"due_date": null`)
	assert.Contains(t, content, `"created_at"`)
}

// TestTaskStorage_Save_EmptySnapshot тестирует запись пустого списка
func TestTaskStorage_Save_EmptySnapshot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "todos.json")
	storage := jsonfile.NewTaskStorage(path)

	require.NoError(t, storage.Save(ctx, nil))

	loaded, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

// TestTaskStorage_Load_Malformed тестирует фатальные ошибки чтения
func TestTaskStorage_Load_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not json at all",
			content: "это не json",
		},
		{
			name:    "wrong top-level shape",
			content: `{"id": 1}`,
		},
		{
			name:    "record with unknown field",
			content: `[{"id": 1, "title": "x", "created_at": "2026-08-30T10:00:00Z", "color": "red"}]`,
		},
		{
			name:    "record missing required field",
			content: `[{"title": "x"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "todos.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			storage := jsonfile.NewTaskStorage(path)
			_, err := storage.Load(ctx)
			require.Error(t, err)

			var storageErr *repository.StorageError
			require.True(t, errors.As(err, &storageErr))
			assert.Equal(t, repository.CodeRead, storageErr.Code)
			assert.Equal(t, path, storageErr.Path)
		})
	}
}

// TestTaskStorage_Save_WriteError тестирует ошибку записи в недоступный путь
func TestTaskStorage_Save_WriteError(t *testing.T) {
	ctx := context.Background()
	storage := jsonfile.NewTaskStorage(filepath.Join(t.TempDir(), "нет", "такой", "папки", "todos.json"))

	err := storage.Save(ctx, nil)
	require.Error(t, err)

	var storageErr *repository.StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, repository.CodeWrite, storageErr.Code)
}
