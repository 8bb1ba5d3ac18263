package repository

import "fmt"

const CodeRead = "STORAGE_READ"
const CodeWrite = "STORAGE_WRITE"

// StorageError - ошибка работы с хранилищем с кодом и путём до файла
type StorageError struct {
	Code string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Path, e.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Path)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewReadError(path string, err error) *StorageError {
	return &StorageError{
		Code: CodeRead,
		Path: path,
		Err:  err,
	}
}

func NewWriteError(path string, err error) *StorageError {
	return &StorageError{
		Code: CodeWrite,
		Path: path,
		Err:  err,
	}
}
