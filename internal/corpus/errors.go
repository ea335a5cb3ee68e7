package corpus

import (
	"errors"
	"fmt"
)

// ErrNotText — содержимое файла не является текстом UTF-8
var ErrNotText = errors.New("file is not valid UTF-8 text")

// WalkError — обход каталога не удался (нет прав, каталог удалён во время обхода)
type WalkError struct {
	Root string
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("walk %s: %s: %v", e.Root, e.Path, e.Err)
}

func (e *WalkError) Unwrap() error { return e.Err }

// ReadError — найденный HTML-файл не удалось прочитать или разобрать
type ReadError struct {
	Root string
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %s: %v", e.Root, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
