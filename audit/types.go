package audit

import (
	"log/slog"

	"deadlinks/internal/checker"
	"deadlinks/internal/report"
)

// Options содержит параметры проверки корпуса
type Options struct {
	// Roots — каталоги, в которых ищутся HTML-документы
	Roots []string
	// Base — каталог, относительно которого проверяется наличие не-HTML файлов
	Base    string
	Workers int
	Logger  *slog.Logger
}

// Result содержит найденные битые ссылки
type Result struct {
	Documents int
	Missing   []checker.MissingLink

	report *report.Builder
}

// Clean сообщает, что битых ссылок нет
func (r *Result) Clean() bool {
	return len(r.Missing) == 0
}
