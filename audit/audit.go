package audit

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"deadlinks/internal/checker"
	"deadlinks/internal/corpus"
	"deadlinks/internal/report"
)

const defaultWorkers = 4

// ErrNoRoots возвращается, если не задан ни один каталог для проверки
var ErrNoRoots = errors.New("no root directories to scan")

func normalizeOptions(opts *Options) {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Base == "" && len(opts.Roots) > 0 {
		opts.Base = opts.Roots[0]
	}
}

// Audit строит индекс корпуса, находит неразрешенные ссылки и убирает те,
// что указывают на существующие файлы под opts.Base.
func Audit(ctx context.Context, opts Options) (*Result, error) {
	normalizeOptions(&opts)

	if len(opts.Roots) == 0 {
		return nil, ErrNoRoots
	}

	roots := make([]corpus.Root, 0, len(opts.Roots))
	for _, dir := range opts.Roots {
		roots = append(roots, corpus.DirRoot(dir))
	}

	index, err := corpus.Build(ctx, roots, corpus.Options{
		Workers: opts.Workers,
		Logger:  opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	resolver := checker.NewResolver(index)
	unresolved, err := resolver.MissingLinks()
	if err != nil {
		return nil, err
	}

	fileChecker := checker.NewFileChecker(opts.Base)
	missing := fileChecker.Filter(unresolved)
	opts.Logger.Info("links resolved",
		"unresolved", len(unresolved),
		"present_on_disk", len(unresolved)-len(missing),
		"broken", len(missing))

	reportBuilder := report.NewBuilder(opts.Roots, opts.Base, index.Len())
	for _, link := range missing {
		reportBuilder.AddMissing(link)
	}

	return &Result{
		Documents: index.Len(),
		Missing:   missing,
		report:    reportBuilder,
	}, nil
}

// Encode кодирует результат в JSON
func (r *Result) Encode(indent bool) ([]byte, error) {
	return r.report.Encode(indent)
}

// WriteText пишет текстовый отчет, по строке на битую ссылку
func (r *Result) WriteText(w io.Writer) error {
	return r.report.WriteText(w)
}
