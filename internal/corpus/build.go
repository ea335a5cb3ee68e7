package corpus

import (
	"context"
	"io/fs"
	"log/slog"
	"sync"
	"unicode/utf8"

	"deadlinks/internal/parser"
)

const defaultWorkers = 4

// Options задает параметры построения индекса
type Options struct {
	Workers int
	Parser  *parser.HTMLParser
	Logger  *slog.Logger
}

func normalizeOptions(opts *Options) {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.Parser == nil {
		opts.Parser = parser.NewHTMLParser()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
}

// job — один HTML-файл для разбора и его место в общем порядке обхода
type job struct {
	root  Root
	path  string
	index int
}

type parsed struct {
	doc *parser.Document
	err error
}

// Build обходит все корни, разбирает HTML-файлы пулом воркеров и собирает индекс.
// Любая ошибка обхода или чтения прерывает построение: частичный индекс не возвращается.
func Build(ctx context.Context, roots []Root, opts Options) (*Index, error) {
	normalizeOptions(&opts)

	jobs := []job{}
	for _, root := range roots {
		files, err := Walk(ctx, root)
		if err != nil {
			return nil, err
		}
		opts.Logger.Debug("walked root", "root", root.Name, "html_files", len(files))
		for _, p := range files {
			jobs = append(jobs, job{root: root, path: p, index: len(jobs)})
		}
	}

	results := parseAll(ctx, jobs, opts)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Слияние в одном потоке и в порядке обхода: при совпадении ключей побеждает последний корень
	idx := NewIndex()
	for i, j := range jobs {
		if results[i].err != nil {
			return nil, &ReadError{Root: j.root.Name, Path: j.path, Err: results[i].err}
		}
		idx.Add(j.path, results[i].doc)
	}

	opts.Logger.Info("corpus indexed", "roots", len(roots), "documents", idx.Len())
	return idx, nil
}

// parseAll разбирает файлы параллельно, не более opts.Workers одновременно
func parseAll(ctx context.Context, jobs []job, opts Options) []parsed {
	results := make([]parsed, len(jobs))
	semaphore := make(chan struct{}, opts.Workers)
	var wg sync.WaitGroup

	for _, j := range jobs {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(j job) {
			defer wg.Done()
			defer func() { <-semaphore }()

			results[j.index] = parseFile(j.root, j.path, opts.Parser)
		}(j)
	}

	wg.Wait()
	return results
}

func parseFile(root Root, p string, htmlParser *parser.HTMLParser) parsed {
	data, err := fs.ReadFile(root.FS, p)
	if err != nil {
		return parsed{err: err}
	}
	if !utf8.Valid(data) {
		return parsed{err: ErrNotText}
	}

	doc, err := htmlParser.Extract(string(data))
	if err != nil {
		return parsed{err: err}
	}
	return parsed{doc: doc}
}
