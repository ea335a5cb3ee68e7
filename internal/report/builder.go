package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"deadlinks/internal/checker"
)

// BrokenLink содержит информацию о битой ссылке
type BrokenLink struct {
	Source   string `json:"source"`
	Href     string `json:"href"`
	Target   string `json:"target"`
	Fragment string `json:"fragment,omitempty"`
	Reason   string `json:"reason"`
}

// Report содержит результат проверки корпуса
type Report struct {
	Roots       []string     `json:"roots"`
	Base        string       `json:"base"`
	GeneratedAt string       `json:"generated_at"`
	Documents   int          `json:"documents"`
	BrokenLinks []BrokenLink `json:"broken_links"`
}

// Builder создает и управляет отчетом
type Builder struct {
	report *Report
	mu     sync.Mutex
}

// NewBuilder создает новый builder
func NewBuilder(roots []string, base string, documents int) *Builder {
	return &Builder{
		report: &Report{
			Roots:       append([]string{}, roots...),
			Base:        base,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Documents:   documents,
			BrokenLinks: []BrokenLink{},
		},
	}
}

// AddMissing добавляет битую ссылку в отчет (потокобезопасно)
func (rb *Builder) AddMissing(link checker.MissingLink) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.report.BrokenLinks = append(rb.report.BrokenLinks, BrokenLink{
		Source:   link.Source,
		Href:     link.Href,
		Target:   link.Ref.Path,
		Fragment: link.Ref.Fragment,
		Reason:   link.Status.String(),
	})
}

// Report возвращает копию отчета с отсортированными ссылками
func (rb *Builder) Report() Report {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	// Сортируем для детерминированного порядка
	sort.SliceStable(rb.report.BrokenLinks, func(i, j int) bool {
		a, b := rb.report.BrokenLinks[i], rb.report.BrokenLinks[j]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.Href < b.Href
	})

	r := *rb.report
	r.BrokenLinks = append([]BrokenLink{}, rb.report.BrokenLinks...)
	return r
}

// Encode кодирует отчет в JSON
func (rb *Builder) Encode(indent bool) ([]byte, error) {
	r := rb.Report()
	if indent {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

// WriteText пишет по строке на каждую битую ссылку: цель, документ, базовый каталог
func (rb *Builder) WriteText(w io.Writer) error {
	r := rb.Report()
	for _, link := range r.BrokenLinks {
		if _, err := fmt.Fprintln(w, FormatLine(link, r.Base)); err != nil {
			return err
		}
	}
	return nil
}

// FormatLine форматирует одну строку текстового отчета
func FormatLine(link BrokenLink, base string) string {
	target := link.Target
	if link.Fragment != "" {
		target += "#" + link.Fragment
	}
	return fmt.Sprintf("%s (linked from %s, base %s): %s", target, link.Source, base, link.Reason)
}
