package checker

import (
	"fmt"
	"net/url"
	"path"

	"deadlinks/internal/corpus"
	"deadlinks/internal/parser"
	"deadlinks/internal/urlutil"
)

const indexFile = "index.html"

// Status объясняет, почему ссылка разрешилась или нет
type Status int

const (
	StatusOK Status = iota
	// StatusMissingTarget — ни путь, ни путь/index.html не найдены в корпусе
	StatusMissingTarget
	// StatusMissingFragment — документ найден, но элемента с таким id в нем нет
	StatusMissingFragment
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissingTarget:
		return "missing_target"
	case StatusMissingFragment:
		return "missing_fragment"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MissingLink содержит информацию о битой ссылке
type MissingLink struct {
	Source string
	Href   string
	Ref    urlutil.Reference
	Status Status
}

// Resolver проверяет ссылки по индексу корпуса
type Resolver struct {
	index *corpus.Index
}

func NewResolver(index *corpus.Index) *Resolver {
	return &Resolver{index: index}
}

// Lookup ищет документ по пути ссылки, при неудаче пробует путь/index.html,
// затем проверяет фрагмент по id найденного документа.
func (r *Resolver) Lookup(ref urlutil.Reference) (*parser.Document, Status) {
	doc, ok := r.index.Get(ref.Path)
	if !ok {
		doc, ok = r.index.Get(path.Join(ref.Path, indexFile))
	}
	if !ok {
		return nil, StatusMissingTarget
	}

	if !ref.HasFragment || hasFragment(doc, ref.Fragment) {
		return doc, StatusOK
	}
	return doc, StatusMissingFragment
}

// Contains сообщает, разрешается ли ссылка внутри корпуса
func (r *Resolver) Contains(ref urlutil.Reference) bool {
	_, status := r.Lookup(ref)
	return status == StatusOK
}

// MissingLinks перебирает относительные ссылки всех документов и возвращает
// те, что не разрешились. Порядок результата не определен.
func (r *Resolver) MissingLinks() ([]MissingLink, error) {
	missing := []MissingLink{}

	for _, source := range r.index.Paths() {
		doc, _ := r.index.Get(source)
		if doc == nil {
			continue
		}

		for _, href := range doc.RelativeHrefs {
			ref, err := TargetOf(source, href)
			if err != nil {
				return nil, fmt.Errorf("resolve link in %s: %w", source, err)
			}

			if _, status := r.Lookup(ref); status != StatusOK {
				missing = append(missing, MissingLink{
					Source: source,
					Href:   href,
					Ref:    ref,
					Status: status,
				})
			}
		}
	}

	return missing, nil
}

// TargetOf превращает href из документа source в ссылку с нормализованным путем
// относительно корня корпуса.
func TargetOf(source, href string) (urlutil.Reference, error) {
	ref, err := urlutil.ParseReference(href)
	if err != nil {
		return urlutil.Reference{}, err
	}

	p := urlutil.Unescape(urlutil.StripQuery(ref.Path))
	ref.Path = urlutil.ResolveHref(source, p)
	return ref, nil
}

// hasFragment сверяет фрагмент с id документа, пробуя и декодированный вариант
func hasFragment(doc *parser.Document, fragment string) bool {
	if doc.HasID(fragment) {
		return true
	}
	decoded, err := url.PathUnescape(fragment)
	return err == nil && decoded != fragment && doc.HasID(decoded)
}
