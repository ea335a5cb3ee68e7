package corpus

import (
	"sort"

	"deadlinks/internal/parser"
)

// Index отображает относительный путь документа в результат его разбора.
// Заполняется один раз в Build, дальше только читается.
type Index struct {
	docs map[string]*parser.Document
}

// NewIndex создает пустой индекс
func NewIndex() *Index {
	return &Index{docs: make(map[string]*parser.Document)}
}

// Add добавляет документ. Повторный путь перезаписывает прежнюю запись.
func (idx *Index) Add(p string, doc *parser.Document) {
	idx.docs[p] = doc
}

// Get возвращает документ по точному ключу
func (idx *Index) Get(p string) (*parser.Document, bool) {
	doc, ok := idx.docs[p]
	return doc, ok
}

func (idx *Index) Len() int {
	return len(idx.docs)
}

// Paths возвращает ключи индекса в отсортированном виде
func (idx *Index) Paths() []string {
	paths := make([]string, 0, len(idx.docs))
	for p := range idx.docs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
