package checker

import (
	"io/fs"
	"os"
	"sync"
)

// FileChecker проверяет наличие файлов под базовым каталогом и кэширует результаты
type FileChecker struct {
	base       fs.FS
	cache      map[string]bool
	cacheMutex sync.RWMutex
}

// NewFileChecker создает checker для каталога на диске
func NewFileChecker(baseDir string) *FileChecker {
	return NewFileCheckerFS(os.DirFS(baseDir))
}

// NewFileCheckerFS создает checker поверх произвольной файловой системы
func NewFileCheckerFS(base fs.FS) *FileChecker {
	return &FileChecker{
		base:  base,
		cache: make(map[string]bool),
	}
}

// Exists сообщает, что по относительному пути лежит обычный файл
func (fc *FileChecker) Exists(p string) bool {
	// Проверяем кэш (читающая блокировка)
	fc.cacheMutex.RLock()
	exists, found := fc.cache[p]
	fc.cacheMutex.RUnlock()

	if found {
		return exists
	}

	exists = fc.stat(p)

	fc.cacheMutex.Lock()
	fc.cache[p] = exists
	fc.cacheMutex.Unlock()

	return exists
}

func (fc *FileChecker) stat(p string) bool {
	if p == "" || !fs.ValidPath(p) {
		return false
	}
	info, err := fs.Stat(fc.base, p)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Filter убирает ссылки на файлы, которых нет в корпусе, но которые есть на диске
// (картинки, PDF и т.п.). Ссылки с отсутствующим фрагментом остаются всегда.
func (fc *FileChecker) Filter(links []MissingLink) []MissingLink {
	kept := []MissingLink{}
	for _, link := range links {
		if link.Status == StatusMissingTarget && fc.Exists(link.Ref.Path) {
			continue
		}
		kept = append(kept, link)
	}
	return kept
}
