package corpus

import (
	"context"
	"io/fs"
	"os"
	"path"
)

// Root — корневой каталог корпуса. FS читает файлы, Name используется в сообщениях.
type Root struct {
	Name string
	FS   fs.FS
}

// DirRoot создает Root поверх каталога на диске
func DirRoot(dir string) Root {
	return Root{Name: dir, FS: os.DirFS(dir)}
}

// IsHTML сообщает, что у файла расширение ровно ".html".
// Файл с именем ".html" расширения не имеет.
func IsHTML(name string) bool {
	base := path.Base(name)
	return base != ".html" && path.Ext(base) == ".html"
}

// Walk рекурсивно обходит root и возвращает относительные пути HTML-файлов
// в порядке обхода (лексикографическом внутри каталога).
func Walk(ctx context.Context, root Root) ([]string, error) {
	files := []string{}

	err := fs.WalkDir(root.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return &WalkError{Root: root.Name, Path: p, Err: err}
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !IsHTML(p) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
