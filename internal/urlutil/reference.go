package urlutil

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding возвращается, если путь нельзя представить как текст UTF-8.
var ErrInvalidEncoding = errors.New("path is not valid UTF-8")

// Reference — ссылка на HTML-файл с необязательным фрагментом.
type Reference struct {
	Path        string
	Fragment    string
	HasFragment bool
}

// ParseReference делит строку по первому "#". Всё после него, включая
// последующие "#", становится фрагментом. Пустой фрагмент считается отсутствующим.
func ParseReference(raw string) (Reference, error) {
	if !utf8.ValidString(raw) {
		return Reference{}, fmt.Errorf("parse reference %q: %w", raw, ErrInvalidEncoding)
	}

	p, fragment, found := strings.Cut(raw, "#")
	ref := Reference{Path: p}
	if found && fragment != "" {
		ref.Fragment = fragment
		ref.HasFragment = true
	}
	return ref, nil
}

func (r Reference) String() string {
	if r.HasFragment {
		return r.Path + "#" + r.Fragment
	}
	return r.Path
}
