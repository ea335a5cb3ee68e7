package urlutil

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

var (
	schemePrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)
	escapedHash  = regexp.MustCompile(`(?i)%23`)
)

// IsRelative сообщает, является ли href относительной ссылкой: в ней нет ни схемы, ни хоста.
// Строка, которую url.Parse не принимает (например "50%off.html"), внешней считается
// только если начинается со схемы.
func IsRelative(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return !schemePrefix.MatchString(href)
	}
	return u.Scheme == "" && u.Host == ""
}

// Normalize приводит путь к каноническому относительному виду без обращения к ФС.
// ".." за корнем молча отбрасывается, ведущий "/" снимается.
func Normalize(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

// ResolveHref вычисляет путь цели ссылки относительно документа docPath.
// Ссылка, начинающаяся с "/", отсчитывается от корня корпуса.
// Пустой путь означает сам документ.
func ResolveHref(docPath, hrefPath string) string {
	if hrefPath == "" {
		return Normalize(docPath)
	}
	if strings.HasPrefix(hrefPath, "/") {
		return Normalize(hrefPath)
	}
	return Normalize(path.Join(path.Dir(docPath), hrefPath))
}

// StripQuery отрезает query-часть, которую веб-сервер не учитывает при выборе файла.
func StripQuery(p string) string {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		return p[:i]
	}
	return p
}

// Unescape декодирует %XX в пути. Некорректные последовательности оставляют путь как есть.
// "%23" не декодируется, чтобы в пути не появился "#".
func Unescape(p string) string {
	parts := escapedHash.Split(p, -1)
	for i, part := range parts {
		decoded, err := url.PathUnescape(part)
		if err != nil {
			return p
		}
		parts[i] = decoded
	}
	return strings.Join(parts, "%23")
}
