package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"deadlinks/internal/urlutil"
)

// Document содержит то, что нужно для проверки ссылок из одного HTML-файла
type Document struct {
	RelativeHrefs []string
	ExternalHrefs []string
	IDs           map[string]struct{}
}

// HasID проверяет, есть ли в документе элемент с данным id
func (d *Document) HasID(id string) bool {
	if d == nil {
		return false
	}
	_, ok := d.IDs[id]
	return ok
}

// HTMLParser отвечает за парсинг HTML
type HTMLParser struct{}

// NewHTMLParser создает новый парсер
func NewHTMLParser() *HTMLParser {
	return &HTMLParser{}
}

// Extract разбирает текст документа
func (p *HTMLParser) Extract(htmlContent string) (*Document, error) {
	return p.ExtractReader(strings.NewReader(htmlContent))
}

// ExtractReader разбирает документ из r: href всех <a> делятся на относительные
// и внешние, id собираются со всех элементов.
func (p *HTMLParser) ExtractReader(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := goquery.NewDocumentFromNode(root)
	info := &Document{
		RelativeHrefs: []string{},
		ExternalHrefs: []string{},
		IDs:           make(map[string]struct{}),
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if urlutil.IsRelative(href) {
			info.RelativeHrefs = append(info.RelativeHrefs, href)
		} else {
			info.ExternalHrefs = append(info.ExternalHrefs, href)
		}
	})

	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok {
			info.IDs[id] = struct{}{}
		}
	})

	return info, nil
}
