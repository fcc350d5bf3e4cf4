// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import (
	"bytes"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/feeds"
)

// buildFeed writes an Atom feed with an entry for every generated page.
// Timestamps are taken from the source files, so that rebuilding unchanged
// sources produces the same feed.
func (b *buildContext) buildFeed() error {
	feed := &feeds.Feed{
		Title: b.c.Title,
		Link:  &feeds.Link{Href: b.pageURL("index.html")},
	}

	for _, p := range b.pages {
		title, err := pageTitle(p)
		if err != nil {
			return err
		}
		mod := p.info.ModTime().UTC()
		if mod.After(feed.Created) {
			feed.Created = mod
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Title:   title,
			Link:    &feeds.Link{Href: b.pageURL(p.dst)},
			Id:      b.pageURL(p.dst),
			Created: mod,
			Updated: mod,
		})
	}
	if feed.Created.IsZero() {
		feed.Created = time.Unix(0, 0).UTC()
	}
	feed.Updated = feed.Created

	atom, err := feed.ToAtom()
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(b.c.Dst, "feed.xml"), []byte(atom), 0o644)
}

// pageTitle returns the text of the first top-level heading of the page, or
// the base name of its source if it has none.
func pageTitle(p *page) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(p.html))
	if err != nil {
		return "", err
	}
	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		return title, nil
	}
	return path.Base(filepath.ToSlash(p.src)), nil
}

func (b *buildContext) pageURL(dst string) string {
	u := *b.c.BaseURL
	u.Path = path.Join("/", u.Path, dst)
	return u.String()
}
