// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlight returns src highlighted as lang and wrapped in a <pre> element.
//
// If either lang or src is empty, src is returned unchanged. Languages
// unknown to the highlighter are rendered as escaped plain text.
func Highlight(lang, src string) (string, error) {
	return highlight(lang, src, "github")
}

var formatter = html.New(html.PreventSurroundingPre(true))

func highlight(lang, src, style string) (string, error) {
	if lang == "" || src == "" {
		return src, nil
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("<pre>")
	if err := formatter.Format(&sb, styles.Get(style), it); err != nil {
		return "", err
	}
	sb.WriteString("</pre>")
	return sb.String(), nil
}
