// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import (
	"strings"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestHighlightPassthrough(t *testing.T) {
	cases := map[string]struct {
		lang, src string
		want      string
	}{
		"no language":       {lang: "", src: "x := 1\n", want: "x := 1\n"},
		"no source":         {lang: "go", src: "", want: ""},
		"nothing":           {lang: "", src: "", want: ""},
		"markup left as is": {lang: "", src: "<b>bold</b>", want: "<b>bold</b>"},
		"blank source":      {lang: "", src: " ", want: " "},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Highlight(tc.lang, tc.src)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestHighlight(t *testing.T) {
	cases := map[string]struct {
		lang, src string
		contains  string
	}{
		"go":               {lang: "go", src: "package main\n\nfunc main() {}\n", contains: "<span"},
		"unknown language": {lang: "nosuchlanguage", src: "<tag>\n", contains: "&lt;tag&gt;"},
		"escapes markup":   {lang: "html", src: "<p>hi</p>\n", contains: "&lt;"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Highlight(tc.lang, tc.src)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(got, "<pre>") || !strings.HasSuffix(got, "</pre>") {
				t.Fatalf("Highlight(%q, %q) = %q, want a single <pre> element", tc.lang, tc.src, got)
			}
			testutil.AssertEqual(t, strings.Count(got, "<pre"), 1)
			if !strings.Contains(got, tc.contains) {
				t.Fatalf("Highlight(%q, %q) = %q, want it to contain %q", tc.lang, tc.src, got, tc.contains)
			}
		})
	}
}
