// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTMLBasics(t *testing.T) {
	out, err := ToHTML("# Title\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestToHTMLHeadingAnchors(t *testing.T) {
	out, err := ToHTML("## Getting Started")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out, `id="getting-started"`) {
		t.Errorf("heading id missing: %q", out)
	}
}

func TestToHTMLGFMTable(t *testing.T) {
	out, err := ToHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("table not rendered: %q", out)
	}
}

func TestToHTMLCodeHighlighting(t *testing.T) {
	out, err := ToHTML("```go\nfunc main() {}\n```")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	// Highlighted output is styled spans rather than a bare <pre><code> block.
	if !strings.Contains(out, "<span") {
		t.Errorf("code block not highlighted: %q", out)
	}
}

func TestToHTMLRawHTMLPassthrough(t *testing.T) {
	out, err := ToHTML(`<figure class="wide">content</figure>`)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out, `<figure class="wide">`) {
		t.Errorf("raw html stripped: %q", out)
	}
}
