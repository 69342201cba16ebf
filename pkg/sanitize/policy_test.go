package sanitize

import (
	"strings"
	"testing"
)

func TestFieldPolicyRemovesScripts(t *testing.T) {
	got := HTML(nil, `<span itemprop="name">Ada</span><script>alert('x')</script>`)
	if strings.Contains(got, "script") {
		t.Fatalf("expected script removed, got %q", got)
	}
	if !strings.Contains(got, `<span itemprop="name">Ada</span>`) {
		t.Fatalf("expected itemprop span kept, got %q", got)
	}
}

func TestFieldPolicyKeepsLabelAndLinks(t *testing.T) {
	input := `<span class="acf-label acf-label-site">Site:</span> <a href="https://example.com">Example</a>`
	got := HTML(FieldPolicy(), input)
	if !strings.Contains(got, `class="acf-label acf-label-site"`) {
		t.Fatalf("expected label class kept, got %q", got)
	}
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Fatalf("expected link kept, got %q", got)
	}
}

func TestFieldPolicyDropsJavascriptURLs(t *testing.T) {
	got := HTML(nil, `<a href="javascript:alert(1)">x</a>`)
	if strings.Contains(got, "javascript") {
		t.Fatalf("expected javascript url removed, got %q", got)
	}
}

func TestHTMLEmptyInput(t *testing.T) {
	if got := HTML(nil, "   "); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
