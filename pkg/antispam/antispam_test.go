package antispam

import (
	"html"
	"strings"
	"testing"
)

func TestObfuscateIsDeterministic(t *testing.T) {
	first := Obfuscate("a@b.com")
	second := Obfuscate("a@b.com")
	if first != second {
		t.Fatalf("expected stable output, got %q and %q", first, second)
	}
	want := "&#97;&#64;&#98;&#46;&#99;o&#109;"
	if first != want {
		t.Fatalf("Obfuscate = %q, want %q", first, want)
	}
}

func TestObfuscateHidesAddress(t *testing.T) {
	got := Obfuscate("jane.doe@example.com")
	if strings.Contains(got, "@") || strings.Contains(got, "example.com") {
		t.Fatalf("expected address to be hidden, got %q", got)
	}
	if decoded := html.UnescapeString(got); decoded != "jane.doe@example.com" {
		t.Fatalf("decode mismatch: %q", decoded)
	}
}

func TestObfuscateEscapesMarkup(t *testing.T) {
	got := Obfuscate(`x"<y>`)
	if strings.ContainsAny(got, `"<>`) {
		t.Fatalf("expected markup characters encoded, got %q", got)
	}
}

func TestFullEncoder(t *testing.T) {
	got := Encoder{Full: true}.Obfuscate("ab")
	if got != "&#97;&#98;" {
		t.Fatalf("unexpected full encoding %q", got)
	}
}
