// Package antispam obfuscates e-mail addresses with HTML character references
// so naive harvesters scanning raw markup do not see the address, while
// browsers still render and follow it. The encoding is deterministic: the same
// address always produces the same markup.
package antispam

import (
	"strconv"
	"strings"
)

// Encoder obfuscates addresses. The zero value alternates between encoded and
// literal characters; Full encodes every character.
type Encoder struct {
	Full bool
}

// Obfuscate satisfies field.Obfuscator.
func (e Encoder) Obfuscate(email string) string {
	var b strings.Builder
	b.Grow(len(email) * 4)

	idx := 0
	for _, r := range email {
		switch {
		case alwaysEncode(r), e.Full, idx%2 == 0:
			writeEntity(&b, r)
		default:
			b.WriteRune(r)
		}
		idx++
	}
	return b.String()
}

// Obfuscate encodes email with the default Encoder.
func Obfuscate(email string) string {
	return Encoder{}.Obfuscate(email)
}

func alwaysEncode(r rune) bool {
	switch r {
	case '@', '.', '<', '>', '"', '\'', '&':
		return true
	}
	return r > 0x7e || r < 0x20
}

func writeEntity(b *strings.Builder, r rune) {
	b.WriteString("&#")
	b.WriteString(strconv.Itoa(int(r)))
	b.WriteByte(';')
}
