package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnicodeForChar(t *testing.T) {
	tests := []struct {
		name string
		char string
		want string
	}{
		{"single codepoint", "😀", "1f600"},
		{"bmp codepoint", "©", "a9"},
		{"heavy black heart", "❤", "2764"},
		{"ascii digit", "0", "30"},
		{"empty string", "", ""},
		// Multi-codepoint sequences keep the zero padding of every
		// block after the first; only the leading zeros of the whole
		// string are stripped.
		{"flag sequence", "🇺🇸", "1f1fa0001f1f8"},
		{"skin tone modifier", "👍🏽", "1f44d0001f3fd"},
		{"zwj family", "👨‍👩‍👦", "1f4680000200d0001f4690000200d0001f466"},
		{"keycap", "1️⃣", "310000fe0f000020e3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnicodeForChar(tt.char))
		})
	}
}
