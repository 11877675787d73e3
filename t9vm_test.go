package t9vm

import (
	"errors"
	"slices"
	"testing"

	"github.com/wippyai/t9vm/asm"
	t9errors "github.com/wippyai/t9vm/errors"
)

func TestWords(t *testing.T) {
	prog, err := asm.Parse(`
y:3 a
x:1 s
v b
x:2 ite
`)
	if err != nil {
		t.Fatal(err)
	}

	words, err := Words(prog)
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	if want := []string{"a", "as", "bite"}; !slices.Equal(words, want) {
		t.Errorf("Words = %q, want %q", words, want)
	}

	n, err := CountWords(prog)
	if err != nil {
		t.Fatalf("CountWords: %v", err)
	}
	if n != len(words) {
		t.Errorf("CountWords = %d, want %d", n, len(words))
	}
}

func TestWords_Malformed(t *testing.T) {
	words, err := Words([]byte{0x01})
	if !t9errors.IsMalformed(err) {
		t.Errorf("error = %v, want malformed", err)
	}
	if len(words) != 0 {
		t.Errorf("words = %q, want none", words)
	}

	if _, err := CountWords([]byte{0x0d}); !errors.Is(err, t9errors.ErrTruncated) {
		t.Errorf("CountWords error = %v, want truncated", err)
	}
}
