package instream

import (
	"errors"
	"testing"
)

func TestRuneStreamBasics(t *testing.T) {
	text := "Äabcäöü É12ô345ß++Ð+Ùģ"
	s := NewRuneStream(text)

	if !s.IsGood() {
		t.Fatal("IsGood() = false on fresh stream")
	}

	got, ok := s.Peek()
	expect(t, "Peek()", got, ok, "Ä")
	expect(t, "Extract(5)", mustExtract(t, s, 5), true, "Äabcä")
	expect(t, "Extract(1)", mustExtract(t, s, 1), true, "ö")

	got, ok = s.ExtractUntil(" ")
	expect(t, `ExtractUntil(" ")`, got, ok, "ü")

	got, ok = s.ExtractUntil("Ö", MaxCount(2))
	expect(t, `ExtractUntil("Ö", 2)`, got, ok, " É")

	got, ok = s.ExtractUntil("5", MaxCount(3))
	expect(t, `ExtractUntil("5", 3)`, got, ok, "12ô")

	got, ok = s.ExtractUntil("ß", ExtractSep())
	expect(t, `ExtractUntil("ß", extract)`, got, ok, "345ß")

	got, ok = s.Remainder()
	expect(t, "Remainder()", got, ok, "++Ð+Ùģ")

	got, ok = s.ExtractUntil("Ù", ExtractSep(), DiscardSep())
	expect(t, `ExtractUntil("Ù", extract, discard)`, got, ok, "++Ð+")

	if !s.IsGood() {
		t.Fatal("IsGood() = false before last unit")
	}

	got, ok = s.ExtractRemainder()
	expect(t, "ExtractRemainder()", got, ok, "ģ")

	if s.IsGood() {
		t.Fatal("IsGood() = true after ExtractRemainder")
	}
	if s.Size() != 22 {
		t.Errorf("Size() = %d, want 22", s.Size())
	}
	if s.Contents() != text {
		t.Error("Contents() does not return the contents")
	}
}

func TestRuneStreamEndOfInput(t *testing.T) {
	s := NewRuneStream("Löræm ipšum")

	got, ok := s.ExtractUntil(" ", ExtractSep())
	expect(t, `ExtractUntil(" ", extract)`, got, ok, "Löræm ")

	_, _, err := s.Extract(6)
	if !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("Extract(6) error = %v, want EndOfInput", err)
	}
	want := `failed to read 6 unit(s) from stream "Löræm ipšum", only 5 units available`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if s.Offset() != 6 {
		t.Errorf("Offset() = %d after failed Extract, want 6", s.Offset())
	}
}

func TestRuneStreamUnderflow(t *testing.T) {
	s := NewRuneStream("ďőő")
	mustExtract(t, s, 2)

	if err := s.Putback(); err != nil {
		t.Fatal(err)
	}
	if err := s.Putback(); err != nil {
		t.Fatal(err)
	}

	err := s.Putback()
	if !errors.Is(err, ErrUnderflow) {
		t.Fatalf("Putback() error = %v, want Underflow", err)
	}
	if want := `underflow in stream "ďőő"`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	got, ok := s.Peek()
	expect(t, "Peek()", got, ok, "ď")
}

func TestRuneStreamInvalidUTF8(t *testing.T) {
	s := NewRuneStream("a\xffb")
	if s.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", s.Size())
	}
	mustExtract(t, s, 1)
	got, ok := s.Peek()
	expect(t, "Peek()", got, ok, "\xff")
	got, ok = s.ExtractUntil("b", ExtractSep())
	expect(t, "ExtractUntil", got, ok, "\xffb")
}

func TestRuneStreamSeparatorInsideCodePoint(t *testing.T) {
	// "\xa9" is the trailing byte of "é" and must not split it.
	s := NewRuneStream("aéb")
	got, ok := s.ExtractUntil("\xa9", ExtractSep())
	expect(t, "ExtractUntil", got, ok, "aéb")
	if s.IsGood() {
		t.Fatalf("Offset() = %d, want exhausted", s.Offset())
	}

	s = NewRuneStream("é\xa9!")
	got, ok = s.ExtractUntil("\xa9", ExtractSep(), DiscardSep())
	expect(t, "ExtractUntil", got, ok, "é")
	if s.Offset() != 2 {
		t.Fatalf("Offset() = %d, want 2", s.Offset())
	}
}

// TestStreamsAgreeOnASCII replays the same operations on a byte stream and a
// rune stream built from ASCII text and compares every observable result.
func TestStreamsAgreeOnASCII(t *testing.T) {
	b := NewStringStream(lorem)
	r := NewRuneStream(lorem)

	type step func(s *Stream) string
	steps := []step{
		func(s *Stream) string { v, _ := s.Peek(); return v },
		func(s *Stream) string { v, _, _ := s.Extract(7); return v },
		func(s *Stream) string { _ = s.Putback(); return "" },
		func(s *Stream) string { v, _ := s.ExtractUntil("sit", ExtractSep()); return v },
		func(s *Stream) string { v, _ := s.ExtractUntil(",", MaxCount(3)); return v },
		func(s *Stream) string { v, _ := s.ExtractUntil(",", ExtractSep(), DiscardSep()); return v },
		func(s *Stream) string { v, _ := s.ExtractWs(); return v },
		func(s *Stream) string { v, _ := s.ExtractUntil("#", MaxCount(12)); return v },
		func(s *Stream) string { v, _ := s.Remainder(); return v },
		func(s *Stream) string { _, _, err := s.Extract(10000); return errString(err) },
		func(s *Stream) string { v, _ := s.ExtractUntil("zzz"); return v },
		func(s *Stream) string { v, _ := s.ExtractRemainder(); return v },
	}

	for i, st := range steps {
		gb, gr := st(b), st(r)
		if gb != gr {
			t.Fatalf("step %d: bytes %q, runes %q", i, gb, gr)
		}
		if b.Offset() != r.Offset() || b.IsGood() != r.IsGood() {
			t.Fatalf("step %d: bytes at %d, runes at %d", i, b.Offset(), r.Offset())
		}
	}
	if b.Size() != r.Size() {
		t.Fatalf("Size(): bytes %d, runes %d", b.Size(), r.Size())
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
