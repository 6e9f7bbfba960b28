package sections

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/dgallion1/pagesnip/internal/document"
)

func assertSections(t *testing.T, got, want []document.Section) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d sections, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section[%d]: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestParse_Basic(t *testing.T) {
	got, err := Parse("1\nfoo\n2\nbar\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSections(t, got, []document.Section{
		{Number: 1, Body: "foo\n"},
		{Number: 2, Body: "bar\n"},
	})
}

func TestParse_NoMarkers(t *testing.T) {
	got, err := Parse("just some text\nwith lines\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected 0 sections, got %d", len(got))
	}
}

func TestParse_EmptyInput(t *testing.T) {
	got, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected 0 sections, got %d", len(got))
	}
}

func TestParse_DuplicateNumbersPreserved(t *testing.T) {
	got, err := Parse("1\nfoo\n1\nbar\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSections(t, got, []document.Section{
		{Number: 1, Body: "foo\n"},
		{Number: 1, Body: "bar\n"},
	})
}

func TestParse_PreambleDropped(t *testing.T) {
	got, err := Parse("preamble\n1\nfoo\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSections(t, got, []document.Section{{Number: 1, Body: "foo\n"}})
}

func TestParse_LeadingZeros(t *testing.T) {
	got, err := Parse("007\nfoo\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSections(t, got, []document.Section{{Number: 7, Body: "foo\n"}})
}

func TestParse_GapsAndOrderPassThrough(t *testing.T) {
	got, err := Parse("10\nten\n3\nthree\n42\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSections(t, got, []document.Section{
		{Number: 10, Body: "ten\n"},
		{Number: 3, Body: "three\n"},
		{Number: 42, Body: ""},
	})
}

func TestParse_MultiLineBodies(t *testing.T) {
	input := "1\nfirst line\nsecond line\n\n2\nonly line"
	got, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSections(t, got, []document.Section{
		{Number: 1, Body: "first line\nsecond line\n\n"},
		{Number: 2, Body: "only line"},
	})
}

func TestParse_AdjacentMarkers(t *testing.T) {
	got, err := Parse("1\n2\nbody\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSections(t, got, []document.Section{
		{Number: 1, Body: ""},
		{Number: 2, Body: "body\n"},
	})
}

func TestParse_DigitsInsideLineAreBody(t *testing.T) {
	// Only lines made entirely of digits are markers.
	got, err := Parse("1\nroom 12\n 3\n4 \n12a\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSections(t, got, []document.Section{{Number: 1, Body: "room 12\n 3\n4 \n12a\n"}})
}

func TestParse_TrailingMarkerWithoutNewline(t *testing.T) {
	// A final digit line with no newline does not start a section.
	got, err := Parse("1\nfoo\n2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSections(t, got, []document.Section{{Number: 1, Body: "foo\n2"}})
}

func TestParse_OverflowFailsLoudly(t *testing.T) {
	_, err := Parse("99999999999999999999999999\nbig\n")
	if err == nil {
		t.Fatal("expected error for overflowing section number")
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("expected strconv.ErrRange, got %v", err)
	}
}

func TestPair_OddFragmentsFail(t *testing.T) {
	_, err := pair([]string{"preamble", "1", "foo", "2"})
	if !errors.Is(err, ErrUnpairedFragment) {
		t.Fatalf("expected ErrUnpairedFragment, got %v", err)
	}
}

func TestPair_EmptyFragments(t *testing.T) {
	got, err := pair(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected 0 sections, got %d", len(got))
	}
}

func TestSplit_AlwaysOddLength(t *testing.T) {
	inputs := []string{"", "x", "1\n", "1\na\n2\nb\n", "pre\n3\n\n4\n"}
	for _, in := range inputs {
		if n := len(split(in)); n%2 != 1 {
			t.Errorf("split(%q): expected odd fragment count, got %d", in, n)
		}
	}
}

func TestParse_UnicodeDigits(t *testing.T) {
	cases := map[string]int{
		"１\nfoo\n":  1,  // fullwidth
		"١\nfoo\n":  1,  // Arabic-Indic
		"१२\nfoo\n": 12, // Devanagari
		"1٢\nfoo\n": 12, // mixed scripts
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", in, err)
		}
		assertSections(t, got, []document.Section{{Number: want, Body: "foo\n"}})
	}
}

func TestParse_UnicodeDigitOverflow(t *testing.T) {
	_, err := Parse(strings.Repeat("９", 30) + "\nbig\n")
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("expected strconv.ErrRange, got %v", err)
	}
}
