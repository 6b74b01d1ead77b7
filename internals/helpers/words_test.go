package helper

import (
	"math/rand"
	"strings"
	"testing"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{-5, "Invalid input"},
		{1, "One"},
		{7, "Seven"},
		{13, "Thirteen"},
		{20, "Twenty"},
		{45, "Forty five"},
		{99, "Ninety nine"},
		{100, "One hundred"},
		{101, "One hundred and one"},
		{999, "Nine hundred and ninety nine"},
		{1000, "One thousand"},
		{1234, "One thousand and two hundred and thirty four"},
		{20000, "Twenty thousand"},
		{99999, "Ninety nine thousand and nine hundred and ninety nine"},
		{100000, "One lakh"},
		{123456, "One lakh twenty three thousand and four hundred and fifty six"},
		{10000000, "One crore"},
		{12345678, "One crore twenty three lakh forty five thousand and six hundred and seventy eight"},
	}
	for _, tt := range tests {
		if got := NumberToWords(tt.in); got != tt.want {
			t.Errorf("NumberToWords(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// wordsToNumber is the inverse lookup used to check round-trips.
func wordsToNumber(t *testing.T, phrase string) int {
	t.Helper()

	lookup := map[string]int{}
	for i, w := range wordUnits {
		if w != "" {
			lookup[w] = i
		}
	}
	for i, w := range wordTens {
		if w != "" {
			lookup[w] = i * 10
		}
	}

	value, current := 0, 0
	for _, token := range strings.Fields(strings.ToLower(phrase)) {
		switch token {
		case "and":
			// connective only
		case "hundred":
			current *= 100
		case "thousand":
			value += current * 1000
			current = 0
		case "lakh":
			value += current * 100000
			current = 0
		case "crore":
			value += current * 10000000
			current = 0
		default:
			n, ok := lookup[token]
			if !ok {
				t.Fatalf("unknown word %q in %q", token, phrase)
			}
			current += n
		}
	}
	return value + current
}

func TestNumberToWordsRoundTrip(t *testing.T) {
	check := func(n int) {
		if got := wordsToNumber(t, NumberToWords(n)); got != n {
			t.Errorf("round trip of %d via %q gave %d", n, NumberToWords(n), got)
		}
	}

	// boundaries of every scale
	for _, n := range []int{1, 9, 10, 19, 20, 21, 99, 100, 101, 110, 119, 999,
		1000, 1001, 9999, 10000, 99999, 100000, 100001, 999999,
		1000000, 9999999, 10000000, 10000001, 99999999} {
		check(n)
	}

	// deterministic stride across the full supported range
	for n := 1; n <= 99_999_999; n += 99_991 {
		check(n)
	}

	// random sample
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		check(1 + r.Intn(99_999_999))
	}
}
