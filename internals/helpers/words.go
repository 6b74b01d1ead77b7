package helper

import (
	"strings"
)

// NumberToWords renders an amount in English words on the Indian numbering
// scale (crore/lakh/thousand), the way it prints on receipts and the
// admission form ("Rupees Twelve thousand and five hundred only").
//
// Contract:
//   - 0 returns "" (unset/zero amounts print as blank on the documents)
//   - negative input returns "Invalid input"
//   - otherwise the words phrase, trimmed, first letter capitalized
func NumberToWords(num int) string {
	if num == 0 {
		return ""
	}
	if num < 0 {
		return "Invalid input"
	}
	return capitalize(convertWords(num))
}

var wordUnits = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var wordTens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var wordScales = []struct {
	divisor int
	name    string
}{
	{10000000, "crore"},
	{100000, "lakh"},
	{1000, "thousand"},
}

func twoDigits(n int) string {
	if n < 20 {
		return wordUnits[n]
	}
	ten := n / 10
	unit := n % 10
	if unit != 0 {
		return wordTens[ten] + " " + wordUnits[unit]
	}
	return wordTens[ten]
}

func convertWords(n int) string {
	if n == 0 {
		return ""
	}
	var result string

	for _, scale := range wordScales {
		if q := n / scale.divisor; q > 0 {
			result += convertWords(q) + " " + scale.name + " "
			n %= scale.divisor
		}
	}

	// leftover under a thousand, joined with "and" after any scaled prefix
	if n > 0 {
		if result != "" {
			result += "and "
		}
		if n < 100 {
			result += twoDigits(n)
		} else {
			result += wordUnits[n/100] + " hundred"
			if n%100 != 0 {
				result += " and " + twoDigits(n%100)
			}
		}
	}

	return strings.TrimSpace(result)
}

func capitalize(str string) string {
	if str == "" {
		return ""
	}
	return strings.ToUpper(str[:1]) + str[1:]
}
