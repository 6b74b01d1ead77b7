package controller

import "testing"

func TestGenerateGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{5, "Good morning, Asha"},
		{11, "Good morning, Asha"},
		{12, "Good afternoon, Asha"},
		{17, "Good afternoon, Asha"},
		{18, "Good evening, Asha"},
		{21, "Good evening, Asha"},
		{22, "Good night, Asha"},
		{0, "Good night, Asha"},
		{4, "Good night, Asha"},
	}
	for _, tt := range tests {
		if got := generateGreeting("Asha", tt.hour); got != tt.want {
			t.Errorf("generateGreeting(hour=%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
