// ABOUTME: Tests for the fuzzy suggestion wrapper
// ABOUTME: Verifies ranking, limits, and prefix fallback for mistyped names

package fuzzy

import "testing"

func TestSuggest(t *testing.T) {
	t.Parallel()

	names := []string{"ctrl+a", "ctrl+q", "ctrl+x", "ctrl+space"}

	tests := []struct {
		name    string
		pattern string
		limit   int
		want    string
	}{
		{name: "exact", pattern: "ctrl+q", limit: 1, want: "ctrl+q"},
		{name: "missing separator", pattern: "ctrlq", limit: 1, want: "ctrl+q"},
		{name: "trailing typo", pattern: "ctrl+qq", limit: 1, want: "ctrl+q"},
		{name: "word", pattern: "ctrl+spc", limit: 1, want: "ctrl+space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Suggest(tt.pattern, names, tt.limit)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Suggest(%q) = %v, want [%s]", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestSuggest_Limit(t *testing.T) {
	t.Parallel()

	got := Suggest("ctrl", []string{"ctrl+a", "ctrl+b", "ctrl+c", "ctrl+d"}, 2)
	if len(got) != 2 {
		t.Errorf("len(Suggest()) = %d, want 2", len(got))
	}
}

func TestSuggest_NoMatch(t *testing.T) {
	t.Parallel()

	if got := Suggest("zzz", []string{"cat", "dog"}, 3); len(got) != 0 {
		t.Errorf("Suggest() = %v, want none", got)
	}
	if got := Suggest("", []string{"cat"}, 3); got != nil {
		t.Errorf("Suggest(\"\") = %v, want nil", got)
	}
}
