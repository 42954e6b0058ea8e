// ABOUTME: Thin wrapper over sahilm/fuzzy for "did you mean" suggestions
// ABOUTME: Ranks candidate names against a mistyped one and returns the best few

package fuzzy

import "github.com/sahilm/fuzzy"

// Suggest returns up to limit candidates that fuzzy-match pattern, best
// first. When the whole pattern matches nothing it retries with ever shorter
// prefixes, so "ctrl+qq" still suggests "ctrl+q".
func Suggest(pattern string, candidates []string, limit int) []string {
	if pattern == "" || limit <= 0 {
		return nil
	}
	for p := pattern; p != ""; p = p[:len(p)-1] {
		if out := top(fuzzy.Find(p, candidates), limit); len(out) > 0 {
			return out
		}
	}
	return nil
}

func top(matches fuzzy.Matches, limit int) []string {
	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
