package roster

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

type names []User

func (n names) String(i int) string { return n[i].Name }
func (n names) Len() int            { return len(n) }

// Filter returns the users whose names fuzzily match pattern, best match
// first. An empty pattern returns users unchanged.
func Filter(users []User, pattern string) []User {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return users
	}
	matches := fuzzy.FindFrom(pattern, names(users))
	out := make([]User, len(matches))
	for i, m := range matches {
		out[i] = users[m.Index]
	}
	return out
}

// Exclude returns users without the one with id.
func Exclude(users []User, id int64) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}
