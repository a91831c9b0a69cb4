// Package headline demonstrates mocking functions that code under test receives as values.
package headline

import "strings"

// Flush writes out buffered output.
func Flush() {}

// Join joins parts with sep.
func Join(sep string, parts ...string) string {
	return strings.Join(parts, sep)
}

// Render capitalizes the first word and joins the words with join. flush runs once rendering
// is done, even for no words.
func Render(join func(sep string, parts ...string) string, flush func(), words ...string) string {
	defer flush()

	if len(words) == 0 {
		return ""
	}

	capitalized := append([]string{strings.ToUpper(words[0][:1]) + words[0][1:]}, words[1:]...)

	return join(" ", capitalized...)
}
