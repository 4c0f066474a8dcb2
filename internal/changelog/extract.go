// Package changelog extracts issue-tracker identifiers from changelog text.
package changelog

import "regexp"

// issuePattern matches issue identifiers as release changelogs emit them:
// immediately after a Markdown bold marker, optionally followed by an opening
// bracket when the identifier is rendered as a link, e.g. "**[ABC-123" or
// "**ABC-123". The project key starts with a letter and is at least two
// characters long.
var issuePattern = regexp.MustCompile(`\*\*\[?([A-Z][A-Z0-9]+-\d+)`)

// Extract scans the entire changelog and returns each matching identifier
// once, in first-occurrence order. A changelog with no identifiers yields nil.
func Extract(text string) []string {
	matches := issuePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var ids []string
	for _, m := range matches {
		id := m[1]
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
