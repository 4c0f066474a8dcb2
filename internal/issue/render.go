package issue

import "strings"

// BlockHeader precedes the bullet list in the notification payload.
const BlockHeader = "**Issues**"

// RenderBlock joins per-issue lines into the final Markdown block. Empty
// entries (issues whose responses carried no summary) are dropped; if nothing
// remains the block is the empty string, which callers treat as "emit no
// output", not as an error.
func RenderBlock(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return BlockHeader + "\n\n" + strings.Join(kept, "\n")
}
