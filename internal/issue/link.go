package issue

import (
	"net/url"
	"strings"
)

// placeholder is the literal substituted with the issue identifier in URL
// templates, matching the `${id}` convention of the workflow inputs.
const placeholder = "${id}"

// BuildLink substitutes the identifier into every ${id} occurrence of the
// template. The identifier is percent-encoded so it is safe inside a path or
// query segment.
func BuildLink(template, id string) string {
	return strings.ReplaceAll(template, placeholder, url.PathEscape(id))
}
