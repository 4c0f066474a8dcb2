// Package security keeps credentials embedded in URLs out of requests, logs,
// and notification text.
package security

import (
	"encoding/base64"
	"net/url"
	"regexp"
)

// userinfoPattern matches the userinfo component of a URL authority,
// anchored on the scheme separator so ordinary colon-separated text is left
// alone. The masked form matches itself, which makes masking idempotent.
// The anchoring means a scheme-less "user:pass@host" fragment would pass
// unmasked; transport errors always echo the full scheme-bearing URL, so
// that trade keeps "status: error"-style text intact.
var userinfoPattern = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9+.-]*://)([^/@\s]+)@`)

// PrepareAuth splits credentials embedded in a URL into a credential-free URL
// and a Basic authorization header value. The username and password are
// percent-decoded before encoding, so credentials that were URL-escaped to
// survive the userinfo section round-trip correctly.
//
// A URL without userinfo, or one that does not parse at all, is returned
// unchanged with an empty header. PrepareAuth never fails; malformed input
// degrades to "send as-is, no auth".
func PrepareAuth(rawURL string) (cleanURL, authHeader string) {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return rawURL, ""
	}

	username := u.User.Username()
	password, _ := u.User.Password()
	u.User = nil

	token := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return u.String(), "Basic " + token
}

// SanitizeURL masks any userinfo in a URL as "***:***@" so it can appear in
// diagnostics. The input is returned unchanged when it carries no userinfo.
func SanitizeURL(rawURL string) string {
	return SanitizeMessage(rawURL)
}

// SanitizeMessage masks credential-bearing URLs anywhere in free-form text.
// Error messages from the transport layer echo the request URL, userinfo
// included, so every diagnostic that may contain a URL must pass through
// here before being logged or emitted. Applying it twice is a no-op.
func SanitizeMessage(text string) string {
	return userinfoPattern.ReplaceAllString(text, "${1}***:***@")
}
