// Package redact masks credentials and personal data before they reach logs.
package redact

import "strings"

// Token returns a log-safe form of an opaque credential: its length and the
// last four characters for short correlation, never the full value.
func Token(token string) string {
	if token == "" {
		return "[EMPTY]"
	}
	if len(token) <= 8 {
		return "[REDACTED]"
	}
	return "[REDACTED…" + token[len(token)-4:] + "]"
}

// Email masks the local part of an e-mail address: "foobar@x.com" -> "fo***@x.com".
// Anything without exactly one '@' becomes "***".
func Email(s string) string {
	if strings.Count(s, "@") != 1 {
		return "***"
	}
	i := strings.IndexByte(s, '@')
	local, domain := s[:i], s[i+1:]
	runes := []rune(local)
	if len(runes) > 2 {
		local = string(runes[:2]) + "***"
	} else {
		local = "***"
	}
	return local + "@" + domain
}
