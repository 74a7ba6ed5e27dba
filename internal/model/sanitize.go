package model

import "strings"

// SanitizeName derives a filesystem path segment from a display name.
//
// The derivation is deterministic and one-way: the name is lowercased,
// every run of non-alphanumeric characters collapses to a single "-",
// and leading/trailing separators are trimmed. Two different names may
// sanitize to the same segment; callers that write files are responsible
// for disambiguating siblings.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingSep := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('-')
			pendingSep = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
