package content

import "strings"

// SplitList turns a freeform multi-value text field into an ordered list.
// Values may be separated by newlines or commas; surrounding whitespace is
// trimmed and empty segments are dropped.
func SplitList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})

	out := make([]string, 0, len(fields))

	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}

	return out
}
