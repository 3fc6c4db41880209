package device

import "strings"

// Sanitize strips disallowed characters from each raw field and normalises
// absence. It is a pure transformation: the input mapping is never modified,
// and sanitizing an already-sanitized mapping returns an equal mapping.
//
// Required fields (deviceTypeName, customName) have every character outside
// [A-Za-z0-9 ] removed and are always present in the result, even when the
// stripped value is empty. Optional fields that are absent or empty become
// absent (nil); otherwise they are stripped the same way, and a value that
// strips to nothing also becomes absent.
func Sanitize(raw Fields) Fields {
	out := make(Fields, len(RequiredFields)+len(OptionalFields))

	for _, name := range RequiredFields {
		value := ""
		if v, ok := raw.Value(name); ok {
			value = stripDisallowed(v)
		}
		out.Set(name, value)
	}

	for _, name := range OptionalFields {
		v, ok := raw.Value(name)
		if !ok || v == "" {
			out[name] = nil
			continue
		}
		stripped := stripDisallowed(v)
		if stripped == "" {
			out[name] = nil
			continue
		}
		out.Set(name, stripped)
	}

	return out
}

// stripDisallowed removes every rune outside [A-Za-z0-9 ].
func stripDisallowed(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}
