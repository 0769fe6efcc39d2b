// Package assistant implements the shopping assistant: prompt composition,
// the call to the external text-generation oracle, and extraction of the
// navigation directive the oracle may embed in its reply.
package assistant

import "strings"

// directivePrefix is the fixed marker the oracle is instructed to append
// when the customer explicitly asks to go somewhere. The full token is the
// prefix immediately followed by a /word* path, e.g. NAVIGATE:/cart.
const directivePrefix = "NAVIGATE:"

// ParseReply splits raw oracle output into the user-facing utterance and an
// optional navigation directive.
//
// Matching is case-insensitive on the prefix. Every token is stripped from
// the utterance (together with the whitespace run in front of it), but only
// the first path is returned: replies are expected to carry at most one
// directive, so later ones are treated as noise. Path syntax is "/" plus
// word characters; which paths are meaningful routes is for the caller to
// decide. The function is total: arbitrary input at worst comes back as the
// trimmed utterance with no directive.
func ParseReply(raw string) (utterance, directive string) {
	type span struct{ start, end int }
	var spans []span

	for i := 0; i+len(directivePrefix) <= len(raw); i++ {
		if !strings.EqualFold(raw[i:i+len(directivePrefix)], directivePrefix) {
			continue
		}
		j := i + len(directivePrefix)
		if j >= len(raw) || raw[j] != '/' {
			continue
		}
		k := j + 1
		for k < len(raw) && isWordByte(raw[k]) {
			k++
		}
		if directive == "" {
			directive = raw[j:k]
		}
		start := i
		for start > 0 && isSpaceByte(raw[start-1]) {
			start--
		}
		spans = append(spans, span{start, k})
		i = k - 1
	}

	if len(spans) == 0 {
		return strings.TrimSpace(raw), ""
	}

	var b strings.Builder
	prev := 0
	for _, sp := range spans {
		if sp.start > prev {
			b.WriteString(raw[prev:sp.start])
		}
		if sp.end > prev {
			prev = sp.end
		}
	}
	if prev < len(raw) {
		b.WriteString(raw[prev:])
	}
	return strings.TrimSpace(b.String()), directive
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
