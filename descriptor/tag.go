package descriptor

import "strings"

// tagOption holds the name and arguments of a single tag option.
type tagOption struct {
	name string
	args []string
}

// parseTag tokenizes a raw tag string (e.g., "required,name(label)") into options.
// Behavior:
//   - Splits on top-level commas only (commas inside parentheses do not split tokens).
//   - Trims whitespace around tokens and arguments.
//   - Empty tokens (from leading/trailing commas) are skipped.
//   - Arguments are split by commas; nested parentheses are not parsed specially.
func parseTag(tag string) []tagOption {
	var opts []tagOption
	if tag == "" {
		return opts
	}

	var tokens []string
	depth := 0
	start := 0
	for i, r := range tag {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				tokens = append(tokens, strings.TrimSpace(tag[start:i]))
				start = i + 1
			}
		}
	}
	tokens = append(tokens, strings.TrimSpace(tag[start:]))

	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		name := tok
		var args []string
		if idx := strings.IndexRune(tok, '('); idx != -1 && strings.HasSuffix(tok, ")") {
			name = strings.TrimSpace(tok[:idx])
			inner := strings.TrimSpace(tok[idx+1 : len(tok)-1])
			if inner != "" {
				for _, a := range strings.Split(inner, ",") {
					if a = strings.TrimSpace(a); a != "" {
						args = append(args, a)
					}
				}
			}
		}
		if name != "" {
			opts = append(opts, tagOption{name: name, args: args})
		}
	}
	return opts
}
