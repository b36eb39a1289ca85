package engine

import "strings"

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource rewrites shape-script source into something zygomys
// accepts, leaving string literals untouched:
//
//   - `;` and `;;` line comments become `//` comments.
//   - `:keyword` becomes the string literal "__kw_keyword", so keywords need
//     no global symbol and cannot collide with user variables.
//   - kebab-case identifiers such as outer-area become outer_area, since
//     zygomys reads a hyphen as the subtraction operator.
//
// Newlines are preserved so reported line numbers match the input.
func preprocessSource(source string) string {
	var out strings.Builder
	out.Grow(len(source) + len(source)/4)

	for i := 0; i < len(source); {
		c := source[i]
		switch {
		case c == '"':
			i = copyQuoted(&out, source, i, '"', true)
		case c == '`':
			i = copyQuoted(&out, source, i, '`', false)
		case c == ';':
			out.WriteString("//")
			for i < len(source) && source[i] == ';' {
				i++
			}
			for i < len(source) && source[i] != '\n' {
				out.WriteByte(source[i])
				i++
			}
		case c == ':' && i+1 < len(source) && source[i+1] == '=':
			out.WriteString(":=")
			i += 2
		case c == ':' && i+1 < len(source) && isLetter(source[i+1]):
			j := i + 1
			for j < len(source) && isKWChar(source[j]) {
				j++
			}
			out.WriteByte('"')
			out.WriteString(kwPrefix)
			out.WriteString(source[i+1 : j])
			out.WriteByte('"')
			i = j
		case c == '-' && i > 0 && i+1 < len(source) &&
			isIdentChar(source[i-1]) && isLetter(source[i+1]):
			out.WriteByte('_')
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

// copyQuoted copies a quoted literal starting at source[start] and returns
// the index just past its closing quote.
func copyQuoted(out *strings.Builder, source string, start int, quote byte, escapes bool) int {
	out.WriteByte(quote)
	i := start + 1
	for i < len(source) && source[i] != quote {
		if escapes && source[i] == '\\' && i+1 < len(source) {
			out.WriteString(source[i : i+2])
			i += 2
			continue
		}
		out.WriteByte(source[i])
		i++
	}
	if i < len(source) {
		out.WriteByte(quote)
		i++
	}
	return i
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}
