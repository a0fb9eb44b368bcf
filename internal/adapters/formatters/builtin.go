package formatters

import (
	"context"
	"strings"
)

const builtinFormat = "builtin"

// BuiltinFormatter re-indents TypeScript by bracket depth and collapses blank
// lines. It needs no external tooling.
type BuiltinFormatter struct {
	style StyleConfig
}

// NewBuiltinFormatter creates a builtin formatter honoring tabWidth and useTabs.
func NewBuiltinFormatter(style StyleConfig) *BuiltinFormatter {
	return &BuiltinFormatter{style: style}
}

// Name returns the formatter name.
func (f *BuiltinFormatter) Name() string {
	return builtinFormat
}

// Format normalizes indentation and blank lines. Output ends with exactly one newline.
func (f *BuiltinFormatter) Format(_ context.Context, _ string, source string) (string, error) {
	unit := f.style.indent()

	var (
		out       []string
		depth     int
		inComment bool
	)

	last := func() string {
		if len(out) == 0 {
			return ""
		}
		return out[len(out)-1]
	}

	for _, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)

		if line == "" {
			if len(out) > 0 && last() != "" && !strings.HasSuffix(last(), "{") {
				out = append(out, "")
			}
			continue
		}

		if inComment {
			if strings.HasPrefix(line, "*") {
				line = " " + line
			}
			out = append(out, strings.Repeat(unit, depth)+line)
			inComment = !strings.Contains(line, "*/")
			continue
		}

		if strings.HasPrefix(line, "/*") && !strings.Contains(line, "*/") {
			out = append(out, strings.Repeat(unit, depth)+line)
			inComment = true
			continue
		}

		opens, closes, leading := bracketBalance(line)
		if leading > 0 && len(out) > 0 && last() == "" {
			out = out[:len(out)-1]
		}

		out = append(out, strings.Repeat(unit, max(depth-leading, 0))+line)
		depth = max(depth+opens-closes, 0)
	}

	for len(out) > 0 && last() == "" {
		out = out[:len(out)-1]
	}

	return strings.Join(out, "\n") + "\n", nil
}

// bracketBalance counts opening and closing brackets outside strings and
// comments, plus the closers that start the line.
func bracketBalance(line string) (opens, closes, leading int) {
	var quote rune
	escaped := false
	atStart := true
	runes := []rune(line)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			}
			continue
		}

		if r == '/' && i+1 < len(runes) {
			if runes[i+1] == '/' {
				return opens, closes, leading
			}
			if runes[i+1] == '*' {
				j := i + 2
				for j+1 < len(runes) && (runes[j] != '*' || runes[j+1] != '/') {
					j++
				}
				if j+1 >= len(runes) {
					return opens, closes, leading
				}
				i = j + 1
				atStart = false
				continue
			}
		}

		switch r {
		case '\'', '"', '`':
			quote = r
		case '{', '(', '[':
			opens++
		case '}', ')', ']':
			closes++
			if atStart {
				leading++
			}
			continue
		}

		atStart = false
	}

	return opens, closes, leading
}
