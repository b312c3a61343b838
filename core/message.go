package core

import (
	"fmt"
	"strings"
)

// FormatMessage substitutes indexed placeholders of the form {n} in msg
// with the string form of params[n].
//
// msg is returned unchanged when params is empty. Placeholders whose index
// is out of range, or that are not a plain decimal index, are copied
// verbatim.
func FormatMessage(msg string, params []any) string {
	if len(params) == 0 || strings.IndexByte(msg, '{') < 0 {
		return msg
	}
	var sb strings.Builder
	sb.Grow(len(msg) + 16*len(params))
	for i := 0; i < len(msg); i++ {
		c := msg[i]
		if c != '{' {
			sb.WriteByte(c)
			continue
		}
		idx, end, ok := scanIndex(msg, i+1)
		if !ok || idx >= len(params) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteString(Stringify(params[idx]))
		i = end
	}
	return sb.String()
}

// scanIndex parses the digits starting at msg[start] up to a closing brace,
// returning the index and the position of the brace.
func scanIndex(msg string, start int) (idx, end int, ok bool) {
	j := start
	for j < len(msg) && msg[j] >= '0' && msg[j] <= '9' {
		if idx > (1<<31)/10 {
			return 0, 0, false
		}
		idx = idx*10 + int(msg[j]-'0')
		j++
	}
	if j == start || j >= len(msg) || msg[j] != '}' {
		return 0, 0, false
	}
	return idx, j, true
}

// Stringify converts any value to its string form. It never panics: fmt
// recovers from panicking String and Error methods and reports them inline.
func Stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return "<nil>"
	default:
		return fmt.Sprint(x)
	}
}
