package binding

import (
	"strconv"
	"strings"
)

// translatePlaceholders rewrites each anonymous "{}" in template to the
// backend's indexed form, numbering from zero:
//
//	"a{}b{}c" -> "a{0}b{1}c"
//
// Every other character, other brace sequences included, is copied as is.
// There is no escape for a literal "{}".
func translatePlaceholders(template string) string {
	i := strings.Index(template, "{}")
	if i < 0 {
		return template
	}
	var sb strings.Builder
	sb.Grow(len(template) + 8)
	n := 0
	for i >= 0 {
		sb.WriteString(template[:i+1])
		sb.WriteString(strconv.Itoa(n))
		sb.WriteByte('}')
		n++
		template = template[i+2:]
		i = strings.Index(template, "{}")
	}
	sb.WriteString(template)
	return sb.String()
}
