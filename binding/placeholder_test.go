package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatePlaceholders(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"no placeholders", "no placeholders"},
		{"a{}b{}c", "a{0}b{1}c"},
		{"{}", "{0}"},
		{"{}{}{}", "{0}{1}{2}"},
		{"value is {}", "value is {0}"},
		{"{x}", "{x}"},
		{"{ }", "{ }"},
		{"{{}}", "{{0}}"},
		{"}{", "}{"},
		{"{0} and {}", "{0} and {0}"},
		{"trailing {", "trailing {"},
		{"{}{}{}{}{}{}{}{}{}{}{}", "{0}{1}{2}{3}{4}{5}{6}{7}{8}{9}{10}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, translatePlaceholders(tt.in), "input %q", tt.in)
	}
}

func TestTranslatePlaceholders_NoCopyWithoutPlaceholder(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = translatePlaceholders("nothing to do here")
	})
	assert.Zero(t, allocs)
}

func BenchmarkTranslatePlaceholders(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = translatePlaceholders("user {} logged in from {} after {} attempts")
	}
}
