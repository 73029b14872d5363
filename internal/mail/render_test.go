package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		row      Recipient
		expected string
	}{
		{
			name:     "replaces single placeholder",
			template: "Hello ${1}",
			row:      Recipient{"a@x.com", "Alice"},
			expected: "Hello Alice",
		},
		{
			name:     "replaces every occurrence globally",
			template: "${1}, yes ${1}, you ${1}",
			row:      Recipient{"a@x.com", "Alice"},
			expected: "Alice, yes Alice, you Alice",
		},
		{
			name:     "replaces multiple indices",
			template: "Dear ${1}, your seat is ${2}.",
			row:      Recipient{"a@x.com", "Alice", "12B"},
			expected: "Dear Alice, your seat is 12B.",
		},
		{
			name:     "leaves placeholders without values verbatim",
			template: "Hi ${1}, code ${5}",
			row:      Recipient{"a@x.com", "Alice"},
			expected: "Hi Alice, code ${5}",
		},
		{
			name:     "never substitutes the address at index zero",
			template: "Contact: ${0}",
			row:      Recipient{"a@x.com", "Alice"},
			expected: "Contact: ${0}",
		},
		{
			name:     "address-only row leaves template untouched",
			template: "Hello ${1}",
			row:      Recipient{"a@x.com"},
			expected: "Hello ${1}",
		},
		{
			name:     "empty template stays empty",
			template: "",
			row:      Recipient{"a@x.com", "Alice"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.template, tt.row))
		})
	}
}

func TestRender_DoesNotMutateInputs(t *testing.T) {
	row := Recipient{"a@x.com", "Alice"}
	template := "Hello ${1}"

	_ = Render(template, row)

	assert.Equal(t, Recipient{"a@x.com", "Alice"}, row)
	assert.Equal(t, "Hello ${1}", template)
}
