package mail

import (
	"fmt"
	"strings"
)

// Render substitutes positional placeholders in the body template with the
// recipient's values. Every occurrence of the literal token ${i} is replaced
// by row[i], for i = 1..len(row)-1; index 0 is the destination address and is
// never substituted. Placeholders with no corresponding value are left
// verbatim. The inputs are not modified.
func Render(template string, row Recipient) string {
	out := template
	for i := 1; i < len(row); i++ {
		out = strings.ReplaceAll(out, fmt.Sprintf("${%d}", i), row[i])
	}
	return out
}
