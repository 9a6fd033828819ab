package answer

import (
	"fmt"
	"strings"

	"github.com/poiesic/regulo/core"
)

// RenderText formats an answer for terminal output: the answer body
// followed by the source list.
func RenderText(a *core.Answer) string {
	var b strings.Builder
	b.WriteString(a.Answer)

	if len(a.Sources) > 0 {
		b.WriteString("\n\nKaynaklar:\n")
		for _, source := range a.Sources {
			fmt.Fprintf(&b, "- %s\n", source)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
