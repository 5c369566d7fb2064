package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/system.txt
var systemRaw string

// System returns the fixed system instructions for the order-management
// agent. The text is in French, like the audience it serves; changing it
// changes runtime behavior even though no code changes.
func System() string {
	return strings.TrimSpace(systemRaw)
}
