package diag

import (
	"strings"

	"github.com/serenize/snaker"
)

// CodeFromName derives a stable code from a CamelCase kind name, e.g.
// ("SYNTAX", "ExpectedSemiColon") gives SYNTAX_EXPECTED_SEMI_COLON.
func CodeFromName(prefix, name string) Code {
	return Code(prefix + "_" + strings.ToUpper(snaker.CamelToSnake(name)))
}
