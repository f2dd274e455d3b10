package pipeline

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rcauth-eu/privkeysplit/bigint"
	"github.com/rcauth-eu/privkeysplit/yaerrors"
)

// FormatIntermediate renders the three-line mod/exp/p1 intermediate text
// that split emits on stdout and reassemble reads from stdin. The leading
// space before "p1=" is not a typo: it mirrors the original tool's literal
// print format and is required for byte-for-byte compatibility with it.
func FormatIntermediate(n, e bigint.UInt, p1Hex string) string {
	return fmt.Sprintf("mod=%s\nexp=%s\n p1=%s\n", n.Hex(), e.Decimal(), p1Hex)
}

// ParseIntermediate parses the mod/exp/p1 intermediate text, matching each
// line by its trimmed prefix rather than position, mirroring the source
// parser's line.strip() + startswith() approach.
func ParseIntermediate(text string) (n, e bigint.UInt, p1Hex string, err yaerrors.Error) {
	var haveMod, haveExp, haveP1 bool

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "mod="):
			v, convErr := bigint.FromHex(strings.TrimPrefix(trimmed, "mod="))
			if convErr != nil {
				return bigint.Zero(), bigint.Zero(), "", yaerrors.FromError(http.StatusBadRequest, convErr, "pipeline: parse mod=")
			}

			n = v
			haveMod = true

		case strings.HasPrefix(trimmed, "exp="):
			iv, convErr := strconv.ParseUint(strings.TrimPrefix(trimmed, "exp="), 10, 64)
			if convErr != nil {
				return bigint.Zero(), bigint.Zero(), "", yaerrors.FromError(http.StatusBadRequest, convErr, "pipeline: parse exp=")
			}

			e = bigint.FromUint64(iv)
			haveExp = true

		case strings.HasPrefix(trimmed, "p1="):
			p1Hex = strings.TrimPrefix(trimmed, "p1=")
			haveP1 = true
		}
	}

	if !haveMod || !haveExp || !haveP1 {
		return bigint.Zero(), bigint.Zero(), "", yaerrors.FromError(
			http.StatusBadRequest,
			ErrIntermediateFormat,
			"pipeline: intermediate text missing mod=/exp=/p1= line",
		)
	}

	return n, e, p1Hex, nil
}
