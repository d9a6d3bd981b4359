package mkdirp

import (
	"strings"

	"github.com/arthur-debert/mkdirp/pkg/mkdirp/core"
)

// ModeSelection is the outcome of parsing a -m token.
type ModeSelection struct {
	Token string
	Mode  core.CreationMode
	// Requested is set when the token selects something other than the
	// default owner-full mode. Only then is a permission change reported.
	Requested bool
	// Recognized is false when the token matched nothing and the default
	// was used instead.
	Recognized bool
}

// DefaultMode is the selection used when no -m flag is given.
func DefaultMode() ModeSelection {
	return ModeSelection{Mode: core.ModeOwnerFull, Recognized: true}
}

// ParseMode maps a symbolic token to a CreationMode. Matching is exact and
// case-sensitive. Unknown tokens fall back to owner-full and never request
// a permission change.
func ParseMode(token string) ModeSelection {
	sel := ModeSelection{Token: token, Mode: core.ModeOwnerFull, Recognized: true}

	switch token {
	case "r":
		sel.Mode, sel.Requested = core.ModeOwnerRead, true
	case "w":
		sel.Mode, sel.Requested = core.ModeOwnerWrite, true
	case "x":
		sel.Mode, sel.Requested = core.ModeOwnerExecute, true
	case "rw", "wr":
		sel.Mode, sel.Requested = core.ModeOwnerReadWrite, true
	default:
		if !isPermutation(token, "rwx") {
			sel.Recognized = false
		}
	}
	return sel
}

// isPermutation reports whether s uses every byte of set exactly once.
func isPermutation(s, set string) bool {
	if len(s) != len(set) {
		return false
	}
	seen := make(map[byte]bool, len(set))
	for i := 0; i < len(s); i++ {
		if seen[s[i]] || strings.IndexByte(set, s[i]) < 0 {
			return false
		}
		seen[s[i]] = true
	}
	return true
}
