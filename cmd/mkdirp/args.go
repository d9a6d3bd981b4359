package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// shortOptions maps the accepted short option letters, upper or lower case,
// to whether they take a value.
var shortOptions = map[byte]bool{
	'm': true,
	'p': true,
	'v': false,
	'h': false,
}

// normalizeArgs rewrites short options so both cases are accepted (-M is
// -m, -P is -p, ...) and drops unknown short options after calling
// onUnknown for each, so that parsing continues with the remaining ones.
// Long options and everything after "--" pass through unchanged.
func normalizeArgs(args []string, onUnknown func(option byte)) []string {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
			out = append(out, arg)
			continue
		}

		for j := 1; j < len(arg); j++ {
			option := toLower(arg[j])
			takesValue, known := shortOptions[option]
			if !known {
				onUnknown(arg[j])
				continue
			}
			if !takesValue {
				out = append(out, "-"+string(option))
				continue
			}

			// The rest of the cluster, or else the next argument, is the value.
			if value := arg[j+1:]; value != "" {
				out = append(out, "-"+string(option), value)
			} else if i+1 < len(args) {
				out = append(out, "-"+string(option), args[i+1])
				i++
			} else {
				out = append(out, "-"+string(option))
			}
			break
		}
	}
	return out
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// reportUnknownOption prints the offending option, when it is printable
// ASCII, and the usage.
func reportUnknownOption(w io.Writer, cmd *cobra.Command, option byte) {
	var b strings.Builder
	if option >= 0x20 && option < 0x7f {
		fmt.Fprintf(&b, "Unknown option %c\n", option)
	}
	b.WriteString(cmd.UsageString())
	_, _ = io.WriteString(w, b.String())
}
