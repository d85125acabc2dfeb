// Package portfile renders resolved crate packages as the cargo.crates
// block of a MacPorts-style Portfile.
package portfile

import (
	"fmt"
	"strings"

	"github.com/cargoport/cargoport/pkg/cargolock"
)

// header is the token opening the rendered block.
const header = "cargo.crates"

// justifiedBaseWidth is the amount of space always placed between name and
// version in AlignJustify, in addition to the computed compensation.
const justifiedBaseWidth = 5

// AlignmentMode selects how name and version columns are padded.
type AlignmentMode int

const (
	// AlignNormal pads names to a fixed 28-column width and right-aligns
	// versions to 8 columns, regardless of content.
	AlignNormal AlignmentMode = iota

	// AlignMaxlen pads both columns to exactly the longest entry.
	AlignMaxlen

	// AlignMultiline emits name, version, and checksum on separate
	// continued lines with no column alignment.
	AlignMultiline

	// AlignJustify inserts a per-package gap so that every line reaches
	// the checksum column at the same offset.
	AlignJustify
)

// String returns the flag spelling of the mode.
func (m AlignmentMode) String() string {
	switch m {
	case AlignMaxlen:
		return "maxlen"
	case AlignMultiline:
		return "multiline"
	case AlignJustify:
		return "justify"
	default:
		return "normal"
	}
}

// ParseMode converts a flag value into an AlignmentMode.
func ParseMode(s string) (AlignmentMode, error) {
	switch s {
	case "normal":
		return AlignNormal, nil
	case "maxlen":
		return AlignMaxlen, nil
	case "multiline":
		return AlignMultiline, nil
	case "justify":
		return AlignJustify, nil
	default:
		return AlignNormal, fmt.Errorf("unknown alignment mode %q (valid: normal, maxlen, multiline, justify)", s)
	}
}

// Format renders packages as a cargo.crates block.
//
// The caller guarantees the sequence is already sorted and deduplicated;
// Format does not re-check. Each checksummed package produces one
// backslash-continued line of name, version, and checksum; packages
// without a checksum are skipped. An empty sequence produces just the
// header token. The result carries no trailing newline.
//
// Format is total: it never fails, whatever the input.
func Format(packages []cargolock.Package, mode AlignmentMode) string {
	var nameWidth, versionWidth, maxCombined int

	// Maxlen and Justify need a measuring pass over the whole sequence
	// before any line can be emitted.
	switch mode {
	case AlignMaxlen:
		for _, p := range packages {
			nameWidth = max(nameWidth, len(p.Name))
			versionWidth = max(versionWidth, len(p.Version.String()))
		}
	case AlignJustify:
		for _, p := range packages {
			maxCombined = max(maxCombined, len(p.Name)+len(p.Version.String()))
		}
	}

	var out strings.Builder
	out.WriteString(header)

	for _, p := range packages {
		if !p.HasChecksum() {
			continue
		}
		out.WriteString(" \\\n")

		version := p.Version.String()
		switch mode {
		case AlignMaxlen:
			fmt.Fprintf(&out, "    %-*s  %-*s  %s", nameWidth, p.Name, versionWidth, version, p.Checksum)
		case AlignMultiline:
			fmt.Fprintf(&out, "    %s \\\n    %s \\\n    %s", p.Name, version, p.Checksum)
		case AlignJustify:
			// The gap absorbs the difference to the widest name+version
			// pair, so name+gap+version is constant across all lines.
			gap := maxCombined - len(p.Name) - len(version) + justifiedBaseWidth
			fmt.Fprintf(&out, "    %s%s%s  %s", p.Name, strings.Repeat(" ", gap), version, p.Checksum)
		default:
			fmt.Fprintf(&out, "    %-28s  %8s  %s", p.Name, version, p.Checksum)
		}
	}

	return out.String()
}
