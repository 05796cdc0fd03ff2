package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/masskit/massalign/pkg/align"
)

// ParsePeptide parses a peptide string into a sequence. Residues are
// uppercase one-letter codes; a bracketed annotation after a residue attaches
// a modification to it, either by name ("AC[Carbamidomethyl]DE") or as a
// signed mass shift in Dalton ("AC[+57.021464]DE"). Named modifications are
// resolved against mods.
func ParsePeptide(s string, mods *ModDatabase) (align.Sequence, error) {
	var seq align.Sequence
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			seq = append(seq, align.Residue{Code: c})
		case c == '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("peptide %q: unclosed '[' at position %d", s, i)
			}
			if len(seq) == 0 {
				return nil, fmt.Errorf("peptide %q: modification before any residue", s)
			}
			name := s[i+1 : i+end]
			shift, err := resolveModification(name, mods)
			if err != nil {
				return nil, fmt.Errorf("peptide %q: %w", s, err)
			}
			seq[len(seq)-1].Mod += shift
			i += end
		default:
			return nil, fmt.Errorf("peptide %q: unexpected character %q at position %d", s, string(c), i)
		}
	}
	return seq, nil
}

func resolveModification(name string, mods *ModDatabase) (float64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("empty modification")
	}
	if name[0] == '+' || name[0] == '-' || name[0] >= '0' && name[0] <= '9' {
		shift, err := strconv.ParseFloat(name, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid mass shift %q: %w", name, err)
		}
		return shift, nil
	}
	if mods == nil {
		return 0, fmt.Errorf("unknown modification %q", name)
	}
	shift, ok := mods.GetMass(name)
	if !ok {
		return 0, fmt.Errorf("unknown modification %q", name)
	}
	return shift, nil
}

// FormatPeptide renders a sequence back to its string form, with modification
// shifts as bracketed signed masses.
func FormatPeptide(seq align.Sequence) string {
	var sb strings.Builder
	for _, r := range seq {
		sb.WriteByte(r.Code)
		if r.Mod != 0 {
			fmt.Fprintf(&sb, "[%+g]", r.Mod)
		}
	}
	return sb.String()
}
