package radiogaga

import (
	"slices"
	"unicode"
)

// Suggestion is a completion candidate for a partially typed line.
type Suggestion struct {
	// Text replaces the line from Start up to the cursor.
	Text string

	// Label is extra information shown next to the candidate (a station's
	// stream URL). Empty for commands.
	Label string

	// Start is the rune offset in the line where the replacement begins.
	Start int
}

// CompleteFunc computes suggestions for line with the cursor at the given
// rune offset.
type CompleteFunc func(line string, cursor int) []Suggestion

// Complete returns suggestions for the input typed so far.
//
// While the text before the cursor has no whitespace it completes command
// names. Once a known command is followed by whitespace it completes
// station names, matching everything after the command and its separator.
// A first word that is not a known command yields no suggestions.
func Complete(line string, cursor int, commands []string, stations *Catalog) []Suggestion {
	rs := []rune(line)
	cursor = max(0, min(cursor, len(rs)))
	before := rs[:cursor]

	if !slices.ContainsFunc(before, unicode.IsSpace) {
		var out []Suggestion
		for cmd := range FuzzyFilter(string(before), commands) {
			out = append(out, Suggestion{Text: cmd, Start: 0})
		}
		return out
	}

	lead := 0
	for lead < len(before) && unicode.IsSpace(before[lead]) {
		lead++
	}
	end := lead
	for end < len(before) && !unicode.IsSpace(before[end]) {
		end++
	}
	if end == lead || !slices.Contains(commands, string(before[lead:end])) {
		return nil
	}

	// Skip the single separator after the command.
	start := end + 1
	if start > len(before) || stations == nil {
		return nil
	}

	var out []Suggestion
	for name := range FuzzyFilter(string(before[start:]), stations.Names()) {
		out = append(out, Suggestion{Text: name, Label: stations.URL(name), Start: start})
	}
	return out
}
