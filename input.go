package radiogaga

import "strings"

// Input is one parsed line of user input.
type Input struct {
	Command string

	// Argument is the rest of the line with runs of whitespace collapsed.
	// Empty when the line holds a single word.
	Argument string
}

// ParseInput splits a line into a command and its argument. The first word
// is the command; all further words, joined by single spaces, form the
// argument. An empty line yields an empty command.
func ParseInput(line string) Input {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Input{}
	}
	return Input{
		Command:  fields[0],
		Argument: strings.Join(fields[1:], " "),
	}
}
