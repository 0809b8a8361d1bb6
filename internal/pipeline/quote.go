package pipeline

import "strings"

// FenceMarker is the Markdown code fence placed around template constructs.
const FenceMarker = "```"

// Template delimiters recognized by the quoting scanner.
const (
	openDelim      = "{{"
	closeDelim     = "}}"
	codeBlockOpen  = "{{< code"
	codeBlockClose = "{{< /code >}}"
)

// State is the quoting scanner state carried from one line to the next.
type State int

const (
	// StatePlain means the scanner is outside any template construct.
	StatePlain State = iota
	// StateInSpan means a generic {{ ... }} construct is open.
	StateInSpan
	// StateInBlock means a {{< code >}} block is open. Only the literal
	// {{< /code >}} token closes it; a bare }} does not.
	StateInBlock
)

// String returns a readable state name for logs.
func (s State) String() string {
	switch s {
	case StatePlain:
		return "plain"
	case StateInSpan:
		return "in-span"
	case StateInBlock:
		return "in-block"
	default:
		return "unknown"
	}
}

// fenceLine is a fence marker on its own line.
const fenceLine = FenceMarker + "\n"

// QuoteLine wraps every template construct found in line with code fences and
// returns the rewritten line along with the state to use for the next line.
// The line is expected to carry its own terminator, as read from the source.
//
// Known limitation: constructs that already sit inside a fenced code block in
// the source are fenced again.
func QuoteLine(line string, state State) (string, State) {
	var out strings.Builder

	for {
		if state == StatePlain {
			idx := strings.Index(line, openDelim)
			if idx == -1 {
				out.WriteString(line)
				return out.String(), state
			}

			if strings.HasPrefix(line[idx:], codeBlockOpen) {
				state = StateInBlock
			} else {
				state = StateInSpan
			}

			if idx > 0 {
				out.WriteString(line[:idx])
				out.WriteString("\n")
			}
			out.WriteString(fenceLine)
			line = line[idx:]
			continue
		}

		end := closingIndex(line, state)
		if end == -1 {
			out.WriteString(line)
			return out.String(), state
		}
		state = StatePlain

		rest := line[end:]
		if rest == "" || rest == "\n" {
			out.WriteString(line)
			out.WriteString(fenceLine)
			return out.String(), state
		}

		out.WriteString(line[:end])
		out.WriteString("\n")
		out.WriteString(fenceLine)
		line = rest
	}
}

// closingIndex returns the offset just past the delimiter that closes the
// construct opened in state, or -1 when the line does not close it.
func closingIndex(line string, state State) int {
	token := closeDelim
	if state == StateInBlock {
		token = codeBlockClose
	}
	idx := strings.Index(line, token)
	if idx == -1 {
		return -1
	}
	return idx + len(token)
}

// QuoteBody runs QuoteLine over every line of body, starting in StatePlain,
// and returns the quoted text with the state left after the last line.
func QuoteBody(body string) (string, State) {
	var out strings.Builder
	out.Grow(len(body) + len(body)/8)

	state := StatePlain
	for _, line := range strings.SplitAfter(body, "\n") {
		if line == "" {
			continue
		}
		var quoted string
		quoted, state = QuoteLine(line, state)
		out.WriteString(quoted)
	}
	return out.String(), state
}
