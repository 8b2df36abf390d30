// Package prompt implements the line-based questions chezconf asks on the terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/chezconf/pkg/errors"
	"github.com/arthur-debert/chezconf/pkg/logging"
)

// MsgAnswerHint is printed after an unrecognized yes/no/skip answer.
const MsgAnswerHint = "❓ Please answer with 'y', 'n', or 'skip'."

// Prompter asks the user questions.
type Prompter interface {
	// AskTristate asks until the answer is a recognized yes, no or skip.
	AskTristate(label string) (Answer, error)
	// AskValue reads one line; empty input yields def.
	AskValue(label, def string) (string, error)
}

// Console implements Prompter over a line reader and a writer
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console prompter reading answers from in and writing prompts to out
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// AskTristate implements Prompter. Unrecognized input is retried without limit.
func (c *Console) AskTristate(label string) (Answer, error) {
	logger := logging.GetLogger("ui.prompt")
	for {
		fmt.Fprintf(c.out, "%s (y/n/skip): ", label)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		if answer, ok := ParseAnswer(line); ok {
			logger.Debug().Str("prompt", label).Stringer("answer", answer).Msg("Tristate answered")
			return answer, nil
		}
		logger.Trace().Str("input", line).Msg("Unrecognized answer")
		fmt.Fprintln(c.out, MsgAnswerHint)
	}
}

// AskValue implements Prompter
func (c *Console) AskValue(label, def string) (string, error) {
	fmt.Fprintf(c.out, "%s [%s]: ", label, def)
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	if value := strings.TrimSpace(line); value != "" {
		return value, nil
	}
	return def, nil
}

// readLine returns the next line without its terminator. A final unterminated
// line is returned as is; end of input with nothing read is an INPUT error.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", errors.New(errors.ErrInput, "unexpected end of input")
		}
		return "", errors.Wrap(err, errors.ErrInput, "failed to read user input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
