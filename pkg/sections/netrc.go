package sections

import (
	"fmt"
	"io"

	"github.com/arthur-debert/chezconf/pkg/document"
	"github.com/arthur-debert/chezconf/pkg/logging"
	"github.com/arthur-debert/chezconf/pkg/types"
	"github.com/arthur-debert/chezconf/pkg/ui/display"
	"github.com/arthur-debert/chezconf/pkg/ui/prompt"
)

// Netrc edits data.netrc.machines.
type Netrc struct {
	base
}

// NewNetrc creates the netrc machines editor
func NewNetrc(out io.Writer, renderer *display.Renderer) *Netrc {
	return &Netrc{base{out: out, renderer: renderer}}
}

// Name implements Editor
func (n *Netrc) Name() string {
	return "netrc"
}

// Edit implements Editor. Yes and No both start collecting machines; only
// Skip keeps the stored list. The collected list replaces the old one.
func (n *Netrc) Edit(doc *document.Table, p prompt.Prompter) (*document.Table, error) {
	logger := logging.GetLogger("sections.netrc")

	n.showCurrent(MsgNetrcCurrent, doc.Subtable("data", "netrc"))

	answer, err := p.AskTristate(MsgNetrcConfigure)
	if err != nil {
		return nil, err
	}

	switch answer {
	case prompt.Skip:
		fmt.Fprintln(n.out, MsgNetrcSkipped)
		logger.Info().Msg("Netrc section skipped")
		return doc, nil
	case prompt.Yes, prompt.No:
	default:
		return nil, unexpectedAnswer(answer)
	}

	machines, err := n.collect(p)
	if err != nil {
		return nil, err
	}

	out := doc.Clone()
	netrc, err := out.EnsureTable("data", "netrc")
	if err != nil {
		return nil, err
	}
	tables := make([]*document.Table, len(machines))
	for i, m := range machines {
		tables[i] = m.Table()
	}
	netrc.Set("machines", tables)

	logger.Info().Int("machines", len(machines)).Msg("Netrc machines replaced")
	return out, nil
}

// collect asks for machines until the user stops; it always returns at least one.
func (n *Netrc) collect(p prompt.Prompter) ([]types.Machine, error) {
	var machines []types.Machine
	for {
		fmt.Fprintln(n.out, MsgNetrcAdding)
		m, err := askMachine(p)
		if err != nil {
			return nil, err
		}
		machines = append(machines, m)

		more, err := p.AskTristate(MsgNetrcAnother)
		if err != nil {
			return nil, err
		}
		switch more {
		case prompt.Yes:
			continue
		case prompt.No, prompt.Skip:
			return machines, nil
		default:
			return nil, unexpectedAnswer(more)
		}
	}
}

func askMachine(p prompt.Prompter) (types.Machine, error) {
	var m types.Machine
	var err error
	if m.URL, err = p.AskValue(MsgNetrcURL, ""); err != nil {
		return m, err
	}
	if m.Username, err = p.AskValue(MsgNetrcUsername, ""); err != nil {
		return m, err
	}
	if m.Token, err = p.AskValue(MsgNetrcToken, ""); err != nil {
		return m, err
	}
	return m, nil
}
