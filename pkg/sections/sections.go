// Package sections implements the editors that update one subsection of the
// chezmoi config each.
//
// An editor receives the current document and returns an updated copy; the
// input is never modified. Answering skip to an editor's first question
// returns the input document as is.
package sections

import (
	"fmt"
	"io"

	"github.com/arthur-debert/chezconf/pkg/document"
	"github.com/arthur-debert/chezconf/pkg/errors"
	"github.com/arthur-debert/chezconf/pkg/ui/display"
	"github.com/arthur-debert/chezconf/pkg/ui/prompt"
)

// Editor edits one section of the document.
type Editor interface {
	Name() string
	Edit(doc *document.Table, p prompt.Prompter) (*document.Table, error)
}

// Defaults returns the editors in the order a session runs them.
func Defaults(out io.Writer, renderer *display.Renderer) []Editor {
	return []Editor{
		NewNetrc(out, renderer),
		NewProxy(out, renderer),
	}
}

type base struct {
	out      io.Writer
	renderer *display.Renderer
}

// showCurrent prints a non-empty section under heading.
func (b base) showCurrent(heading string, section *document.Table) {
	if section.Len() == 0 {
		return
	}
	fmt.Fprintln(b.out, b.renderer.Heading(heading))
	fmt.Fprintln(b.out, b.renderer.Render(section))
}

func unexpectedAnswer(a prompt.Answer) error {
	return errors.Newf(errors.ErrInternal, "unexpected answer %q", a.String())
}
