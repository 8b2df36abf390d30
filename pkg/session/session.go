// Package session runs the load → edit → save pipeline over the chezmoi config.
package session

import (
	"fmt"
	"io"

	"github.com/arthur-debert/chezconf/pkg/document"
	"github.com/arthur-debert/chezconf/pkg/logging"
	"github.com/arthur-debert/chezconf/pkg/sections"
	"github.com/arthur-debert/chezconf/pkg/store"
	"github.com/arthur-debert/chezconf/pkg/ui/prompt"
)

// Session is one interactive configuration run.
type Session struct {
	store    *store.Store
	prompter prompt.Prompter
	editors  []sections.Editor
	out      io.Writer
}

// New creates a session that runs editors in order against the store's document.
func New(st *store.Store, p prompt.Prompter, editors []sections.Editor, out io.Writer) *Session {
	return &Session{
		store:    st,
		prompter: p,
		editors:  editors,
		out:      out,
	}
}

// Run loads the config, passes it through every editor and saves the result.
// Any error aborts the run before the final save.
func (s *Session) Run() error {
	logger := logging.GetLogger("session")
	done := logging.LogOperationStart(logger, "configure")
	defer done()

	fmt.Fprint(s.out, MsgStart+"\n")

	doc, source, err := s.store.Load()
	if err != nil {
		return err
	}
	s.reportSource(source)

	doc, err = s.edit(doc)
	if err != nil {
		return err
	}

	if err := s.store.Save(doc); err != nil {
		return err
	}
	fmt.Fprintf(s.out, MsgSavedFormat, s.store.ConfigPath())
	fmt.Fprintln(s.out, MsgDone)
	return nil
}

func (s *Session) edit(doc *document.Table) (*document.Table, error) {
	logger := logging.GetLogger("session")
	for _, editor := range s.editors {
		logger.Debug().Str("section", editor.Name()).Msg("Editing section")
		next, err := editor.Edit(doc, s.prompter)
		if err != nil {
			return nil, err
		}
		doc = next
	}
	return doc, nil
}

func (s *Session) reportSource(source store.Source) {
	switch source {
	case store.SourceConfig:
		fmt.Fprintln(s.out, MsgLoadedExisting)
	case store.SourceTemplate:
		fmt.Fprintln(s.out, MsgConfigMissing)
		fmt.Fprintln(s.out, MsgTemplateCopied)
	case store.SourceEmpty:
		fmt.Fprintln(s.out, MsgConfigMissing)
		fmt.Fprintln(s.out, MsgStartEmpty)
	}
}
