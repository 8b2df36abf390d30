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

// Proxy edits data.machine.proxy.
type Proxy struct {
	base
}

// NewProxy creates the proxy settings editor
func NewProxy(out io.Writer, renderer *display.Renderer) *Proxy {
	return &Proxy{base{out: out, renderer: renderer}}
}

// Name implements Editor
func (e *Proxy) Name() string {
	return "proxy"
}

// Edit implements Editor. Yes asks for each URL using the stored values as
// defaults; No disables the proxy and resets the URLs to example values.
func (e *Proxy) Edit(doc *document.Table, p prompt.Prompter) (*document.Table, error) {
	logger := logging.GetLogger("sections.proxy")

	existing := doc.Subtable("data", "machine", "proxy")
	e.showCurrent(MsgProxyCurrent, existing)
	current := types.ProxyFromTable(existing)

	answer, err := p.AskTristate(MsgProxyEnable)
	if err != nil {
		return nil, err
	}

	var proxy types.Proxy
	switch answer {
	case prompt.Skip:
		fmt.Fprintln(e.out, MsgProxySkipped)
		logger.Info().Msg("Proxy section skipped")
		return doc, nil
	case prompt.Yes:
		proxy, err = askProxy(p, current)
		if err != nil {
			return nil, err
		}
	case prompt.No:
		proxy = types.DisabledProxy()
	default:
		return nil, unexpectedAnswer(answer)
	}

	out := doc.Clone()
	machine, err := out.EnsureTable("data", "machine")
	if err != nil {
		return nil, err
	}
	machine.Set("proxy", proxy.Table())

	logger.Info().Bool("enabled", proxy.Enabled).Msg("Proxy settings replaced")
	return out, nil
}

func askProxy(p prompt.Prompter, current types.Proxy) (types.Proxy, error) {
	proxy := types.Proxy{Enabled: true}
	var err error
	if proxy.HTTP, err = p.AskValue(MsgProxyHTTP, current.HTTP); err != nil {
		return proxy, err
	}
	if proxy.HTTPS, err = p.AskValue(MsgProxyHTTPS, current.HTTPS); err != nil {
		return proxy, err
	}
	if proxy.NoProxy, err = p.AskValue(MsgProxyNo, current.NoProxy); err != nil {
		return proxy, err
	}
	return proxy, nil
}
