package types

import (
	"fmt"

	"github.com/arthur-debert/chezconf/pkg/document"
)

// Placeholder proxy values written when the proxy is disabled.
const (
	ExampleHTTPProxy  = "http://proxy.example.com:8080"
	ExampleHTTPSProxy = "https://proxy.example.com:8080"
	ExampleNoProxy    = "example.com"
)

// Machine is a netrc credential entry stored under data.netrc.machines.
type Machine struct {
	URL      string
	Username string
	Token    string
}

// Table converts the machine to a document table with keys url, username, token.
func (m Machine) Table() *document.Table {
	t := document.New()
	t.Set("url", m.URL)
	t.Set("username", m.Username)
	t.Set("token", m.Token)
	return t
}

// MachineFromTable reads a machine from a document table. Missing keys stay empty.
func MachineFromTable(t *document.Table) Machine {
	return Machine{
		URL:      stringValue(t, "url"),
		Username: stringValue(t, "username"),
		Token:    stringValue(t, "token"),
	}
}

// Proxy holds the settings stored under data.machine.proxy.
type Proxy struct {
	Enabled bool
	HTTP    string
	HTTPS   string
	NoProxy string
}

// DisabledProxy returns the reset-to-example settings used when the proxy is turned off.
func DisabledProxy() Proxy {
	return Proxy{
		Enabled: false,
		HTTP:    ExampleHTTPProxy,
		HTTPS:   ExampleHTTPSProxy,
		NoProxy: ExampleNoProxy,
	}
}

// Table converts the proxy settings to a document table.
func (p Proxy) Table() *document.Table {
	t := document.New()
	t.Set("enabled", p.Enabled)
	t.Set("http", p.HTTP)
	t.Set("https", p.HTTPS)
	t.Set("noProxy", p.NoProxy)
	return t
}

// ProxyFromTable reads proxy settings from a document table.
// A nil table yields the zero value.
func ProxyFromTable(t *document.Table) Proxy {
	enabled, _ := value(t, "enabled").(bool)
	return Proxy{
		Enabled: enabled,
		HTTP:    stringValue(t, "http"),
		HTTPS:   stringValue(t, "https"),
		NoProxy: stringValue(t, "noProxy"),
	}
}

func value(t *document.Table, key string) any {
	v, _ := t.Get(key)
	return v
}

func stringValue(t *document.Table, key string) string {
	switch v := value(t, key).(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
