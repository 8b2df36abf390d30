package sections_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/chezconf/pkg/document"
	"github.com/arthur-debert/chezconf/pkg/errors"
	"github.com/arthur-debert/chezconf/pkg/sections"
	"github.com/arthur-debert/chezconf/pkg/types"
	"github.com/arthur-debert/chezconf/pkg/ui/display"
	"github.com/arthur-debert/chezconf/pkg/ui/prompt"
)

const existingConfig = `
[data]
name = "Jane"

[data.netrc]
comment = "kept"

[[data.netrc.machines]]
url = "a"

[data.machine]
os = "linux"

[data.machine.proxy]
enabled = true
http = "x"
https = "y"
noProxy = "z"

[git]
autoCommit = true
`

func parse(t *testing.T, src string) *document.Table {
	t.Helper()
	doc, err := document.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func edit(t *testing.T, editor func(out *bytes.Buffer) sections.Editor, doc *document.Table, input string) (*document.Table, string, error) {
	t.Helper()
	var out bytes.Buffer
	p := prompt.NewConsole(strings.NewReader(input), &out)
	result, err := editor(&out).Edit(doc, p)
	return result, out.String(), err
}

func netrcEditor(out *bytes.Buffer) sections.Editor {
	return sections.NewNetrc(out, display.NewRenderer(false))
}

func proxyEditor(out *bytes.Buffer) sections.Editor {
	return sections.NewProxy(out, display.NewRenderer(false))
}

func machines(t *testing.T, doc *document.Table) []types.Machine {
	t.Helper()
	v, ok := doc.Lookup("data", "netrc", "machines")
	require.True(t, ok, "data.netrc.machines should exist")
	tables, ok := v.([]*document.Table)
	require.True(t, ok, "machines should be an array of tables, got %T", v)
	out := make([]types.Machine, len(tables))
	for i, table := range tables {
		out[i] = types.MachineFromTable(table)
	}
	return out
}

func TestNetrcYesReplacesMachines(t *testing.T) {
	doc := parse(t, existingConfig)

	result, _, err := edit(t, netrcEditor, doc, "y\nb\nu\nt\nskip\n")
	require.NoError(t, err)

	assert.Equal(t, []types.Machine{{URL: "b", Username: "u", Token: "t"}}, machines(t, result),
		"old entries are replaced, not merged")
}

func TestNetrcNoAlsoCollects(t *testing.T) {
	// Declining still enters the collection loop. This is the tool's current
	// behavior and is kept until the intended semantics are settled.
	doc := parse(t, existingConfig)

	result, _, err := edit(t, netrcEditor, doc, "n\nb\nu\nt\nn\n")
	require.NoError(t, err)

	assert.Equal(t, []types.Machine{{URL: "b", Username: "u", Token: "t"}}, machines(t, result))
}

func TestNetrcAlwaysCollectsAtLeastOne(t *testing.T) {
	doc := document.New()

	result, out, err := edit(t, netrcEditor, doc, "y\n\n\n\ns\n")
	require.NoError(t, err)

	got := machines(t, result)
	require.Len(t, got, 1, "a yes always collects one entry before asking for another")
	assert.Equal(t, types.Machine{}, got[0])
	assert.Less(t, strings.Index(out, sections.MsgNetrcURL), strings.Index(out, sections.MsgNetrcAnother))
}

func TestNetrcMultipleMachinesInOrder(t *testing.T) {
	doc := document.New()

	result, _, err := edit(t, netrcEditor, doc, "yes\ngithub.com\njane\nt1\ny\ngitlab.com\njd\nt2\nnope\n")
	require.NoError(t, err)

	assert.Equal(t, []types.Machine{
		{URL: "github.com", Username: "jane", Token: "t1"},
		{URL: "gitlab.com", Username: "jd", Token: "t2"},
	}, machines(t, result))
}

func TestNetrcSkipPreserves(t *testing.T) {
	doc := parse(t, existingConfig)
	before, err := document.Marshal(doc)
	require.NoError(t, err)

	result, out, err := edit(t, netrcEditor, doc, "skip\n")
	require.NoError(t, err)

	after, err := document.Marshal(result)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.Contains(t, out, sections.MsgNetrcSkipped)
}

func TestNetrcKeepsUnrelatedKeys(t *testing.T) {
	doc := parse(t, existingConfig)

	result, _, err := edit(t, netrcEditor, doc, "y\nb\nu\nt\nn\n")
	require.NoError(t, err)

	comment, _ := result.Lookup("data", "netrc", "comment")
	assert.Equal(t, "kept", comment)
	assert.Equal(t, doc.Subtable("git").ToMap(), result.Subtable("git").ToMap())
	assert.Equal(t, doc.Subtable("data", "machine").ToMap(), result.Subtable("data", "machine").ToMap())
	assert.Equal(t, doc.Subtable("data").Keys(), result.Subtable("data").Keys())
}

func TestNetrcDoesNotMutateInput(t *testing.T) {
	doc := parse(t, existingConfig)
	before := doc.ToMap()

	_, _, err := edit(t, netrcEditor, doc, "y\nb\nu\nt\nn\n")
	require.NoError(t, err)

	assert.Equal(t, before, doc.ToMap())
}

func TestNetrcShowsCurrentConfiguration(t *testing.T) {
	doc := parse(t, existingConfig)

	_, out, err := edit(t, netrcEditor, doc, "s\n")
	require.NoError(t, err)

	assert.Contains(t, out, sections.MsgNetrcCurrent)
	assert.Contains(t, out, "🔢 Entry 1:")

	_, out, err = edit(t, netrcEditor, document.New(), "s\n")
	require.NoError(t, err)
	assert.NotContains(t, out, sections.MsgNetrcCurrent)
}

func TestNetrcInputErrorPropagates(t *testing.T) {
	_, _, err := edit(t, netrcEditor, document.New(), "y\nonly-url\n")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInput))
}

func TestProxyNoResetsToExamples(t *testing.T) {
	doc := parse(t, existingConfig)

	result, _, err := edit(t, proxyEditor, doc, "n\n")
	require.NoError(t, err)

	assert.Equal(t, types.Proxy{
		Enabled: false,
		HTTP:    "http://proxy.example.com:8080",
		HTTPS:   "https://proxy.example.com:8080",
		NoProxy: "example.com",
	}, types.ProxyFromTable(result.Subtable("data", "machine", "proxy")))
}

func TestProxySkipPreserves(t *testing.T) {
	doc := parse(t, existingConfig)
	before, err := document.Marshal(doc.Subtable("data", "machine", "proxy"))
	require.NoError(t, err)

	result, out, err := edit(t, proxyEditor, doc, "pass\n")
	require.NoError(t, err)

	after, err := document.Marshal(result.Subtable("data", "machine", "proxy"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.Contains(t, out, sections.MsgProxySkipped)
}

func TestProxyYesUsesStoredDefaults(t *testing.T) {
	doc := parse(t, existingConfig)

	result, out, err := edit(t, proxyEditor, doc, "y\n\nhttps://new:443\n\n")
	require.NoError(t, err)

	proxy := result.Subtable("data", "machine", "proxy")
	assert.Equal(t, []string{"enabled", "http", "https", "noProxy"}, proxy.Keys())
	assert.Equal(t, types.Proxy{Enabled: true, HTTP: "x", HTTPS: "https://new:443", NoProxy: "z"}, types.ProxyFromTable(proxy))
	assert.Contains(t, out, sections.MsgProxyHTTP+" [x]: ")
}

func TestProxyYesWithoutExistingSection(t *testing.T) {
	doc := parse(t, "[git]\nautoCommit = true\n")

	result, out, err := edit(t, proxyEditor, doc, "sure\nhttp://p\n\nlocalhost\n")
	require.NoError(t, err)

	assert.Equal(t, types.Proxy{Enabled: true, HTTP: "http://p", NoProxy: "localhost"},
		types.ProxyFromTable(result.Subtable("data", "machine", "proxy")))
	assert.Equal(t, []string{"git", "data"}, result.Keys())
	assert.NotContains(t, out, sections.MsgProxyCurrent)
}

func TestProxyKeepsSiblingsAndInput(t *testing.T) {
	doc := parse(t, existingConfig)
	before := doc.ToMap()

	result, _, err := edit(t, proxyEditor, doc, "n\n")
	require.NoError(t, err)

	osName, _ := result.Lookup("data", "machine", "os")
	assert.Equal(t, "linux", osName)
	assert.Equal(t, []string{"os", "proxy"}, result.Subtable("data", "machine").Keys())
	assert.Equal(t, before, doc.ToMap(), "input document must not change")
}

func TestProxyInvalidMachineSection(t *testing.T) {
	doc := parse(t, "[data]\nmachine = \"laptop\"\n")

	_, _, err := edit(t, proxyEditor, doc, "n\n")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestDefaultsOrder(t *testing.T) {
	editors := sections.Defaults(&bytes.Buffer{}, display.NewRenderer(false))
	require.Len(t, editors, 2)
	assert.Equal(t, "netrc", editors[0].Name())
	assert.Equal(t, "proxy", editors[1].Name())
}
