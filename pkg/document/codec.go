package document

import (
	"bytes"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/chezconf/pkg/errors"
)

// keySep separates path segments in table instance ids. Array-of-tables
// elements add a "#<index>" segment.
const keySep = "\x1f"

var bareKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Parse decodes TOML data into an ordered table.
func Parse(data []byte) (*Table, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid TOML document")
	}

	order := newKeyOrder()
	for _, key := range md.Keys() {
		order.visit(key, md.Type(key...) == "ArrayHash")
	}

	if raw == nil {
		return New(), nil
	}
	return order.build(raw, ""), nil
}

// keyOrder records, for every table instance, the order in which its keys
// were defined.
type keyOrder struct {
	children map[string][]string
	seen     map[string]map[string]bool
	arrays   map[string]int
}

func newKeyOrder() *keyOrder {
	return &keyOrder{
		children: make(map[string][]string),
		seen:     make(map[string]map[string]bool),
		arrays:   make(map[string]int),
	}
}

// instance resolves path to a table instance id. Arrays of tables resolve to
// their most recently opened element, matching TOML header semantics.
func (o *keyOrder) instance(path []string) string {
	id := ""
	for _, part := range path {
		id += keySep + part
		if idx, ok := o.arrays[id]; ok {
			id += keySep + "#" + strconv.Itoa(idx)
		}
	}
	return id
}

func (o *keyOrder) add(parent, key string) {
	if o.seen[parent] == nil {
		o.seen[parent] = make(map[string]bool)
	}
	if o.seen[parent][key] {
		return
	}
	o.seen[parent][key] = true
	o.children[parent] = append(o.children[parent], key)
}

func (o *keyOrder) visit(key toml.Key, arrayTable bool) {
	for i := range key {
		o.add(o.instance(key[:i]), key[i])
	}
	if !arrayTable || len(key) == 0 {
		return
	}
	arrayID := o.instance(key[:len(key)-1]) + keySep + key[len(key)-1]
	if idx, ok := o.arrays[arrayID]; ok {
		o.arrays[arrayID] = idx + 1
	} else {
		o.arrays[arrayID] = 0
	}
}

func (o *keyOrder) build(raw map[string]any, id string) *Table {
	t := New()
	for _, k := range o.children[id] {
		if v, ok := raw[k]; ok {
			t.Set(k, o.value(v, id+keySep+k))
		}
	}

	// Anything the metadata did not report keeps a stable, sorted position.
	var rest []string
	for k := range raw {
		if _, ok := t.values[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		t.Set(k, o.value(raw[k], id+keySep+k))
	}
	return t
}

func (o *keyOrder) value(v any, id string) any {
	switch v := v.(type) {
	case map[string]any:
		return o.build(v, id)
	case []map[string]any:
		out := make([]*Table, len(v))
		for i, m := range v {
			out[i] = o.build(m, id+keySep+"#"+strconv.Itoa(i))
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = o.value(e, id+keySep+"#"+strconv.Itoa(i))
		}
		return out
	case time.Time:
		return localValue(v)
	default:
		return v
	}
}

// BurntSushi/toml marks local dates and times with these zone names.
const (
	zoneLocalDate     = "date-local"
	zoneLocalTime     = "time-local"
	zoneLocalDateTime = "datetime-local"
)

// localValue turns a decoded local date, time or datetime into the matching
// go-toml type so it is written back without an offset.
func localValue(t time.Time) any {
	switch t.Location().String() {
	case zoneLocalDate:
		return localDate(t)
	case zoneLocalTime:
		return localTime(t)
	case zoneLocalDateTime:
		return gotoml.LocalDateTime{LocalDate: localDate(t), LocalTime: localTime(t)}
	default:
		return t
	}
}

func localDate(t time.Time) gotoml.LocalDate {
	return gotoml.LocalDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func localTime(t time.Time) gotoml.LocalTime {
	return gotoml.LocalTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}
}

// Marshal encodes the table as TOML, preserving key order. Within each table
// plain key/values come first, followed by sub-tables and arrays of tables.
func Marshal(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeTable(&buf, t, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isTableValue(v any) bool {
	switch v := v.(type) {
	case *Table:
		return true
	case []*Table:
		return len(v) > 0
	default:
		return false
	}
}

func encodeTable(buf *bytes.Buffer, t *Table, path []string) error {
	var nested []string
	for _, k := range t.keys {
		v := t.values[k]
		if isTableValue(v) {
			nested = append(nested, k)
			continue
		}
		line, err := encodeKeyValue(k, v)
		if err != nil {
			return err
		}
		buf.WriteString(line)
	}

	for _, k := range nested {
		childPath := append(path[:len(path):len(path)], k)
		switch v := t.values[k].(type) {
		case *Table:
			if v.Len() == 0 || hasPlainValues(v) {
				writeHeader(buf, "["+headerKey(childPath)+"]")
			}
			if err := encodeTable(buf, v, childPath); err != nil {
				return err
			}
		case []*Table:
			for _, elem := range v {
				writeHeader(buf, "[["+headerKey(childPath)+"]]")
				if err := encodeTable(buf, elem, childPath); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func hasPlainValues(t *Table) bool {
	for _, k := range t.keys {
		if !isTableValue(t.values[k]) {
			return true
		}
	}
	return false
}

func writeHeader(buf *bytes.Buffer, header string) {
	if buf.Len() > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString(header)
	buf.WriteString("\n")
}

// encodeKeyValue renders a single `key = value` line. Nested tables inside
// inline arrays are emitted as inline tables.
func encodeKeyValue(key string, value any) (string, error) {
	var buf bytes.Buffer
	enc := gotoml.NewEncoder(&buf)
	enc.SetTablesInline(true)
	if err := enc.Encode(map[string]any{key: plain(value)}); err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "cannot encode key %q", key).
			WithDetail("key", key)
	}
	return buf.String(), nil
}

func headerKey(path []string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = quoteKey(p)
	}
	return strings.Join(parts, ".")
}

func quoteKey(key string) string {
	if bareKey.MatchString(key) {
		return key
	}
	line, err := encodeKeyValue(key, true)
	if err != nil {
		return strconv.Quote(key)
	}
	return strings.TrimSuffix(line, " = true\n")
}
