// Package document holds the in-memory form of a chezmoi TOML config.
//
// A Table is an ordered mapping: keys keep the order in which they first
// appeared in the source file and new keys are appended. Values are one of
//
//   - *Table for tables and inline tables
//   - []*Table for arrays of tables
//   - []any for inline arrays
//   - string, int64, float64, bool or time.Time for scalars
//   - go-toml's LocalDate, LocalTime and LocalDateTime for local dates and
//     times, so they keep their form on the way back out
//
// Parse decodes TOML with github.com/BurntSushi/toml, whose MetaData reports
// keys in definition order. Marshal writes the tables back in that order and
// lets github.com/pelletier/go-toml/v2 render the individual key/value lines.
//
// Within a table, plain key/values are written before sub-tables, as TOML
// requires for [header] sections. Inline tables and dotted keys come back
// as [header] sections, so a table that mixed them with later scalars keeps
// its content but not its layout.
package document
