package chezconf

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Interactively configure chezmoi's netrc and proxy data"
	MsgShowShort       = "Print the current chezmoi configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat = "chezconf version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrLoadSettings = "failed to load settings: %w"
	MsgErrUnknownFmt   = "unknown format %q (expected toml, yaml, json or tree)"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Path to the chezmoi config file"
	MsgFlagTemplate = "Path to the chezmoi config template"
	MsgFlagNoColor  = "Disable colored output"
	MsgFlagFormat   = "Output format: toml, yaml, json or tree"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimRight(msgShowExampleRaw, "\n")
)
