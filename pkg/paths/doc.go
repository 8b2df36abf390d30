// Package paths provides the well-known file locations used by chezconf.
//
// chezmoi keeps its rendered configuration under the XDG config directory and
// its source state, including the config template, under the XDG data
// directory:
//
//   - Config:   $XDG_CONFIG_HOME/chezmoi/chezmoi.toml
//   - Template: $XDG_DATA_HOME/chezmoi/chezmoi.toml
//
// chezconf's own optional settings live in $XDG_CONFIG_HOME/chezconf/settings.toml.
// Every location can be overridden through pkg/config; this package only
// supplies the defaults and home expansion.
package paths
