// Package config handles chezconf's own settings.
//
// Settings are layered, each source overriding the previous one:
//
//  1. Embedded defaults plus the XDG derived chezmoi paths
//  2. The optional settings file ($XDG_CONFIG_HOME/chezconf/settings.toml)
//  3. CHEZCONF_* environment variables
//  4. Command-line flags
//
// Keys are snake_case in every layer: config_file, template_file and no_color.
// The variable CHEZCONF_CONFIG_FILE therefore maps to config_file.
package config
