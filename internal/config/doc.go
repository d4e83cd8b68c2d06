// Package config loads editor settings from a TOML file.
//
// Settings are layered: built-in defaults, then the config file (if it
// exists), then environment variables. The file format is:
//
//	[log]
//	level = "info"            # debug, info, warn, error
//	file  = "/tmp/p4edit.log" # empty logs nowhere in interactive mode
//
//	[editor]
//	tab_width   = 4
//	show_status = true
//
//	[theme]
//	status_fg = "#ebdbb2"
//	status_bg = "#3c3836"
//
//	[keys]
//	"Ctrl+A" = "row_start"
//	"Ctrl+E" = "row_end"
//
// Environment overrides: P4EDIT_LOG_LEVEL, P4EDIT_LOG_FILE, P4EDIT_TAB_WIDTH.
package config
