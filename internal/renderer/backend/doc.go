// Package backend runs a buffer interactively on a terminal.
//
// Terminal draws the rows of the buffer, a status line with the cursor
// coordinates and places the terminal cursor at the buffer cursor. Key
// presses are resolved through a Keymap into engine commands. Any
// tcell.Screen can be used, so tests drive it with a simulation screen.
package backend
