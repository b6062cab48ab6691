// Package layoutfile reads TOML descriptions of a window and its tree of
// anchored controls and builds them.
//
// A file has one [window] table and any number of [[control]] entries.
// Children nest as [[control.control]]:
//
//	[window]
//	title = "demo"
//	width = 400
//	height = 300
//	background = "#202428"
//
//	[[control]]
//	name = "toolbar"
//	preset = "top_wide"
//	offset = [0, 0, 0, 32]
//	fill = "#3050a0"
//	text = "Toolbar"
//
//	  [[control.control]]
//	  name = "close"
//	  preset = "top_right"
//	  offset = [-28, 4, -4, 28]
//	  fill = "red"
package layoutfile
