package testcases

var blockCases = []TestCase{
	{
		Name:       "lower_eighths",
		Lines:      []string{"▁▂▃▄▅▆▇█"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
	{
		Name:       "left_eighths",
		Lines:      []string{"█▉▊▋▌▍▎▏"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
	{
		Name:       "halves",
		Lines:      []string{"▀▐▔▕", "▄▌▁▏"},
		CellWidth:  squareW,
		CellHeight: squareH,
	},
	{
		Name:       "quadrants",
		Lines:      []string{"▖▗▘▝", "▙▛▜▟", "▚▞"},
		CellWidth:  squareW,
		CellHeight: squareH,
	},
}

// reservedCases contains characters which are block glyphs but have no
// rectangles.  These are left to the font.
var reservedCases = []TestCase{
	{
		Name:       "arcs_and_diagonals",
		Lines:      []string{"╭─╮", "╰─╯", "╱╲╳"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
	{
		Name:       "shades",
		Lines:      []string{"░▒▓█"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
}

// mixedCases combine block glyphs with characters the font has to draw.
var mixedCases = []TestCase{
	{
		Name: "table",
		Lines: []string{
			"┌────┬───┐",
			"│ ab │ c │",
			"├────┼───┤",
			"│ de │ f │",
			"└────┴───┘",
		},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
	{
		Name:       "progress",
		Lines:      []string{"[█████▌    ] 55%"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
}
