package testcases

var doubleCases = []TestCase{
	{
		Name:       "double_grid",
		Lines:      []string{"╔═╦═╗", "║ ║ ║", "╠═╬═╣", "║ ║ ║", "╚═╩═╝"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
	{
		Name:       "single_double",
		Lines:      []string{"╒═╤═╕", "│ │ │", "╞═╪═╡", "╘═╧═╛"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
	{
		Name:       "double_single",
		Lines:      []string{"╓─╥─╖", "║ ║ ║", "╟─╫─╢", "╙─╨─╜"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
}

var endCases = []TestCase{
	{
		Name:       "half_lines",
		Lines:      []string{"╴╵╶╷", "╸╹╺╻", "╼╽╾╿"},
		CellWidth:  squareW,
		CellHeight: squareH,
	},
	{
		Name:       "capped_line",
		Lines:      []string{"╶──╴", "╺━━╸"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
}
