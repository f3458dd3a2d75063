package testcases

var lineCases = []TestCase{
	{
		Name:       "light_heavy",
		Lines:      []string{"─━│┃"},
		CellWidth:  squareW,
		CellHeight: squareH,
	},
	{
		Name:       "horizontal_run",
		Lines:      []string{"────────", "━━━━━━━━"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
	{
		Name:       "vertical_run",
		Lines:      []string{"│┃", "│┃", "│┃", "│┃"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
	{
		Name:       "dashes",
		Lines:      []string{"┄┅┈┉╌╍", "┆┇┊┋╎╏"},
		CellWidth:  squareW,
		CellHeight: squareH,
	},
}

var cornerCases = []TestCase{
	{
		Name:       "light_box",
		Lines:      []string{"┌──┐", "│  │", "└──┘"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
	{
		Name:       "heavy_box",
		Lines:      []string{"┏━━┓", "┃  ┃", "┗━━┛"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
	{
		Name:       "mixed_corners",
		Lines:      []string{"┍┎┑┒", "┕┖┙┚"},
		CellWidth:  squareW,
		CellHeight: squareH,
	},
}

var junctionCases = []TestCase{
	{
		Name:       "light_grid",
		Lines:      []string{"┌─┬─┐", "├─┼─┤", "└─┴─┘"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
	{
		Name:       "heavy_grid",
		Lines:      []string{"┏━┳━┓", "┣━╋━┫", "┗━┻━┛"},
		CellWidth:  narrowW,
		CellHeight: narrowH,
	},
	{
		Name: "mixed_tees",
		Lines: []string{
			"┝┞┟┠┡┢",
			"┥┦┧┨┩┪",
			"┭┮┯┰┱┲",
			"┵┶┷┸┹┺",
		},
		CellWidth:  squareW,
		CellHeight: squareH,
	},
	{
		Name: "mixed_crosses",
		Lines: []string{
			"┽┾┿╀╁╂",
			"╃╄╅╆╇╈",
			"╉╊",
		},
		CellWidth:  squareW,
		CellHeight: squareH,
	},
}
