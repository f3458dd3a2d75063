package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"lines":     lineCases,
	"corners":   cornerCases,
	"junctions": junctionCases,
	"double":    doubleCases,
	"ends":      endCases,
	"blocks":    blockCases,
	"reserved":  reservedCases,
	"mixed":     mixedCases,
	"ctm":       ctmCases,
}
