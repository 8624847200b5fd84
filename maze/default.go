package maze

// DefaultLayout is the built-in 9×9 maze: Start at (0,4), End at (8,7).
var DefaultLayout = []string{
	"####O####",
	"#       #",
	"# ## ## #",
	"# #   # #",
	"# # # # #",
	"# # # # #",
	"# # # ###",
	"#       #",
	"#######X#",
}

// Default returns a Grid built from DefaultLayout.
func Default() *Grid {
	g, err := Parse(DefaultLayout)
	if err != nil {
		panic("maze: invalid DefaultLayout: " + err.Error())
	}
	return g
}
