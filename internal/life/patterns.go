package life

import "sort"

// Pattern is a named set of live-cell coordinates that can seed a grid.
type Pattern struct {
	Name   string
	Descr  string
	Coords [][2]int
}

var patterns = map[string]Pattern{
	"blinker": {"blinker", "period 2 oscillator", [][2]int{{1, 1}, {2, 1}, {3, 1}}},
	"block":   {"block", "still life", [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}},
	"glider":  {"glider", "diagonal spaceship", [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	"stable": {"stable", "three stable patterns", [][2]int{
		{1, 1}, {1, 2},
		{2, 1}, {2, 2},
		{3, 3},
		{4, 2},
		{4, 3},
		{5, 3},
	}},
}

// LookupPattern returns the built-in pattern registered under name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// SettlePattern clears the grid and places p with its origin at (column, row).
func (g *Grid) SettlePattern(p Pattern, column, row int) {
	g.Clear()
	for _, c := range p.Coords {
		g.Set(column+c[0], row+c[1], true)
	}
}

// PatternNames returns the built-in pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
