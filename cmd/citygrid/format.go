package main

import (
	"fmt"
	"io"

	"github.com/voidshard/citygrid"
)

var kindNames = []struct {
	kind citygrid.TileKind
	name string
}{
	{citygrid.TileBuilding, "buildings"},
	{citygrid.TilePark, "parks"},
	{citygrid.TileLight, "lights"},
	{citygrid.TileRoad, "roads"},
	{citygrid.TileUnknown, "unknown"},
}

func printSummary(w io.Writer, c *citygrid.City) {
	l := c.Layout()
	g := c.Grid()

	fmt.Fprintf(w, "CITY (%s)\n", c.Variant().Type())
	fmt.Fprintf(w, "  blocks:     %d x %d (size %d)\n", l.BlocksX, l.BlocksY, l.BlockSize)
	fmt.Fprintf(w, "  grid:       %d rows x %d cols\n", g.Rows(), g.Cols())

	counts := g.Counts()
	fmt.Fprintln(w, "  tiles:")
	for _, k := range kindNames {
		if counts[k.kind] == 0 && k.kind == citygrid.TileUnknown {
			continue
		}
		fmt.Fprintf(w, "    %-10s %d\n", k.name, counts[k.kind])
	}

	fmt.Fprintf(w, "  entry points (%d):\n", c.EntryPointCount())
	if c.EntryPointCount() == 0 {
		fmt.Fprintln(w, "    none (single block along both axes)")
	}
	for _, p := range c.EntryPoints() {
		suffix := ""
		if !g.Contains(p) {
			suffix = " (outside grid)"
		}
		fmt.Fprintf(w, "    %v%s\n", p, suffix)
	}
	fmt.Fprintf(w, "  building targets: %d\n", c.BuildingTargetCount())
}
