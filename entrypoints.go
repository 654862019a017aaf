package citygrid

// defaultEntryPoints returns the border crossings of a Default city:
// top & bottom pairs for each gap between blocks along X, then left & right
// pairs for each gap along Y.
//
// The far side coordinate (unit*count - 4) equals the grid length, so those
// points sit one step outside the last row / column.
func defaultEntryPoints(l Layout) []Position {
	unit := l.unit()

	n := 0
	if l.BlocksX > 1 {
		n += 2 * (l.BlocksX - 1)
	}
	if l.BlocksY > 1 {
		n += 2 * (l.BlocksY - 1)
	}
	out := make([]Position, 0, n)

	for i := 1; i < l.BlocksX; i++ {
		out = append(out,
			Pos(unit*i-1, 0),
			Pos(unit*i-1, unit*l.BlocksY-4),
		)
	}
	for i := 1; i < l.BlocksY; i++ {
		out = append(out,
			Pos(0, unit*i-1),
			Pos(unit*l.BlocksX-4, unit*i-1),
		)
	}

	return out
}
