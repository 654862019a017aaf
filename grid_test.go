package citygrid

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
)

func TestGridCounts(t *testing.T) {
	c, err := NewCity(Default, 2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := map[TileKind]int{
		TileBuilding: 36,
		TilePark:     24,
		TileLight:    4,
		TileRoad:     36,
	}
	got := c.Grid().Counts()
	for k, n := range want {
		if got[k] != n {
			t.Errorf("kind %d: %d tiles, want %d", k, got[k], n)
		}
	}
	if got[TileUnknown] != 0 {
		t.Errorf("%d unknown tiles", got[TileUnknown])
	}
}

func TestGridAt(t *testing.T) {
	c, err := NewCity(Default, 2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	g := c.Grid()

	tile, err := g.At(3, 6)
	if err != nil {
		t.Fatal(err)
	}
	if tile != Light(LightGreen) {
		t.Errorf("(3,6) = %v, want green light", tile)
	}

	tile, err = g.Tile(Pos(6, 0))
	if err != nil {
		t.Fatal(err)
	}
	if tile != Park(ParkFree) {
		t.Errorf("(6,0) = %v, want free park", tile)
	}

	for _, p := range []Position{Pos(10, 0), Pos(0, 10), Pos(-1, 0), Pos(6, 10)} {
		if _, err := g.Tile(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("%v: expected ErrOutOfBounds, got %v", p, err)
		}
		if g.Contains(p) {
			t.Errorf("%v should not be contained", p)
		}
	}
}

func TestGridRow(t *testing.T) {
	c, err := NewCity(Default, 2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	row, err := c.Grid().Row(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(row) != 10 {
		t.Fatalf("row has %d tiles", len(row))
	}
	if row[0] != OneWayRoad(OneWayRight) || row[5] != TwoWayRoad(TwoWayUpRight) {
		t.Errorf("row 5 = %v", row)
	}

	row[0] = Unknown()
	if err := c.Grid().Verify(); err != nil {
		t.Fatal("Row leaked internal storage")
	}

	if _, err := c.Grid().Row(10); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestGridVerify(t *testing.T) {
	g := newGrid(2, 3)
	for i := range g.tiles {
		g.tiles[i] = Building()
	}
	if err := g.Verify(); err != nil {
		t.Fatalf("expected no gap, got %v", err)
	}

	g.tiles[g.index(1, 2)] = Unknown()
	err := g.Verify()
	if !errors.Is(err, ErrClassificationGap) {
		t.Fatalf("expected ErrClassificationGap, got %v", err)
	}
}

func TestGridDrivable(t *testing.T) {
	c, err := NewCity(Default, 2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	g := c.Grid()
	bm := g.Drivable()

	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			tile, _ := g.At(i, j)
			if g.MaskAt(bm, i, j) != tile.Drivable() {
				t.Fatalf("(%d,%d) %v: mask says %v", i, j, tile, g.MaskAt(bm, i, j))
			}
		}
	}

	if !g.MaskAt(bm, 4, 0) || !g.MaskAt(bm, 3, 3) {
		t.Error("lanes & lights should be drivable")
	}
	if g.MaskAt(bm, 0, 0) || g.MaskAt(bm, 0, 3) {
		t.Error("buildings & parks should not be drivable")
	}
	if g.MaskAt(bm, 100, 100) {
		t.Error("out of bounds should not be drivable")
	}
}

func TestGridMask(t *testing.T) {
	c, err := NewCity(Default, 2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	g := c.Grid()

	parks := g.Mask(func(t Tile) bool { return t.Kind == TilePark })
	n := 0
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			if g.MaskAt(parks, i, j) {
				n++
			}
		}
	}
	if n != 24 {
		t.Errorf("park mask has %d bits set, want 24", n)
	}
}

func TestGridJSON(t *testing.T) {
	c, err := NewCity(Default, 1, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(c.Grid())
	if err != nil {
		t.Fatal(err)
	}
	want := `[["building","building"],["building","building"]]`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}
