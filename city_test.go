package citygrid

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

// smallCityText is the 2x2 city of 3x3 blocks, drawn with Tile.Glyph
const smallCityText = `###.↓↑.###
###.↓↑.###
###.↓↑.###
...G↓↑G...
←←←←↙↖←←←←
→→→→↘↗→→→→
...G↓↑G...
###.↓↑.###
###.↓↑.###
###.↓↑.###
`

func TestNewSmallCity(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if c.Grid().Rows() != 10 || c.Grid().Cols() != 10 {
		t.Fatalf("grid is %dx%d, want 10x10", c.Grid().Rows(), c.Grid().Cols())
	}

	want := []Position{Pos(6, 0), Pos(6, 10), Pos(0, 6), Pos(10, 6)}
	got := c.EntryPoints()
	if len(got) != len(want) {
		t.Fatalf("entry points = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry points = %v, want %v", got, want)
		}
	}

	if c.BuildingTargetCount() != 0 {
		t.Errorf("building targets = %v, want none", c.BuildingTargets())
	}
	if c.Layout() != (Layout{BlocksX: 2, BlocksY: 2, BlockSize: 3}) {
		t.Errorf("layout = %+v", c.Layout())
	}
	if c.Variant() != Default {
		t.Errorf("variant = %v, want default", c.Variant().Type())
	}

	if text := c.Map().Text(); text != smallCityText {
		t.Errorf("map =\n%s\nwant\n%s", text, smallCityText)
	}
}

func TestGridDimensions(t *testing.T) {
	for bs := 1; bs <= 5; bs++ {
		for bx := 1; bx <= 5; bx++ {
			for by := 1; by <= 5; by++ {
				c, err := NewCity(Default, bx, by, bs)
				if err != nil {
					t.Fatal(err)
				}
				rows := (bs+4)*bx - 4
				cols := (bs+4)*by - 4
				if c.Grid().Rows() != rows || c.Grid().Cols() != cols {
					t.Fatalf("blocks %dx%d size %d: grid %dx%d, want %dx%d", bx, by, bs, c.Grid().Rows(), c.Grid().Cols(), rows, cols)
				}
			}
		}
	}
}

func TestEntryPointCount(t *testing.T) {
	for bx := 1; bx <= 6; bx++ {
		for by := 1; by <= 6; by++ {
			c, err := NewCity(Default, bx, by, 2)
			if err != nil {
				t.Fatal(err)
			}
			want := 2*(bx-1) + 2*(by-1)
			if c.EntryPointCount() != want {
				t.Errorf("blocks %dx%d: %d entry points, want %d", bx, by, c.EntryPointCount(), want)
			}
		}
	}
}

func TestEntryPointOrder(t *testing.T) {
	c, err := NewCity(Default, 3, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	want := []Position{
		Pos(5, 0), Pos(5, 8),
		Pos(11, 0), Pos(11, 8),
		Pos(0, 5), Pos(14, 5),
	}
	got := c.EntryPoints()
	if len(got) != len(want) {
		t.Fatalf("entry points = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry points = %v, want %v", got, want)
		}
	}
}

func TestSingleBlockCityHasNoEntryPoints(t *testing.T) {
	c, err := NewCity(Default, 1, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if c.EntryPointCount() != 0 {
		t.Fatalf("entry points = %v, want none", c.EntryPoints())
	}
	if c.Grid().Rows() != 3 || c.Grid().Cols() != 3 {
		t.Fatalf("grid is %dx%d, want 3x3", c.Grid().Rows(), c.Grid().Cols())
	}
	if c.Map().Text() != "###\n###\n###\n" {
		t.Fatalf("expected a single building block, got\n%s", c.Map().Text())
	}
}

func TestEntryPointsAreCopies(t *testing.T) {
	c, err := NewCity(Default, 2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	eps := c.EntryPoints()
	eps[0] = Pos(99, 99)
	if c.EntryPoints()[0] == Pos(99, 99) {
		t.Fatal("EntryPoints leaked internal slice")
	}
}

func TestBuildingTargetsAlwaysEmpty(t *testing.T) {
	for _, v := range []Variant{Default, Bordered} {
		targets, err := v.BuildingTargets(Layout{BlocksX: 4, BlocksY: 3, BlockSize: 5})
		if err != nil {
			t.Fatalf("%s: %v", v.Type(), err)
		}
		if len(targets) != 0 {
			t.Errorf("%s: building targets = %v, want none", v.Type(), targets)
		}
	}

	if _, err := Line.BuildingTargets(Layout{BlocksX: 1, BlocksY: 1, BlockSize: 1}); !errors.Is(err, ErrUnsupportedVariant) {
		t.Errorf("line: expected ErrUnsupportedVariant, got %v", err)
	}
}

func TestNewBordered(t *testing.T) {
	n, err := Bordered.Length(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if n != 16 {
		t.Errorf("bordered length = %d, want 16", n)
	}

	eps, err := Bordered.EntryPoints(Layout{BlocksX: 2, BlocksY: 2, BlockSize: 3})
	if err != nil || len(eps) != 0 {
		t.Errorf("bordered entry points = %v, %v; want none", eps, err)
	}

	c, err := NewCity(Bordered, 2, 2, 3)
	if !errors.Is(err, ErrUnsupportedVariant) {
		t.Fatalf("expected ErrUnsupportedVariant, got %v", err)
	}
	if c != nil {
		t.Fatal("expected no city")
	}
}

func TestNewLine(t *testing.T) {
	if _, err := Line.Length(2, 3); !errors.Is(err, ErrUnsupportedVariant) {
		t.Errorf("length: expected ErrUnsupportedVariant, got %v", err)
	}
	if _, err := Line.EntryPoints(Layout{BlocksX: 2, BlocksY: 2, BlockSize: 3}); !errors.Is(err, ErrUnsupportedVariant) {
		t.Errorf("entry points: expected ErrUnsupportedVariant, got %v", err)
	}

	cfg := DefaultConfig()
	cfg.Variant = VariantLine
	if _, err := New(cfg); !errors.Is(err, ErrUnsupportedVariant) {
		t.Fatalf("expected ErrUnsupportedVariant, got %v", err)
	}
}

func TestNewInvalidLayout(t *testing.T) {
	cases := [][3]int{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
		{-2, 2, 2},
	}
	for _, tc := range cases {
		_, err := NewCity(Default, tc[0], tc[1], tc[2])
		if !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("NewCity(%v): expected ErrInvalidLayout, got %v", tc, err)
		}
	}
}

func TestNewOversizedLayout(t *testing.T) {
	cases := [][3]int{
		{math.MaxInt, math.MaxInt, 1},
		{1, 1, math.MaxInt},
		{1 << 20, 1 << 20, 1},
		{MaxTiles, 1, 1},
		{1, 1, 4094},
	}
	for _, tc := range cases {
		_, err := NewCity(Default, tc[0], tc[1], tc[2])
		if !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("NewCity(%v): expected ErrInvalidLayout, got %v", tc, err)
		}
	}
}

func TestLayoutValidateLargest(t *testing.T) {
	if err := (Layout{BlocksX: 500, BlocksY: 500, BlockSize: 1}).Validate(); err != nil {
		t.Errorf("500x500 blocks: %v", err)
	}
	if err := (Layout{BlocksX: 1, BlocksY: 1, BlockSize: 4000}).Validate(); err != nil {
		t.Errorf("block size 4000: %v", err)
	}
}

func TestCityJSON(t *testing.T) {
	c, err := NewCity(Default, 2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	fpath := filepath.Join(t.TempDir(), "city.json")
	if err := c.SaveJSON(fpath); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	data, err := os.ReadFile(fpath)
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		Variant         string
		Layout          Layout
		Rows, Cols      int
		Tiles           [][]Tile
		EntryPoints     []Position
		BuildingTargets []Target
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Variant != "default" {
		t.Errorf("variant = %q", out.Variant)
	}
	if out.Layout.BlockSize != 3 || out.Rows != 10 || out.Cols != 10 {
		t.Errorf("layout %+v rows %d cols %d", out.Layout, out.Rows, out.Cols)
	}
	if len(out.Tiles) != 10 || len(out.Tiles[0]) != 10 {
		t.Fatalf("tiles are %d rows", len(out.Tiles))
	}
	if out.Tiles[0][0] != Building() || out.Tiles[3][3] != Light(LightGreen) || out.Tiles[4][4] != TwoWayRoad(TwoWayDownLeft) {
		t.Errorf("unexpected tiles %v %v %v", out.Tiles[0][0], out.Tiles[3][3], out.Tiles[4][4])
	}
	if len(out.EntryPoints) != 4 || out.EntryPoints[1] != Pos(6, 10) {
		t.Errorf("entry points = %v", out.EntryPoints)
	}
	if out.BuildingTargets == nil || len(out.BuildingTargets) != 0 {
		t.Errorf("building targets = %v, want empty list", out.BuildingTargets)
	}
}
