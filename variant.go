package citygrid

import (
	"github.com/pkg/errors"
)

// VariantType names a city layout variant.
type VariantType string

const (
	VariantDefault  VariantType = "default"  // square blocks separated by one way lanes
	VariantBordered VariantType = "bordered" // as default but with an outer ring (dimensions only)
	VariantLine     VariantType = "line"     // placeholder
)

// Variant is a city layout. The set of variants is closed to this package;
// each variant answers every layout question (dimensions, tile at a cell,
// entry points, building targets) or returns ErrUnsupportedVariant.
//
// New layouts are added by implementing this interface here & registering
// them in variantindex.
type Variant interface {
	// Type returns the name of the variant
	Type() VariantType

	// Length returns the grid length along an axis with the given number
	// of blocks.
	Length(blocks, blockSize int) (int, error)

	// Classify returns the tile at (row, col)
	Classify(blockSize, row, col int) (Tile, error)

	// EntryPoints returns the border positions where vehicles enter
	EntryPoints(l Layout) ([]Position, error)

	// BuildingTargets returns the buildings vehicles may drive to
	BuildingTargets(l Layout) ([]Target, error)

	// closes the interface
	isVariant()
}

var (
	// Default is the fully implemented layout
	Default Variant = defaultVariant{}

	// Bordered knows its dimensions but not how to fill them
	Bordered Variant = borderedVariant{}

	// Line is a declared but unimplemented layout
	Line Variant = lineVariant{}

	variantindex = map[VariantType]uint8{
		VariantDefault:  0,
		VariantBordered: 1,
		VariantLine:     2,
	}

	variants = map[VariantType]Variant{
		VariantDefault:  Default,
		VariantBordered: Bordered,
		VariantLine:     Line,
	}

	invVariantIndex = map[uint8]VariantType{}
)

func init() {
	for k, v := range variantindex {
		invVariantIndex[v] = k
	}
}

// ID returns the index of a variant type (used in snapshots)
func (v VariantType) ID() uint8 {
	return variantindex[v]
}

// VariantFor returns the Variant with the given name
func VariantFor(t VariantType) (Variant, error) {
	v, ok := variants[t]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedVariant, "no variant named %q", t)
	}
	return v, nil
}

// variantForID is the inversion of VariantType.ID()
func variantForID(i uint8) (Variant, error) {
	t, ok := invVariantIndex[i]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedVariant, "no variant with id %d", i)
	}
	return VariantFor(t)
}

// AllVariantTypes returns all known variant names
func AllVariantTypes() []VariantType {
	return []VariantType{VariantDefault, VariantBordered, VariantLine}
}

// unsupported wraps ErrUnsupportedVariant with what was asked for
func unsupported(t VariantType, op string) error {
	return errors.Wrapf(ErrUnsupportedVariant, "%s: %s", t, op)
}

type defaultVariant struct{}

func (defaultVariant) isVariant() {}

func (defaultVariant) Type() VariantType { return VariantDefault }

// Length for the default variant: every block is followed by its park ring
// & lanes except the last, which drops its trailing four tiles.
func (defaultVariant) Length(blocks, blockSize int) (int, error) {
	return (blockSize+4)*blocks - 4, nil
}

func (defaultVariant) Classify(blockSize, row, col int) (Tile, error) {
	if blockSize < 1 {
		return Unknown(), errors.Wrapf(ErrInvalidLayout, "block size must be >= 1, got %d", blockSize)
	}
	if row < 0 || col < 0 {
		return Unknown(), errors.Wrapf(ErrOutOfBounds, "(%d,%d)", row, col)
	}
	return classifyDefault(blockSize, row, col), nil
}

func (defaultVariant) EntryPoints(l Layout) ([]Position, error) {
	return defaultEntryPoints(l), nil
}

func (defaultVariant) BuildingTargets(l Layout) ([]Target, error) {
	return []Target{}, nil
}

type borderedVariant struct{}

func (borderedVariant) isVariant() {}

func (borderedVariant) Type() VariantType { return VariantBordered }

func (borderedVariant) Length(blocks, blockSize int) (int, error) {
	return (blockSize+4)*blocks + 2, nil
}

func (borderedVariant) Classify(blockSize, row, col int) (Tile, error) {
	return Unknown(), unsupported(VariantBordered, "classify")
}

func (borderedVariant) EntryPoints(l Layout) ([]Position, error) {
	return []Position{}, nil
}

func (borderedVariant) BuildingTargets(l Layout) ([]Target, error) {
	return []Target{}, nil
}

type lineVariant struct{}

func (lineVariant) isVariant() {}

func (lineVariant) Type() VariantType { return VariantLine }

func (lineVariant) Length(blocks, blockSize int) (int, error) {
	return 0, unsupported(VariantLine, "length")
}

func (lineVariant) Classify(blockSize, row, col int) (Tile, error) {
	return Unknown(), unsupported(VariantLine, "classify")
}

func (lineVariant) EntryPoints(l Layout) ([]Position, error) {
	return nil, unsupported(VariantLine, "entry points")
}

func (lineVariant) BuildingTargets(l Layout) ([]Target, error) {
	return nil, unsupported(VariantLine, "building targets")
}
