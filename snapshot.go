package citygrid

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/voidshard/citygrid/internal/encoding"
)

const (
	snapshotMagic   = "CGRD"
	snapshotVersion = 1
)

// MarshalBinary encodes the city.
//
// Layout (big endian)
//
//	[4]  magic "CGRD"
//	[1]  version
//	[1]  variant id
//	[12] blocks x, blocks y, block size (uint32 each)
//	[8]  rows, cols (uint32 each)
//	[rows*cols] one byte per tile: kind in the high nibble, sub variant low
//	[4]  number of entry points
//	[8 each] entry point x, y (uint32 each)
func (c *City) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)

	buf.WriteString(snapshotMagic)
	buf.WriteByte(snapshotVersion)
	buf.WriteByte(c.variant.Type().ID())

	for _, v := range []int{c.layout.BlocksX, c.layout.BlocksY, c.layout.BlockSize, c.grid.Rows(), c.grid.Cols()} {
		buf.Write(encoding.ToBytes32(uint32(v)))
	}

	for _, t := range c.grid.tiles {
		kind, sub := t.id()
		buf.WriteByte(encoding.Merge4(kind, sub))
	}

	buf.Write(encoding.ToBytes32(uint32(len(c.entryPoints))))
	for _, p := range c.entryPoints {
		buf.Write(encoding.ToBytes32(uint32(p.X)))
		buf.Write(encoding.ToBytes32(uint32(p.Y)))
	}

	return buf.Bytes(), nil
}

// snapshotReader pulls fixed size fields out of a snapshot, remembering
// the first failure.
type snapshotReader struct {
	r   *bytes.Reader
	err error
}

func (s *snapshotReader) next(n int) []byte {
	if s.err != nil {
		return make([]byte, n)
	}
	data := make([]byte, n)
	_, err := io.ReadFull(s.r, data)
	if err != nil {
		s.err = errors.Wrap(ErrBadSnapshot, "truncated")
	}
	return data
}

func (s *snapshotReader) readInt() int {
	return int(encoding.FromBytes32(s.next(4)))
}

// UnmarshalCity decodes a city written by MarshalBinary.
//
// Cities are a pure function of their variant & layout, so the decoded city
// is regenerated from those & the stored tiles / entry points are checked
// against it. Any difference is ErrBadSnapshot.
func UnmarshalCity(data []byte) (*City, error) {
	sr := &snapshotReader{r: bytes.NewReader(data)}

	if string(sr.next(len(snapshotMagic))) != snapshotMagic {
		return nil, errors.Wrap(ErrBadSnapshot, "missing magic")
	}
	version := sr.next(1)[0]
	variantID := sr.next(1)[0]
	l := Layout{BlocksX: sr.readInt(), BlocksY: sr.readInt(), BlockSize: sr.readInt()}
	rows, cols := sr.readInt(), sr.readInt()
	if sr.err != nil {
		return nil, sr.err
	}
	if version != snapshotVersion {
		return nil, errors.Wrapf(ErrBadSnapshot, "unknown version %d", version)
	}

	if !gridFits(rows, cols) {
		return nil, errors.Wrapf(ErrBadSnapshot, "grid of %dx%d", rows, cols)
	}
	if err := l.Validate(); err != nil {
		return nil, errors.Wrap(ErrBadSnapshot, err.Error())
	}

	v, err := variantForID(variantID)
	if err != nil {
		return nil, errors.Wrap(ErrBadSnapshot, err.Error())
	}

	city, err := NewCity(v, l.BlocksX, l.BlocksY, l.BlockSize)
	if err != nil {
		return nil, errors.Wrap(ErrBadSnapshot, err.Error())
	}
	if city.grid.Rows() != rows || city.grid.Cols() != cols {
		return nil, errors.Wrapf(ErrBadSnapshot, "grid is %dx%d, layout gives %dx%d", rows, cols, city.grid.Rows(), city.grid.Cols())
	}

	tiles := sr.next(rows * cols)
	if sr.err != nil {
		return nil, sr.err
	}
	for i, b := range tiles {
		t, err := tileForID(encoding.Split8(b))
		if err != nil {
			return nil, errors.Wrap(ErrBadSnapshot, err.Error())
		}
		if t != city.grid.tiles[i] {
			return nil, errors.Wrapf(ErrBadSnapshot, "tile %v is %v, layout gives %v", Pos(i/cols, i%cols), t, city.grid.tiles[i])
		}
	}

	count := sr.readInt()
	if sr.err != nil {
		return nil, sr.err
	}
	if count != len(city.entryPoints) {
		return nil, errors.Wrapf(ErrBadSnapshot, "%d entry points, layout gives %d", count, len(city.entryPoints))
	}
	for i := 0; i < count; i++ {
		p := Pos(sr.readInt(), sr.readInt())
		if sr.err != nil {
			return nil, sr.err
		}
		if p != city.entryPoints[i] {
			return nil, errors.Wrapf(ErrBadSnapshot, "entry point %d is %v, layout gives %v", i, p, city.entryPoints[i])
		}
	}

	if sr.r.Len() != 0 {
		return nil, errors.Wrapf(ErrBadSnapshot, "%d trailing bytes", sr.r.Len())
	}

	return city, nil
}

// SaveSnapshot writes the city, zstd compressed, to fpath.
func (c *City) SaveSnapshot(fpath string) error {
	data, err := c.MarshalBinary()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fpath), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return errors.Wrap(err, "zstd write")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "zstd close")
	}
	return f.Close()
}

// LoadSnapshot reads a city written by SaveSnapshot.
func LoadSnapshot(fpath string) (*City, error) {
	f, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, errors.Wrap(ErrBadSnapshot, err.Error())
	}
	return UnmarshalCity(data)
}
