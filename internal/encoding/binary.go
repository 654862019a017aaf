package encoding

import (
	"encoding/binary"
)

// FromBytes32 turns []byte (len 4) into uint32
func FromBytes32(data []byte) uint32 {
	return binary.BigEndian.Uint32(data)
}

// ToBytes32 turns a uint32 into []byte len 4
func ToBytes32(in uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, in)
	return buf
}

// Merge4 packs two 4 bit values into one byte, a in the high nibble.
// Only the low 4 bits of each input are kept.
func Merge4(a, b uint8) uint8 {
	return (a&0x0f)<<4 | b&0x0f
}

// Split8 is the inverse of Merge4
func Split8(in uint8) (uint8, uint8) {
	return in >> 4, in & 0x0f
}
