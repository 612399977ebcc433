package numbfs

import "encoding/binary"

// Little endian: the first byte is the least significant.

func getU16(p []byte) uint16 {
	return binary.LittleEndian.Uint16(p)
}

func getU32(p []byte) uint32 {
	return binary.LittleEndian.Uint32(p)
}

func getU64(p []byte) uint64 {
	return binary.LittleEndian.Uint64(p)
}

func putU16(p []byte, u uint16) {
	binary.LittleEndian.PutUint16(p, u)
}

func putU32(p []byte, u uint32) {
	binary.LittleEndian.PutUint32(p, u)
}

func putU64(p []byte, u uint64) {
	binary.LittleEndian.PutUint64(p, u)
}

func getBlock(p []byte) Block {
	return Block(getU32(p))
}

func getBlockAddr(p []byte) BlockAddr {
	return BlockAddr(getU32(p))
}

func putBlock(p []byte, b Block) {
	putU32(p, uint32(b))
}

func putBlockAddr(p []byte, b BlockAddr) {
	putU32(p, uint32(b))
}
