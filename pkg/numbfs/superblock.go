package numbfs

import "fmt"

// Superblock is the decoded filesystem-wide layout and allocation state.
// It is read once per session and never mutated afterwards.
type Superblock struct {
	Feature          uint32
	InodeBitmapStart Block
	InodeStart       Block
	BlockBitmapStart Block
	DataStart        Block
	TotalInodes      uint32
	FreeInodes       uint32
	DataBlocks       uint32
	FreeBlocks       uint32
}

const (
	sbFieldMagic            = 0
	sbFieldFeature          = 4
	sbFieldInodeBitmapStart = 8
	sbFieldInodeStart       = 12
	sbFieldBlockBitmapStart = 16
	sbFieldDataStart        = 20
	sbFieldTotalInodes      = 24
	sbFieldFreeInodes       = 28
	sbFieldDataBlocks       = 32
	sbFieldFreeBlocks       = 36
)

func DecodeSuperblock(sb *Superblock, b *[SuperblockSize]byte) error {
	if magic := getU32(b[sbFieldMagic:]); magic != Magic {
		return fmt.Errorf("decoding superblock: %w", &ErrBadMagic{magic})
	}

	*sb = Superblock{
		Feature:          getU32(b[sbFieldFeature:]),
		InodeBitmapStart: getBlock(b[sbFieldInodeBitmapStart:]),
		InodeStart:       getBlock(b[sbFieldInodeStart:]),
		BlockBitmapStart: getBlock(b[sbFieldBlockBitmapStart:]),
		DataStart:        getBlock(b[sbFieldDataStart:]),
		TotalInodes:      getU32(b[sbFieldTotalInodes:]),
		FreeInodes:       getU32(b[sbFieldFreeInodes:]),
		DataBlocks:       getU32(b[sbFieldDataBlocks:]),
		FreeBlocks:       getU32(b[sbFieldFreeBlocks:]),
	}

	if sb.InodeBitmapStart >= sb.InodeStart ||
		sb.InodeStart >= sb.BlockBitmapStart ||
		sb.BlockBitmapStart >= sb.DataStart {
		return fmt.Errorf("decoding superblock: %w", &ErrBadLayout{
			InodeBitmapStart: sb.InodeBitmapStart,
			InodeStart:       sb.InodeStart,
			BlockBitmapStart: sb.BlockBitmapStart,
			DataStart:        sb.DataStart,
		})
	}

	return nil
}

func EncodeSuperblock(sb *Superblock, b *[SuperblockSize]byte) {
	putU32(b[sbFieldMagic:], Magic)
	putU32(b[sbFieldFeature:], sb.Feature)
	putBlock(b[sbFieldInodeBitmapStart:], sb.InodeBitmapStart)
	putBlock(b[sbFieldInodeStart:], sb.InodeStart)
	putBlock(b[sbFieldBlockBitmapStart:], sb.BlockBitmapStart)
	putBlock(b[sbFieldDataStart:], sb.DataStart)
	putU32(b[sbFieldTotalInodes:], sb.TotalInodes)
	putU32(b[sbFieldFreeInodes:], sb.FreeInodes)
	putU32(b[sbFieldDataBlocks:], sb.DataBlocks)
	putU32(b[sbFieldFreeBlocks:], sb.FreeBlocks)
}

// InodeBlock returns the absolute block holding the slot for `nid`.
func (sb *Superblock) InodeBlock(nid Nid) Block {
	return sb.InodeStart + Block(int(nid)/InodesPerBlock)
}

// DataBlock translates a data-zone-relative address to an absolute block
// address. It must not be called with HoleAddr.
func (sb *Superblock) DataBlock(addr BlockAddr) Block {
	return sb.DataStart + Block(addr)
}
