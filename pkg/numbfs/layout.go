package numbfs

// On-disk layout constants. All multi-byte fields are little-endian. The
// first block of a volume is reserved; the superblock lives in the second
// block.
const (
	BlockSize   Byte = 512
	BitsPerByte      = 8

	SuperblockOffset Byte = BlockSize
	SuperblockSize   Byte = 128

	InodeSize      Byte = 64
	InodesPerBlock      = int(BlockSize / InodeSize)

	DirEntrySize Byte = 64
	MaxPathLen        = 60

	TimestampsSize Byte = 32

	XattrEntrySize     Byte = 56
	XattrTableOffset        = TimestampsSize
	XattrSlotsPerBlock      = int((BlockSize - TimestampsSize) / XattrEntrySize)
	MaxXattrName            = 16
	MaxXattrValue           = 32

	DirectBlocksPerInode = 10

	// MaxFileSize is a hard ceiling: inodes carry ten direct block
	// addresses and no indirection.
	MaxFileSize Byte = DirectBlocksPerInode * BlockSize

	Magic uint32 = 0x4E554D42 // "NUMB"

	RootNid Nid = 0

	// HoleAddr marks an unallocated slot in an inode's direct block map.
	HoleAddr BlockAddr = -32
)

// Block is an absolute block address on the volume.
type Block uint32

// BlockAddr is a data-zone-relative block address as stored inside an
// inode; it may be HoleAddr.
type BlockAddr int32

// Byte is a count or offset in bytes.
type Byte int64

// Nid is an inode number.
type Nid uint16
