package numbfs

// Mode is the raw on-disk mode word. The file type lives in the top
// nibble of the low 16 bits, the same way the host stat(2) encodes it.
type Mode uint32

const (
	modeTypeMask Mode = 0xf000
	modeDir      Mode = 0x4000
	modeRegular  Mode = 0x8000
	modeSymlink  Mode = 0xa000
)

type FileType uint8

const (
	FileTypeRegular FileType = iota
	FileTypeDir
	FileTypeSymlink
)

func (t FileType) String() string {
	switch t {
	case FileTypeDir:
		return "DIR"
	case FileTypeSymlink:
		return "SYMLINK"
	default:
		return "REGULAR"
	}
}

func (m Mode) Type() FileType {
	switch m & modeTypeMask {
	case modeDir:
		return FileTypeDir
	case modeSymlink:
		return FileTypeSymlink
	default:
		return FileTypeRegular
	}
}

func (m Mode) AccessRights() uint32 { return uint32(m) & 0o777 }

func ModeFor(t FileType, accessRights uint32) Mode {
	mode := Mode(accessRights & 0o777)
	switch t {
	case FileTypeDir:
		mode |= modeDir
	case FileTypeSymlink:
		mode |= modeSymlink
	default:
		mode |= modeRegular
	}
	return mode
}

// Inode is the decoded view of one 64-byte on-disk inode slot.
type Inode struct {
	Nid        Nid
	LinksCount uint16
	UID        uint16
	GID        uint16
	Mode       Mode
	Size       Byte

	// XattrStart is the data-zone-relative address of the auxiliary
	// block holding timestamps and extended attributes.
	XattrStart BlockAddr
	XattrCount uint8

	// Data holds the ten direct block addresses; unallocated slots are
	// HoleAddr.
	Data [DirectBlocksPerInode]BlockAddr
}

const (
	inodeFieldNid        = 0
	inodeFieldLinksCount = 2
	inodeFieldUID        = 4
	inodeFieldGID        = 6
	inodeFieldMode       = 8
	inodeFieldSize       = 12
	inodeFieldXattrStart = 16
	inodeFieldXattrCount = 20
	// three pad bytes
	inodeFieldData = 24
)

// DecodeInode populates `inode` from a 64-byte slot. The nid recorded in
// the slot itself is decoded as-is; callers that located the slot by
// number typically overwrite it with the lookup key.
func DecodeInode(inode *Inode, b *[InodeSize]byte) {
	*inode = Inode{
		Nid:        Nid(getU16(b[inodeFieldNid:])),
		LinksCount: getU16(b[inodeFieldLinksCount:]),
		UID:        getU16(b[inodeFieldUID:]),
		GID:        getU16(b[inodeFieldGID:]),
		Mode:       Mode(getU32(b[inodeFieldMode:])),
		Size:       Byte(getU32(b[inodeFieldSize:])),
		XattrStart: getBlockAddr(b[inodeFieldXattrStart:]),
		XattrCount: b[inodeFieldXattrCount],
	}
	for i := range inode.Data {
		inode.Data[i] = getBlockAddr(b[inodeFieldData+4*i:])
	}
}

func EncodeInode(inode *Inode, b *[InodeSize]byte) {
	putU16(b[inodeFieldNid:], uint16(inode.Nid))
	putU16(b[inodeFieldLinksCount:], inode.LinksCount)
	putU16(b[inodeFieldUID:], inode.UID)
	putU16(b[inodeFieldGID:], inode.GID)
	putU32(b[inodeFieldMode:], uint32(inode.Mode))
	putU32(b[inodeFieldSize:], uint32(inode.Size))
	putBlockAddr(b[inodeFieldXattrStart:], inode.XattrStart)
	b[inodeFieldXattrCount] = inode.XattrCount
	for i, addr := range inode.Data {
		putBlockAddr(b[inodeFieldData+4*i:], addr)
	}
}
