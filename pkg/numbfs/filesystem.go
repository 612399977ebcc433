package numbfs

import "fmt"

// FileSystem is one read-only inspection session over a volume. The
// superblock is loaded once and immutable for the session's lifetime.
type FileSystem struct {
	Volume     Volume
	Superblock Superblock
}

// Load reads and validates the superblock and returns a session over
// `volume`.
func Load(volume Volume) (*FileSystem, error) {
	var buf [SuperblockSize]byte
	if err := volume.Read(SuperblockOffset, buf[:]); err != nil {
		return nil, fmt.Errorf("loading filesystem: %w", err)
	}

	fs := FileSystem{Volume: volume}
	if err := DecodeSuperblock(&fs.Superblock, &buf); err != nil {
		return nil, fmt.Errorf("loading filesystem: %w", err)
	}
	return &fs, nil
}

// ReadBlock fills `buf` with the content of the absolute block `blkno`.
func (fs *FileSystem) ReadBlock(buf *[BlockSize]byte, blkno Block) error {
	if err := fs.Volume.Read(Byte(blkno)*BlockSize, buf[:]); err != nil {
		return fmt.Errorf("reading block `%d`: %w", blkno, err)
	}
	return nil
}

// GetInode decodes the inode at `nid`. The decoder does not check the
// inode's bit in the inode bitmap; that cross-check is a composition of
// GetInode and ScanBitmap done by callers that want it.
func (fs *FileSystem) GetInode(nid Nid) (Inode, error) {
	if uint32(nid) >= fs.Superblock.TotalInodes {
		return Inode{}, fmt.Errorf(
			"getting inode `%d`: nid outside inode table (total inodes: "+
				"%d): %w",
			nid,
			fs.Superblock.TotalInodes,
			NotFoundErr,
		)
	}

	var buf [BlockSize]byte
	if err := fs.ReadBlock(&buf, fs.Superblock.InodeBlock(nid)); err != nil {
		return Inode{}, fmt.Errorf("getting inode `%d`: %w", nid, err)
	}

	slot := (*[InodeSize]byte)(buf[InodeSize*Byte(int(nid)%InodesPerBlock):])
	var inode Inode
	DecodeInode(&inode, slot)
	inode.Nid = nid
	return inode, nil
}

// ScanBitmap reads each block of [first, last) and returns the total
// population count across the region. A read failure aborts the scan;
// partial counts are discarded.
func (fs *FileSystem) ScanBitmap(first, last Block) (int, error) {
	var buf [BlockSize]byte
	total := 0
	for blkno := first; blkno < last; blkno++ {
		if err := fs.ReadBlock(&buf, blkno); err != nil {
			return 0, fmt.Errorf("scanning bitmap: %w", err)
		}
		total += Bitmap(buf[:]).Population()
	}
	return total, nil
}

// ReadInodeRange reads `len(p)` bytes of an inode's logical byte stream
// starting at `offset`, going through the direct block map one block at
// a time. Holes and positions past the inode's size read back as zeros.
// Offsets beyond the direct-block capacity are UnsupportedErr.
func (fs *FileSystem) ReadInodeRange(
	inode *Inode,
	offset Byte,
	p []byte,
) error {
	if offset < 0 || offset+Byte(len(p)) > MaxFileSize {
		return fmt.Errorf(
			"reading inode `%d` range [%d, %d): past direct block "+
				"capacity (%d bytes): %w",
			inode.Nid,
			offset,
			offset+Byte(len(p)),
			MaxFileSize,
			UnsupportedErr,
		)
	}

	chunkBegin := Byte(0)
	for chunkBegin < Byte(len(p)) {
		pos := offset + chunkBegin
		chunkOffset := pos % BlockSize
		chunkLength := Min(Byte(len(p))-chunkBegin, BlockSize-chunkOffset)
		chunk := p[chunkBegin : chunkBegin+chunkLength]

		addr := inode.Data[pos/BlockSize]
		if addr == HoleAddr || pos >= roundUp(inode.Size, BlockSize) {
			for i := range chunk {
				chunk[i] = 0
			}
		} else {
			blkno := fs.Superblock.DataBlock(addr)
			if err := fs.Volume.Read(
				Byte(blkno)*BlockSize+chunkOffset,
				chunk,
			); err != nil {
				return fmt.Errorf(
					"reading inode `%d` range at offset `%d`: %w",
					inode.Nid,
					pos,
					err,
				)
			}
		}
		chunkBegin += chunkLength
	}
	return nil
}

func roundUp(x, y Byte) Byte {
	return (x + y - 1) / y * y
}
