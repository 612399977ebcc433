package numbfs

import "fmt"

// DirIterator walks a directory inode's byte stream in fixed 64-byte
// records, buffering one logical block at a time so consecutive entries
// within a block cost a single read. It is finite and restartable: once
// the offset reaches the directory size the iterator stays exhausted,
// and a fresh iterator starts over from offset zero.
type DirIterator struct {
	fs     *FileSystem
	inode  *Inode
	offset Byte
	buf    [BlockSize]byte
	bufPos Byte // start offset of the buffered block; -1 when empty
}

// IterateDirectory starts an iteration pass over `inode`, which must be
// a directory. The directory size is not validated to be a multiple of
// the record size; a trailing remainder is simply never visited.
func (fs *FileSystem) IterateDirectory(inode *Inode) (*DirIterator, error) {
	if inode.Mode.Type() != FileTypeDir {
		return nil, fmt.Errorf(
			"iterating directory `%d`: %w",
			inode.Nid,
			NotDirErr,
		)
	}
	return &DirIterator{fs: fs, inode: inode, bufPos: -1}, nil
}

// Next yields the next entry. The second return is false once the pass
// is exhausted. A read failure ends the pass at that point; entries
// already yielded remain valid.
func (it *DirIterator) Next() (DirEntry, bool, error) {
	if it.offset+DirEntrySize > it.inode.Size {
		return DirEntry{}, false, nil
	}

	blockStart := it.offset / BlockSize * BlockSize
	if blockStart != it.bufPos {
		if err := it.fs.ReadInodeRange(
			it.inode,
			blockStart,
			it.buf[:],
		); err != nil {
			return DirEntry{}, false, fmt.Errorf(
				"iterating directory `%d` at offset `%d`: %w",
				it.inode.Nid,
				it.offset,
				err,
			)
		}
		it.bufPos = blockStart
	}

	var entry DirEntry
	DecodeDirEntry(
		&entry,
		(*[DirEntrySize]byte)(it.buf[it.offset-blockStart:]),
	)
	it.offset += DirEntrySize
	return entry, true, nil
}
