package numbfs

// Dirent type bytes, matching the host dirent file types.
const (
	DirentTypeDir     uint8 = 4
	DirentTypeRegular uint8 = 8
	DirentTypeSymlink uint8 = 10
)

// DirEntry is one fixed 64-byte directory record.
type DirEntry struct {
	Nid  Nid
	Type uint8
	Name string
}

const (
	direntFieldNameLen = 0
	direntFieldType    = 1
	direntFieldName    = 2
	direntFieldNid     = 62
)

// DecodeDirEntry decodes a 64-byte record. Only the first name_len bytes
// of the name field are significant; a name_len past the fixed field is
// clamped to it rather than read beyond.
func DecodeDirEntry(entry *DirEntry, b *[DirEntrySize]byte) {
	nameLen := Min(int(b[direntFieldNameLen]), MaxPathLen)
	*entry = DirEntry{
		Nid:  Nid(getU16(b[direntFieldNid:])),
		Type: b[direntFieldType],
		Name: string(b[direntFieldName : direntFieldName+nameLen]),
	}
}

func EncodeDirEntry(entry *DirEntry, b *[DirEntrySize]byte) {
	b[direntFieldNameLen] = uint8(Min(len(entry.Name), MaxPathLen))
	b[direntFieldType] = entry.Type
	copy(b[direntFieldName:direntFieldName+MaxPathLen], entry.Name)
	putU16(b[direntFieldNid:], uint16(entry.Nid))
}
