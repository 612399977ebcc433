package numbfs

import "fmt"

// Timestamps is the fixed 32-byte header of an inode's auxiliary block:
// three 64-bit seconds-since-epoch values plus eight reserved bytes.
type Timestamps struct {
	ATime int64
	MTime int64
	CTime int64
}

const (
	tsFieldATime = 0
	tsFieldMTime = 8
	tsFieldCTime = 16
)

func DecodeTimestamps(ts *Timestamps, b *[TimestampsSize]byte) {
	*ts = Timestamps{
		ATime: int64(getU64(b[tsFieldATime:])),
		MTime: int64(getU64(b[tsFieldMTime:])),
		CTime: int64(getU64(b[tsFieldCTime:])),
	}
}

func EncodeTimestamps(ts *Timestamps, b *[TimestampsSize]byte) {
	putU64(b[tsFieldATime:], uint64(ts.ATime))
	putU64(b[tsFieldMTime:], uint64(ts.MTime))
	putU64(b[tsFieldCTime:], uint64(ts.CTime))
}

// Xattr name type indexes.
const (
	XattrTypeUser    uint8 = 1
	XattrTypeTrusted uint8 = 2
)

// XattrEntry is one live extended-attribute slot. Name and Value hold
// exactly the declared lengths; the undefined trailing bytes of the
// fixed on-disk fields are never carried over.
type XattrEntry struct {
	Type  uint8
	Name  []byte
	Value []byte
}

// ErrXattrTooLong reports an attribute whose name or value exceeds the
// fixed on-disk field. Oversized attributes are rejected at construction
// time, never truncated.
type ErrXattrTooLong struct {
	Field string
	Len   int
	Max   int
}

func (err *ErrXattrTooLong) Error() string {
	return fmt.Sprintf(
		"xattr %s length `%d` exceeds maximum `%d`",
		err.Field,
		err.Len,
		err.Max,
	)
}

func NewXattrEntry(typ uint8, name, value []byte) (XattrEntry, error) {
	if len(name) > MaxXattrName {
		return XattrEntry{}, fmt.Errorf(
			"making xattr entry: %w",
			&ErrXattrTooLong{"name", len(name), MaxXattrName},
		)
	}
	if len(value) > MaxXattrValue {
		return XattrEntry{}, fmt.Errorf(
			"making xattr entry: %w",
			&ErrXattrTooLong{"value", len(value), MaxXattrValue},
		)
	}
	entry := XattrEntry{Type: typ}
	entry.Name = append(entry.Name, name...)
	entry.Value = append(entry.Value, value...)
	return entry, nil
}

const (
	xattrFieldValid = 0
	xattrFieldType  = 1
	xattrFieldNlen  = 2
	xattrFieldVlen  = 3
	xattrFieldName  = 4
	xattrFieldValue = 20
)

// decodeXattrSlot decodes one 56-byte slot. ok is false for free slots.
func decodeXattrSlot(b []byte) (XattrEntry, bool, error) {
	if b[xattrFieldValid] == 0 {
		return XattrEntry{}, false, nil
	}

	nlen := int(b[xattrFieldNlen])
	vlen := int(b[xattrFieldVlen])
	if nlen > MaxXattrName {
		return XattrEntry{}, false, fmt.Errorf(
			"decoding xattr slot: %w",
			&ErrXattrTooLong{"name", nlen, MaxXattrName},
		)
	}
	if vlen > MaxXattrValue {
		return XattrEntry{}, false, fmt.Errorf(
			"decoding xattr slot: %w",
			&ErrXattrTooLong{"value", vlen, MaxXattrValue},
		)
	}

	entry := XattrEntry{Type: b[xattrFieldType]}
	entry.Name = append(entry.Name, b[xattrFieldName:xattrFieldName+nlen]...)
	entry.Value = append(
		entry.Value,
		b[xattrFieldValue:xattrFieldValue+vlen]...,
	)
	return entry, true, nil
}

// EncodeXattrSlot writes `entry` as a valid slot into a 56-byte window.
func EncodeXattrSlot(entry *XattrEntry, b []byte) {
	b[xattrFieldValid] = 1
	b[xattrFieldType] = entry.Type
	b[xattrFieldNlen] = uint8(len(entry.Name))
	b[xattrFieldVlen] = uint8(len(entry.Value))
	copy(b[xattrFieldName:xattrFieldName+MaxXattrName], entry.Name)
	copy(b[xattrFieldValue:xattrFieldValue+MaxXattrValue], entry.Value)
}

// DecodeAttributes reads an inode's auxiliary block and decodes the
// timestamps header plus, when the inode declares any attributes, the
// live entries of the slot table in slot order. A read failure leaves
// the caller with the inode metadata it already decoded and no
// attribute data.
func (fs *FileSystem) DecodeAttributes(
	inode *Inode,
) (Timestamps, []XattrEntry, error) {
	var buf [BlockSize]byte
	if err := fs.ReadBlock(
		&buf,
		fs.Superblock.DataBlock(inode.XattrStart),
	); err != nil {
		return Timestamps{}, nil, fmt.Errorf(
			"decoding attributes of inode `%d`: %w",
			inode.Nid,
			err,
		)
	}

	var ts Timestamps
	DecodeTimestamps(&ts, (*[TimestampsSize]byte)(buf[:]))

	if inode.XattrCount == 0 {
		return ts, nil, nil
	}

	var entries []XattrEntry
	for slot := 0; slot < XattrSlotsPerBlock; slot++ {
		window := buf[XattrTableOffset+XattrEntrySize*Byte(slot):]
		entry, ok, err := decodeXattrSlot(window[:XattrEntrySize])
		if err != nil {
			return Timestamps{}, nil, fmt.Errorf(
				"decoding attributes of inode `%d`: slot `%d`: %w",
				inode.Nid,
				slot,
				err,
			)
		}
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	return ts, entries, nil
}
