package numbfs

import "fmt"

type constErr string

func (err constErr) Error() string { return string(err) }

const (
	// DeviceIOErr covers short and failed reads from the volume.
	DeviceIOErr constErr = "device i/o failure"

	// NotFoundErr is returned for inode numbers outside the inode table.
	NotFoundErr constErr = "inode not found"

	// InconsistencyErr marks on-disk state that contradicts itself: a
	// bitmap population disagreeing with the superblock counters, a bad
	// magic signature, or region addresses out of order.
	InconsistencyErr constErr = "structural inconsistency"

	// UnsupportedErr is returned for reads past the ten-direct-block
	// addressing capacity.
	UnsupportedErr constErr = "unsupported operation"

	NotDirErr constErr = "not a directory"
)

// ErrBadMagic reports a superblock whose magic signature is not Magic.
type ErrBadMagic struct {
	Found uint32
}

func (err *ErrBadMagic) Error() string {
	return fmt.Sprintf(
		"bad magic: wanted `%#x`; found `%#x`",
		Magic,
		err.Found,
	)
}

func (err *ErrBadMagic) Unwrap() error { return InconsistencyErr }

// ErrBadLayout reports superblock region addresses that are not strictly
// ordered (inode bitmap, inode table, block bitmap, data).
type ErrBadLayout struct {
	InodeBitmapStart Block
	InodeStart       Block
	BlockBitmapStart Block
	DataStart        Block
}

func (err *ErrBadLayout) Error() string {
	return fmt.Sprintf(
		"regions out of order: inode bitmap `%d`, inode table `%d`, "+
			"block bitmap `%d`, data `%d`",
		err.InodeBitmapStart,
		err.InodeStart,
		err.BlockBitmapStart,
		err.DataStart,
	)
}

func (err *ErrBadLayout) Unwrap() error { return InconsistencyErr }

// ErrBitmapMismatch reports a bitmap whose population count disagrees
// with the allocation counters recorded in the superblock.
type ErrBitmapMismatch struct {
	Resource string
	Expected int
	Found    int
}

func (err *ErrBitmapMismatch) Error() string {
	return fmt.Sprintf(
		"%s bitmap population `%d` disagrees with superblock counters "+
			"(total - free = %d)",
		err.Resource,
		err.Found,
		err.Expected,
	)
}

func (err *ErrBitmapMismatch) Unwrap() error { return InconsistencyErr }
