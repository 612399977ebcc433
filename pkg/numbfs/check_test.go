package numbfs

import (
	"errors"
	"testing"
)

func TestCheckInodeBitmap(t *testing.T) {
	// 128 total, 120 free: the bitmap population must be exactly 8.
	img := newTestImage(t, 128, 4096)
	for i := 0; i < 8; i++ {
		img.setInodeBit(i)
	}
	img.sb.FreeInodes = 120
	img.flushSuperblock()

	fs := img.load()
	found, err := fs.CheckInodeBitmap()
	if err != nil {
		t.Fatalf("CheckInodeBitmap(): unexpected err: %v", err)
	}
	if found != 8 {
		t.Fatalf("CheckInodeBitmap(): wanted `8`; found `%d`", found)
	}
}

func TestCheckInodeBitmapMismatch(t *testing.T) {
	img := newTestImage(t, 128, 4096)
	for i := 0; i < 8; i++ {
		img.setInodeBit(i)
	}
	// one corrupted extra bit
	img.setInodeBit(100)
	img.sb.FreeInodes = 120
	img.flushSuperblock()

	fs := img.load()
	_, err := fs.CheckInodeBitmap()
	var mismatch *ErrBitmapMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf(
			"CheckInodeBitmap(): wanted `ErrBitmapMismatch`; found `%v`",
			err,
		)
	}
	if mismatch.Expected != 8 || mismatch.Found != 9 {
		t.Fatalf(
			"ErrBitmapMismatch: wanted expected `8` found `9`; got "+
				"expected `%d` found `%d`",
			mismatch.Expected,
			mismatch.Found,
		)
	}
	if !errors.Is(err, InconsistencyErr) {
		t.Fatalf(
			"CheckInodeBitmap(): wanted `InconsistencyErr`; found `%v`",
			err,
		)
	}
}

func TestCheckBlockBitmap(t *testing.T) {
	img := newTestImage(t, 128, 4096)
	for i := 0; i < 5; i++ {
		img.setBlockBit(i)
	}
	img.sb.FreeBlocks = img.sb.DataBlocks - 5
	img.flushSuperblock()

	fs := img.load()
	found, err := fs.CheckBlockBitmap()
	if err != nil {
		t.Fatalf("CheckBlockBitmap(): unexpected err: %v", err)
	}
	if found != 5 {
		t.Fatalf("CheckBlockBitmap(): wanted `5`; found `%d`", found)
	}
}

func TestCheckBlockBitmapMismatch(t *testing.T) {
	img := newTestImage(t, 128, 4096)
	img.setBlockBit(0)
	// counters claim nothing is allocated
	fs := img.load()

	_, err := fs.CheckBlockBitmap()
	if !errors.Is(err, InconsistencyErr) {
		t.Fatalf(
			"CheckBlockBitmap(): wanted `InconsistencyErr`; found `%v`",
			err,
		)
	}
}
