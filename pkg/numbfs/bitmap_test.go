package numbfs

import (
	"errors"
	"testing"
)

func TestBitmapPopulation(t *testing.T) {
	for _, testCase := range []struct {
		name   string
		bitmap Bitmap
		wanted int
	}{
		{"empty", Bitmap{}, 0},
		{"zeros", Bitmap{0, 0, 0}, 0},
		{"one-low-bit", Bitmap{0x01}, 1},
		{"one-high-bit", Bitmap{0x80}, 1},
		{"full-byte", Bitmap{0xff}, 8},
		{"mixed", Bitmap{0xff, 0x00, 0x81, 0x10}, 11},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			if found := testCase.bitmap.Population(); found != testCase.wanted {
				t.Fatalf(
					"Population(): wanted `%d`; found `%d`",
					testCase.wanted,
					found,
				)
			}
		})
	}
}

func TestScanBitmapSpansBlocks(t *testing.T) {
	// 8192 inodes need two bitmap blocks; set bits in both.
	img := newTestImage(t, 8192, 8192)
	img.setInodeBit(0)
	img.setInodeBit(7)
	img.setInodeBit(4100) // second bitmap block

	fs := img.load()
	found, err := fs.ScanBitmap(
		fs.Superblock.InodeBitmapStart,
		fs.Superblock.InodeStart,
	)
	if err != nil {
		t.Fatalf("ScanBitmap(): unexpected err: %v", err)
	}
	if found != 3 {
		t.Fatalf("ScanBitmap(): wanted `3`; found `%d`", found)
	}
}

func TestScanBitmapDiscardsPartialCount(t *testing.T) {
	img := newTestImage(t, 128, 4096)
	// a populated block followed by one past the end of the volume
	img.setBit(4095, 0)

	fs := img.load()
	found, err := fs.ScanBitmap(4095, 4097)
	if !errors.Is(err, DeviceIOErr) {
		t.Fatalf("ScanBitmap(): wanted `DeviceIOErr`; found `%v`", err)
	}
	if found != 0 {
		t.Fatalf(
			"ScanBitmap(): wanted discarded count `0`; found `%d`",
			found,
		)
	}
}

func TestScanBitmapEmptyRegion(t *testing.T) {
	img := newTestImage(t, 128, 4096)
	fs := img.load()
	found, err := fs.ScanBitmap(
		fs.Superblock.BlockBitmapStart,
		fs.Superblock.BlockBitmapStart,
	)
	if err != nil {
		t.Fatalf("ScanBitmap(): unexpected err: %v", err)
	}
	if found != 0 {
		t.Fatalf("ScanBitmap(): wanted `0`; found `%d`", found)
	}
}
