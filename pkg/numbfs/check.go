package numbfs

import "fmt"

// CheckInodeBitmap scans the inode bitmap region and cross-checks its
// population against the superblock's inode counters. On agreement it
// returns the population (the number of allocated inodes); on
// disagreement the check fails with ErrBitmapMismatch rather than
// reporting a plausible-looking but wrong figure.
func (fs *FileSystem) CheckInodeBitmap() (int, error) {
	population, err := fs.ScanBitmap(
		fs.Superblock.InodeBitmapStart,
		fs.Superblock.InodeStart,
	)
	if err != nil {
		return 0, fmt.Errorf("checking inode bitmap: %w", err)
	}

	expected := int(fs.Superblock.TotalInodes - fs.Superblock.FreeInodes)
	if population != expected {
		return 0, fmt.Errorf(
			"checking inode bitmap: %w",
			&ErrBitmapMismatch{
				Resource: "inode",
				Expected: expected,
				Found:    population,
			},
		)
	}
	return population, nil
}

// CheckBlockBitmap is the data-block counterpart of CheckInodeBitmap.
func (fs *FileSystem) CheckBlockBitmap() (int, error) {
	population, err := fs.ScanBitmap(
		fs.Superblock.BlockBitmapStart,
		fs.Superblock.DataStart,
	)
	if err != nil {
		return 0, fmt.Errorf("checking block bitmap: %w", err)
	}

	expected := int(fs.Superblock.DataBlocks - fs.Superblock.FreeBlocks)
	if population != expected {
		return 0, fmt.Errorf(
			"checking block bitmap: %w",
			&ErrBitmapMismatch{
				Resource: "block",
				Expected: expected,
				Found:    population,
			},
		)
	}
	return population, nil
}
