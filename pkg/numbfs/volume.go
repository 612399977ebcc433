package numbfs

import (
	"fmt"
	"os"
)

// Volume is a byte-addressed device or image. Read must fill `buffer`
// completely or fail; the inspector never calls Write, but tests use it
// to build synthetic images.
type Volume interface {
	Read(offset Byte, buffer []byte) error
	Write(offset Byte, buffer []byte) error
}

type MemoryVolume struct {
	buf []byte
}

func NewMemoryVolume(capacity Byte) *MemoryVolume {
	return &MemoryVolume{make([]byte, capacity)}
}

func (volume *MemoryVolume) Read(offset Byte, buffer []byte) error {
	if offset < 0 || offset+Byte(len(buffer)) > Byte(len(volume.buf)) {
		return fmt.Errorf(
			"reading memory volume at offset `%d`: short read: %w",
			offset,
			DeviceIOErr,
		)
	}
	copy(buffer, volume.buf[offset:])
	return nil
}

func (volume *MemoryVolume) Write(offset Byte, buffer []byte) error {
	if offset < 0 || offset+Byte(len(buffer)) > Byte(len(volume.buf)) {
		return fmt.Errorf(
			"writing memory volume at offset `%d`: out of bounds: %w",
			offset,
			DeviceIOErr,
		)
	}
	copy(volume.buf[offset:], buffer)
	return nil
}

func (volume *MemoryVolume) Bytes() []byte { return volume.buf }

type FileVolume struct {
	file *os.File
}

// OpenFileVolume opens an image file or block device read-only.
func OpenFileVolume(path string) (*FileVolume, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening volume `%s`: %w", path, err)
	}
	return &FileVolume{file}, nil
}

func (volume *FileVolume) Read(offset Byte, buffer []byte) error {
	if _, err := volume.file.ReadAt(buffer, int64(offset)); err != nil {
		return fmt.Errorf(
			"reading file `%s` at offset `%d`: %v: %w",
			volume.file.Name(),
			offset,
			err,
			DeviceIOErr,
		)
	}
	return nil
}

func (volume *FileVolume) Write(offset Byte, buffer []byte) error {
	if _, err := volume.file.WriteAt(buffer, int64(offset)); err != nil {
		return fmt.Errorf(
			"writing file `%s` at offset `%d`: %v: %w",
			volume.file.Name(),
			offset,
			err,
			DeviceIOErr,
		)
	}
	return nil
}

func (volume *FileVolume) Close() error { return volume.file.Close() }
