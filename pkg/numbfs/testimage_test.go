package numbfs

import "testing"

// testImage builds a synthetic image in memory: reserved block, encoded
// superblock, zeroed bitmaps, and an inode zone whose direct maps are
// all holes. Region addresses use the same arithmetic as the original
// formatter (inode bitmap at block 2, then inode zone, block bitmap,
// data zone).
type testImage struct {
	t      *testing.T
	volume *MemoryVolume
	sb     Superblock
}

func newTestImage(t *testing.T, totalInodes uint32, totalBlocks int) *testImage {
	t.Helper()

	ibitmapStart := Block(2)
	inodeStart := ibitmapStart + Block(
		DivCiel(DivCiel(Byte(totalInodes), BitsPerByte), BlockSize),
	)
	bbitmapStart := inodeStart + Block(
		DivCiel(Byte(totalInodes)*InodeSize, BlockSize),
	)

	remain := totalBlocks - int(bbitmapStart) - 1
	dataBlocks := remain - int(
		DivCiel(DivCiel(Byte(remain), BitsPerByte), BlockSize),
	)
	dataStart := bbitmapStart + Block(
		DivCiel(DivCiel(Byte(dataBlocks), BitsPerByte), BlockSize),
	)

	img := testImage{
		t:      t,
		volume: NewMemoryVolume(Byte(totalBlocks) * BlockSize),
		sb: Superblock{
			InodeBitmapStart: ibitmapStart,
			InodeStart:       inodeStart,
			BlockBitmapStart: bbitmapStart,
			DataStart:        dataStart,
			TotalInodes:      totalInodes,
			FreeInodes:       totalInodes,
			DataBlocks:       uint32(dataBlocks),
			FreeBlocks:       uint32(dataBlocks),
		},
	}

	for nid := Nid(0); uint32(nid) < totalInodes; nid++ {
		img.writeInode(&Inode{Nid: nid, Data: allHoles()})
	}

	img.flushSuperblock()
	return &img
}

func allHoles() [DirectBlocksPerInode]BlockAddr {
	var data [DirectBlocksPerInode]BlockAddr
	for i := range data {
		data[i] = HoleAddr
	}
	return data
}

func (img *testImage) flushSuperblock() {
	img.t.Helper()
	var buf [SuperblockSize]byte
	EncodeSuperblock(&img.sb, &buf)
	if err := img.volume.Write(SuperblockOffset, buf[:]); err != nil {
		img.t.Fatalf("writing superblock: %v", err)
	}
}

func (img *testImage) load() *FileSystem {
	img.t.Helper()
	fs, err := Load(img.volume)
	if err != nil {
		img.t.Fatalf("loading test image: %v", err)
	}
	return fs
}

func (img *testImage) writeInode(inode *Inode) {
	img.t.Helper()
	var buf [InodeSize]byte
	EncodeInode(inode, &buf)
	offset := Byte(img.sb.InodeBlock(inode.Nid))*BlockSize +
		InodeSize*Byte(int(inode.Nid)%InodesPerBlock)
	if err := img.volume.Write(offset, buf[:]); err != nil {
		img.t.Fatalf("writing inode `%d`: %v", inode.Nid, err)
	}
}

// setBit flips on bit `i` of the bitmap region starting at `region`.
func (img *testImage) setBit(region Block, i int) {
	img.t.Helper()
	offset := Byte(region)*BlockSize + Byte(i/BitsPerByte)
	var byt [1]byte
	if err := img.volume.Read(offset, byt[:]); err != nil {
		img.t.Fatalf("reading bitmap byte: %v", err)
	}
	Bitmap(byt[:]).SetHigh(i % BitsPerByte)
	if err := img.volume.Write(offset, byt[:]); err != nil {
		img.t.Fatalf("writing bitmap byte: %v", err)
	}
}

func (img *testImage) setInodeBit(i int) {
	img.setBit(img.sb.InodeBitmapStart, i)
}

func (img *testImage) setBlockBit(i int) {
	img.setBit(img.sb.BlockBitmapStart, i)
}

// writeDataBlock fills the data-zone block at `addr` with `data`.
func (img *testImage) writeDataBlock(addr BlockAddr, data []byte) {
	img.t.Helper()
	if err := img.volume.Write(
		Byte(img.sb.DataBlock(addr))*BlockSize,
		data,
	); err != nil {
		img.t.Fatalf("writing data block `%d`: %v", addr, err)
	}
}
