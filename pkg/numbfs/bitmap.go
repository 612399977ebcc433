package numbfs

// Bitmap is one or more blocks' worth of allocation bits.
type Bitmap []byte

// Population returns the number of set bits. Correctness over speed: the
// count feeds a consistency check, so it stays a plain loop.
func (bitmap Bitmap) Population() int {
	total := 0
	for _, byt := range bitmap {
		for ; byt != 0; byt >>= 1 {
			total += int(byt & 1)
		}
	}
	return total
}

// SetHigh marks bit `i` as allocated. Tests building synthetic images
// use it; the inspector itself never mutates a bitmap.
func (bitmap Bitmap) SetHigh(i int) {
	bitmap[i/BitsPerByte] |= 1 << (i % BitsPerByte)
}
