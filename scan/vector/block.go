package vector

// Hashes are filtered one block of 8 x uint32 (256 bits) at a time.
// The block is viewed as four 64-bit words holding two 32-bit lanes each.
const (
	blockWidth = 8

	laneLSB  uint64 = 0x0000_0001_0000_0001
	laneMSB  uint64 = 0x8000_0000_8000_0000
	laneLow  uint64 = 0x7fff_ffff_7fff_ffff
	laneHalf        = 32
)

// matchBlock returns a mask with bit j set iff block[j] == h.
func matchBlock(block *[blockWidth]uint32, h uint32) uint8 {
	var (
		needle = laneLSB * uint64(h) // broadcast
		mask   uint8
	)

	for w := 0; w < blockWidth/2; w++ {
		v := (uint64(block[2*w]) | uint64(block[2*w+1])<<laneHalf) ^ needle
		// the lane MSB survives only in zero lanes, no borrow crosses lanes
		z := ^((v&laneLow + laneLow) | v | laneLow)
		mask |= uint8(z>>31&1|z>>62&2) << (2 * w)
	}

	return mask
}

func roundToBlocks(n int) int {
	return (n + blockWidth - 1) &^ (blockWidth - 1)
}
