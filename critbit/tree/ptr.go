package tree

// ptr is a tagged index into the tree arenas:
//
//	[ 15:15-01 ] [    1:00    ]
//	<IIII:index> <1:leaf|0:node>
//
// A leaf ptr indexes keys/vals, a node ptr indexes nodes. Zero is never a valid
// node ptr because nodes[0] is reserved, so a zero root means an empty tree.
type ptr uint16

const leafBit ptr = 1

func nodePtr(idx int) ptr {
	return ptr(idx << 1)
}

func leafPtr(idx int) ptr {
	return ptr(idx<<1) | leafBit
}

func (p ptr) isLeaf() bool {
	return p&leafBit != 0
}

func (p ptr) index() int {
	return int(p >> 1)
}

// charAt returns the 16-bit char at pos. Real bytes carry bit 8 so that the
// zero char past the end of a key differs from any byte, 0x00 included.
func charAt(key string, pos int) uint16 {
	if pos < len(key) {
		return uint16(key[pos]) | 0x100
	}
	return 0
}
