package huffman

// Code is the bit pattern assigned to one symbol. Bits holds one byte per
// bit, each 0 or 1, most significant bit first.
type Code struct {
	Symbol byte
	Bits   []byte
}

// Len returns the code length in bits.
func (c Code) Len() int { return len(c.Bits) }

// MaxCodeLen is the deepest possible leaf: a maximally skewed tree over a
// 256-symbol alphabet.
const MaxCodeLen = 255

// BuildCodes traverses the tree rooted at root and returns one Code per
// leaf, in Low-first traversal order. Descending into Low appends bit 0,
// into High bit 1, so no code is a prefix of another.
//
// The degenerate single-leaf tree yields exactly one zero-length code;
// the packer then emits no bits and the unpacker reconstructs the input
// from the header length alone.
//
// The traversal uses an explicit stack: a skewed tree can be MaxCodeLen
// levels deep.
func BuildCodes(root *Node) []Code {
	if root == nil {
		return nil
	}
	if root.Leaf() {
		return []Code{{Symbol: root.Symbol, Bits: []byte{}}}
	}

	type frame struct {
		n     *Node
		depth int
		bit   byte
	}

	var codes []Code
	path := make([]byte, 0, MaxCodeLen)
	stack := make([]frame, 0, MaxCodeLen+1)
	stack = append(stack,
		frame{root.High, 1, 1},
		frame{root.Low, 1, 0},
	)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		path = append(path[:f.depth-1], f.bit)
		if f.n.Leaf() {
			codes = append(codes, Code{
				Symbol: f.n.Symbol,
				Bits:   append([]byte(nil), path...),
			})
			continue
		}
		stack = append(stack,
			frame{f.n.High, f.depth + 1, 1},
			frame{f.n.Low, f.depth + 1, 0},
		)
	}
	return codes
}
