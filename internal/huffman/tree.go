package huffman

// Node is a Huffman tree node. A leaf carries a symbol and its frequency
// and has no children; an internal node carries the sum of its children's
// frequencies and exactly two children. The tree is strict: a node has
// either zero or two children, never one.
//
// Internal nodes keep Symbol 0. That zero takes part in the sequence's
// tie-break (see Seq.Sort), so it is part of the format, not a leftover.
type Node struct {
	Symbol byte
	Freq   uint32
	Low    *Node // followed on bit 0; nil for leaves
	High   *Node // followed on bit 1; nil for leaves
}

// Leaf reports whether n is a leaf.
func (n *Node) Leaf() bool { return n.Low == nil }

// BuildTree consumes the sorted sequence s and returns the root of the
// Huffman tree. While more than one entry remains, the two front (minimum)
// entries are merged into an internal node whose children keep their
// removal order (first removed = Low), the merged node is pushed to the
// front, and the sequence is re-sorted so it takes its ascending position.
//
// This resort-per-merge construction is quadratic in the symbol count but
// reproduces the reference ordering exactly; a heap with a different
// tie-break would build an equally optimal yet differently shaped tree.
//
// A single-entry sequence yields that entry unchanged: a degenerate
// one-leaf tree. BuildTree returns nil for an empty sequence; callers
// must reject empty inputs before getting here.
func BuildTree(s *Seq) *Node {
	if s.Len() == 0 {
		return nil
	}
	for s.Len() > 1 {
		low := s.PopFront()
		high := s.PopFront()
		s.PushFront(&Node{
			Freq: low.Freq + high.Freq,
			Low:  low,
			High: high,
		})
		s.Sort()
	}
	return s.PopFront()
}
