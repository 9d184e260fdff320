// Package huffman implements the Huffman coding machinery: the ordered
// symbol sequence used as a priority structure, the tree builder, and the
// per-symbol code generator.
package huffman

// Seq is an ordered sequence of tree nodes. During frequency analysis it
// holds one leaf per distinct input byte; during tree construction the
// leaves are progressively replaced by merged internal nodes until only
// the tree root remains.
type Seq struct {
	nodes []*Node
}

// NewSeq returns an empty sequence.
func NewSeq() *Seq {
	return &Seq{}
}

// Len returns the number of entries in the sequence.
func (s *Seq) Len() int { return len(s.nodes) }

// At returns the entry at position i.
func (s *Seq) At(i int) *Node { return s.nodes[i] }

// Find returns the first leaf entry carrying the given symbol, or nil.
// Linear scan; the sequence never holds more than 256 leaves.
func (s *Seq) Find(symbol byte) *Node {
	for _, n := range s.nodes {
		if n.Leaf() && n.Symbol == symbol {
			return n
		}
	}
	return nil
}

// Push appends n at the tail of the sequence.
func (s *Seq) Push(n *Node) {
	s.nodes = append(s.nodes, n)
}

// PushFront inserts n at the front of the sequence.
func (s *Seq) PushFront(n *Node) {
	s.Insert(n, 0)
}

// Insert places n before position i. Insert(n, Len()) appends at the tail.
func (s *Seq) Insert(n *Node, i int) {
	s.nodes = append(s.nodes, nil)
	copy(s.nodes[i+1:], s.nodes[i:])
	s.nodes[i] = n
}

// Remove removes and returns the entry at position i.
func (s *Seq) Remove(i int) *Node {
	n := s.nodes[i]
	copy(s.nodes[i:], s.nodes[i+1:])
	s.nodes[len(s.nodes)-1] = nil
	s.nodes = s.nodes[:len(s.nodes)-1]
	return n
}

// PopFront removes and returns the front (minimum, once sorted) entry.
func (s *Seq) PopFront() *Node {
	return s.Remove(0)
}

// Sort reorders the sequence ascending by frequency, ties broken by
// ascending symbol value. Internal nodes carry symbol 0 and therefore sort
// ahead of equal-frequency leaves with nonzero symbols; the archive format
// depends on this ordering, so it must not change.
//
// The sort is a stable merge sort: split by position, sort each half,
// merge taking the left head on ties.
func (s *Seq) Sort() {
	s.nodes = mergeSort(s.nodes)
}

func mergeSort(nodes []*Node) []*Node {
	if len(nodes) < 2 {
		return nodes
	}
	mid := len(nodes) / 2
	left := mergeSort(append([]*Node(nil), nodes[:mid]...))
	right := mergeSort(append([]*Node(nil), nodes[mid:]...))

	out := nodes[:0]
	for len(left) > 0 && len(right) > 0 {
		if !less(right[0], left[0]) { // left <= right: stable
			out = append(out, left[0])
			left = left[1:]
		} else {
			out = append(out, right[0])
			right = right[1:]
		}
	}
	out = append(out, left...)
	out = append(out, right...)
	return out
}

// less reports whether a orders strictly before b.
func less(a, b *Node) bool {
	if a.Freq != b.Freq {
		return a.Freq < b.Freq
	}
	return a.Symbol < b.Symbol
}

// CountFrequencies scans data once and returns the unsorted symbol
// sequence (one leaf per distinct byte, ascending by symbol) together with
// the total symbol count. The caller is expected to Sort() the sequence
// before building a tree from it.
func CountFrequencies(data []byte) (*Seq, uint32) {
	var hist [256]uint32
	for _, b := range data {
		hist[b]++
	}
	s := NewSeq()
	for sym := 0; sym < 256; sym++ {
		if hist[sym] > 0 {
			s.Push(&Node{Symbol: byte(sym), Freq: hist[sym]})
		}
	}
	return s, uint32(len(data))
}
