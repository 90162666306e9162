// Package bitset implements a fixed-length boolean column packed into
// 64-bit words, the storage primitive behind the searchable word table.
package bitset

import "math/bits"

// Column is a fixed-length vector of booleans packed 64 to a word.
// Bits at or beyond Len are never read meaningfully by any method here;
// callers must not assume they are zero.
type Column struct {
	Len   int
	words []uint64
}

func numWords(length int) int {
	return (length + 63) / 64
}

// AllTrue builds a column of the given length with every bit set.
func AllTrue(length int) Column {
	w := make([]uint64, numWords(length))
	for i := range w {
		w[i] = ^uint64(0)
	}
	return Column{Len: length, words: w}
}

// AllFalse builds a column of the given length with every bit clear.
func AllFalse(length int) Column {
	return Column{Len: length, words: make([]uint64, numWords(length))}
}

// FromBools packs a slice of bools into a column.
func FromBools(bs []bool) Column {
	c := AllFalse(len(bs))
	for i, b := range bs {
		if b {
			c.words[i/64] |= 1 << uint(i%64)
		}
	}
	return c
}

// ToBools unpacks the column back into a slice of bools.
func (c Column) ToBools() []bool {
	out := make([]bool, c.Len)
	for i := range out {
		out[i] = c.Get(i)
	}
	return out
}

// OneHot generates k columns of length len(values) from a row of small
// ints: column v has bit i set iff values[i] == v.
func OneHot(values []int, k int) []Column {
	cols := make([]Column, k)
	for v := range cols {
		cols[v] = AllFalse(len(values))
	}
	for i, v := range values {
		cols[v].Set(i, true)
	}
	return cols
}

// Get returns the bit at ind. Panics if ind is out of range.
func (c Column) Get(ind int) bool {
	if ind < 0 || ind >= c.Len {
		panic("bitset: index out of range")
	}
	return c.words[ind/64]&(1<<uint(ind%64)) != 0
}

// Set assigns the bit at ind. Panics if ind is out of range.
func (c Column) Set(ind int, val bool) {
	if ind < 0 || ind >= c.Len {
		panic("bitset: index out of range")
	}
	if val {
		c.words[ind/64] |= 1 << uint(ind%64)
	} else {
		c.words[ind/64] &^= 1 << uint(ind%64)
	}
}

// fullWords returns the complete 64-bit words and, if Len isn't a
// multiple of 64, the trailing partial word separately so callers can
// mask off its junk bits before counting.
func (c Column) fullWords() ([]uint64, *uint64) {
	if c.Len%64 == 0 {
		return c.words, nil
	}
	last := c.words[len(c.words)-1]
	return c.words[:len(c.words)-1], &last
}

func firstNBits(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}

// CountTrue returns the population count, masking the final partial word.
func (c Column) CountTrue() int {
	full, partial := c.fullWords()
	count := 0
	for _, w := range full {
		count += bits.OnesCount64(w)
	}
	if partial != nil {
		count += bits.OnesCount64(firstNBits(uint(c.Len%64)) & *partial)
	}
	return count
}

// CountFalse returns Len - CountTrue().
func (c Column) CountFalse() int {
	return c.Len - c.CountTrue()
}

// TrueIndices returns the ordered list of set bit indices.
func (c Column) TrueIndices() []int {
	out := make([]int, 0, c.CountTrue())
	for chunkInd, w := range c.words {
		if w == 0 {
			continue
		}
		base := chunkInd * 64
		for bitInd := 0; bitInd < 64; bitInd++ {
			global := base + bitInd
			if global >= c.Len {
				break
			}
			if w&(1<<uint(bitInd)) != 0 {
				out = append(out, global)
			}
		}
	}
	return out
}

// Filter builds a new column of length len(indices) whose bit j equals
// c.Get(indices[j]).
func (c Column) Filter(indices []int) Column {
	out := AllFalse(len(indices))
	for newInd, oldInd := range indices {
		if c.Get(oldInd) {
			out.Set(newInd, true)
		}
	}
	return out
}

// And ANDs rhs into c in place. Panics if lengths differ.
func (c Column) And(rhs Column) {
	if c.Len != rhs.Len {
		panic("bitset: cannot AND columns of differing length")
	}
	for i := range c.words {
		c.words[i] &= rhs.words[i]
	}
}

// Or ORs rhs into c in place. Panics if lengths differ.
func (c Column) Or(rhs Column) {
	if c.Len != rhs.Len {
		panic("bitset: cannot OR columns of differing length")
	}
	for i := range c.words {
		c.words[i] |= rhs.words[i]
	}
}

// Not returns the bitwise negation of c as a new column. Junk bits
// beyond Len in the result are undefined, per contract.
func (c Column) Not() Column {
	out := make([]uint64, len(c.words))
	for i, w := range c.words {
		out[i] = ^w
	}
	return Column{Len: c.Len, words: out}
}

// Clone returns an independent copy of c.
func (c Column) Clone() Column {
	w := make([]uint64, len(c.words))
	copy(w, c.words)
	return Column{Len: c.Len, words: w}
}

// Equal reports whether two columns have the same length and observable bits.
func (c Column) Equal(other Column) bool {
	if c.Len != other.Len {
		return false
	}
	full, partial := c.fullWords()
	oFull, oPartial := other.fullWords()
	for i := range full {
		if full[i] != oFull[i] {
			return false
		}
	}
	if partial == nil {
		return true
	}
	mask := firstNBits(uint(c.Len % 64))
	return (*partial & mask) == (*oPartial & mask)
}
