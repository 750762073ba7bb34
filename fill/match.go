package fill

import (
	"paintbucket/pixel"
)

// bitset holds one bit per buffer index.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (s bitset) has(i int) bool {
	return s[i>>6]&(1<<(uint(i)&63)) != 0
}

func (s bitset) set(i int) {
	s[i>>6] |= 1 << (uint(i) & 63)
}

// matcher carries the state shared by all traversals of one fill. target
// is sampled before the first write and never changes afterwards.
type matcher struct {
	buf         *pixel.Buffer
	target      pixel.Pixel
	tolerance   int
	replacement pixel.Pixel
	antialias   bool
	visited     bitset
}

func newMatcher(buf *pixel.Buffer, target pixel.Pixel, req Request) *matcher {
	return &matcher{
		buf:         buf,
		target:      target,
		tolerance:   req.Tolerance,
		replacement: req.Replacement,
		antialias:   req.Antialias,
	}
}

func (m *matcher) matches(i int) bool {
	return m.buf.Get(i).Diff(m.target) <= m.tolerance
}

// paint writes the output pixel for i. The pixel at i must still hold its
// original value.
func (m *matcher) paint(i int) {
	if !m.antialias {
		m.buf.Put(i, m.replacement)
		return
	}

	orig := m.buf.Get(i)
	mul := 1.0
	if m.tolerance != 0 {
		mul = float64(orig.Diff(m.target)) / float64(m.tolerance)
	}
	m.buf.Put(i, orig.MultiplyAlpha(mul).Blend(m.replacement))
}

// scanline fills the 4-connected region around seed, one horizontal run at
// a time, and returns the number of pixels written. Every index is marked
// visited at most once, so no pixel is tested after it has been painted.
func (m *matcher) scanline(seed int) int {
	w, h := m.buf.Width(), m.buf.Height()
	m.visited = newBitset(m.buf.Len())

	filled := 0
	frontier := []int{seed}
	for len(frontier) > 0 {
		i := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if m.visited.has(i) {
			continue
		}
		m.visited.set(i)
		if !m.matches(i) {
			continue
		}

		x, y := i%w, i/w
		row := y * w

		// minX and maxX are exclusive bounds of the run
		minX := x - 1
		for minX >= 0 {
			j := row + minX
			if m.visited.has(j) || !m.matches(j) {
				break
			}
			m.visited.set(j)
			minX--
		}
		maxX := x + 1
		for maxX < w {
			j := row + maxX
			if m.visited.has(j) || !m.matches(j) {
				break
			}
			m.visited.set(j)
			maxX++
		}

		for px := minX + 1; px < maxX; px++ {
			j := row + px
			m.paint(j)
			filled++

			if y > 0 {
				if k := j - w; !m.visited.has(k) && m.matches(k) {
					frontier = append(frontier, k)
				}
			}
			if y < h-1 {
				if k := j + w; !m.visited.has(k) && m.matches(k) {
					frontier = append(frontier, k)
				}
			}
		}
	}
	return filled
}

// global paints every matching pixel in a single pass.
func (m *matcher) global() int {
	filled := 0
	for i := range m.buf.Len() {
		if m.matches(i) {
			m.paint(i)
			filled++
		}
	}
	return filled
}

// region returns the 4-connected region around seed by breadth-first
// search without writing anything. Indices are in discovery order.
func (m *matcher) region(seed int) []int {
	w, h := m.buf.Width(), m.buf.Height()
	m.visited = newBitset(m.buf.Len())

	m.visited.set(seed)
	if !m.matches(seed) {
		return nil
	}

	queue := []int{seed}
	visit := func(k int) {
		if m.visited.has(k) {
			return
		}
		m.visited.set(k)
		if m.matches(k) {
			queue = append(queue, k)
		}
	}

	for head := 0; head < len(queue); head++ {
		i := queue[head]
		x, y := i%w, i/w
		if x > 0 {
			visit(i - 1)
		}
		if x < w-1 {
			visit(i + 1)
		}
		if y > 0 {
			visit(i - w)
		}
		if y < h-1 {
			visit(i + w)
		}
	}
	return queue
}

// matching returns every matching index in the buffer.
func (m *matcher) matching() []int {
	var res []int
	for i := range m.buf.Len() {
		if m.matches(i) {
			res = append(res, i)
		}
	}
	return res
}
