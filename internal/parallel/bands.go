// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package parallel

// Band is a half-open range of rows [Lo, Hi).
type Band struct {
	Lo, Hi int
}

// Len returns the number of rows in the band.
func (b Band) Len() int { return b.Hi - b.Lo }

// Split divides rows [0, n) into at most parts contiguous bands whose
// lengths differ by at most one. Earlier bands take the extra rows.
// It returns nil when n <= 0.
func Split(n, parts int) []Band {
	if n <= 0 {
		return nil
	}
	parts = min(max(parts, 1), n)

	bands := make([]Band, parts)
	base, extra := n/parts, n%parts
	lo := 0
	for i := range bands {
		size := base
		if i < extra {
			size++
		}
		bands[i] = Band{Lo: lo, Hi: lo + size}
		lo += size
	}
	return bands
}

// ForBands splits [0, n) into one band per worker and runs fn on each band
// concurrently, returning when all bands are done.
func (p *Pool) ForBands(n int, fn func(b Band)) {
	bands := Split(n, p.workers)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b) }
	}
	p.Run(work)
}
