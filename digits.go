package hextree

// Digits iterates the digit path of a cell from its base to its resolution,
// coarsest first. It is finite, single-pass, and not restartable.
type Digits struct {
	cell Cell
	next uint8
	end  uint8
}

// NewDigits returns a Digits iterator over cell's path, yielding exactly
// cell.Res() digits.
func NewDigits(cell Cell) Digits {
	return Digits{cell: cell, next: 1, end: cell.Res() + 1}
}

// Next returns the next digit on the path, or ok=false once exhausted.
func (d *Digits) Next() (uint8, bool) {
	if d.next >= d.end {
		return 0, false
	}
	digit, _ := d.cell.Digit(d.next)
	d.next++
	return digit, true
}
