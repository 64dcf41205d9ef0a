package gammon

import (
	"bytes"
	"fmt"
)

var (
	renderTop    = []byte("+13-14-15-16-17-18-+---+19-20-21-22-23-24-+")
	renderMiddle = []byte("|                  |BAR|                  |")
	renderBottom = []byte("+12-11-10--9--8--7-+---+-6--5--4--3--2--1-+")
)

// Render draws the display as fixed-width text from player's point of view.
// Points are numbered 1-24 from the viewer's own home, matching the frame
// every Board operation uses, so the viewer's checkers start in the bottom
// right quadrant. Stacks above five checkers show their count in the
// innermost row.
func (d BoardDisplay) Render(player Player) ([]byte, error) {
	if player != Player0 && player != Player1 {
		return nil, ErrPlayerInvalid
	}

	viewerChar, opponentChar := byte('x'), byte('o')
	viewerBar, opponentBar := d.Bar[0], d.Bar[1]
	viewerOff, opponentOff := d.Off[0], d.Off[1]
	if player == Player1 {
		viewerChar, opponentChar = opponentChar, viewerChar
		viewerBar, opponentBar = opponentBar, viewerBar
		viewerOff, opponentOff = opponentOff, viewerOff
	}

	// Signed checker count on the viewer's own-frame point: positive for
	// the viewer, negative for the opponent.
	pointValue := func(own int) int {
		if player == Player0 {
			return int(d.Board[own])
		}
		return -int(d.Board[mirror(own)])
	}

	// cell renders one three-character slot. depth runs 1-5 from the board
	// edge toward the middle; counts above five (up to fifteen) are shown
	// numerically in the innermost slots.
	cell := func(count int, ch byte, depth int) []byte {
		c := byte(' ')
		switch {
		case count > 9 && depth == 4:
			c = '1'
		case count > 9 && depth == 5:
			c = '0' + byte(count-10)
		case count > 5 && depth == 5:
			c = '0' + byte(count)
		case count >= depth:
			c = ch
		}
		return []byte{' ', c, ' '}
	}

	pointCell := func(own int, depth int) []byte {
		n := pointValue(own)
		if n < 0 {
			return cell(-n, opponentChar, depth)
		}
		return cell(n, viewerChar, depth)
	}

	var t bytes.Buffer
	t.Write(renderTop)
	t.WriteByte('\n')

	// Top half: the viewer's outer table, stacks growing downward. The
	// opponent's bar occupies the top half of the bar column.
	for depth := 1; depth <= 5; depth++ {
		t.WriteByte('|')
		for own := 12; own <= 23; own++ {
			t.Write(pointCell(own, depth))
			if own == 17 {
				t.WriteByte('|')
				t.Write(cell(int(opponentBar), opponentChar, depth))
				t.WriteByte('|')
			}
		}
		t.WriteByte('|')
		if depth == 1 && opponentOff > 0 {
			fmt.Fprintf(&t, "  %c %d off", opponentChar, opponentOff)
		}
		t.WriteByte('\n')
	}

	t.Write(renderMiddle)
	t.WriteByte('\n')

	// Bottom half: the viewer's home side, stacks growing upward.
	for depth := 5; depth >= 1; depth-- {
		t.WriteByte('|')
		for own := 11; own >= 0; own-- {
			t.Write(pointCell(own, depth))
			if own == 6 {
				t.WriteByte('|')
				t.Write(cell(int(viewerBar), viewerChar, depth))
				t.WriteByte('|')
			}
		}
		t.WriteByte('|')
		if depth == 1 && viewerOff > 0 {
			fmt.Fprintf(&t, "  %c %d off", viewerChar, viewerOff)
		}
		t.WriteByte('\n')
	}

	t.Write(renderBottom)
	t.WriteByte('\n')

	return t.Bytes(), nil
}
