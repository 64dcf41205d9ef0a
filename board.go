package gammon

// Each player's half of the board is stored in that player's own frame:
// point 0 is the closest to bearing off, point 23 the farthest. All
// cross-player references go through mirror, which is applied in exactly two
// places: the display projection and the hitting/blocking code.

const (
	// NumPoints is the number of points on the board.
	NumPoints = 24

	// NumCheckers is the number of checkers each player plays with.
	NumCheckers = 15

	// Points 0-5 form the home board.
	homeSize = 6

	// Pip value of a checker on the bar.
	barPips = 25
)

// mirror translates a point index between the two players' frames.
func mirror(field int) int {
	return 23 - field
}

// PlayerBoard holds one player's half of the board state in that player's
// own frame.
type PlayerBoard struct {
	Points [NumPoints]uint8 `json:"board"`
	Bar    uint8            `json:"bar"`
	Off    uint8            `json:"off"`
}

// NewPlayerBoard returns the opening layout: five checkers on the 6 point,
// three on the 8 point, five on the 13 point and two on the 24 point.
func NewPlayerBoard() PlayerBoard {
	var pb PlayerBoard
	pb.Points[5] = 5
	pb.Points[7] = 3
	pb.Points[12] = 5
	pb.Points[23] = 2
	return pb
}

// total counts the player's checkers across points, bar and off.
func (pb *PlayerBoard) total() int {
	n := int(pb.Bar) + int(pb.Off)
	for _, c := range pb.Points {
		n += int(c)
	}
	return n
}

// allHome reports whether every remaining checker is in the home board.
func (pb *PlayerBoard) allHome() bool {
	if pb.Bar > 0 {
		return false
	}
	for i := homeSize; i < NumPoints; i++ {
		if pb.Points[i] > 0 {
			return false
		}
	}
	return true
}

// Board is the full board state: both players' halves in their mirrored
// frames.
type Board struct {
	rawBoard [2]PlayerBoard
}

// NewBoard returns a board with both players in the opening layout.
func NewBoard() *Board {
	return &Board{rawBoard: [2]PlayerBoard{NewPlayerBoard(), NewPlayerBoard()}}
}

// BoardDisplay merges both halves into a single signed view in Player0's
// frame. Positive values are Player0's checkers, negative values Player1's.
// It is always computed fresh from the board.
type BoardDisplay struct {
	Board [NumPoints]int8 `json:"board"`
	Bar   [2]uint8        `json:"bar"`
	Off   [2]uint8        `json:"off"`
}

func (b *Board) playerBoard(player Player) (*PlayerBoard, error) {
	switch player {
	case Player0:
		return &b.rawBoard[0], nil
	case Player1:
		return &b.rawBoard[1], nil
	default:
		return nil, ErrPlayerInvalid
	}
}

func (b *Board) opponentBoard(player Player) (*PlayerBoard, error) {
	return b.playerBoard(player.Opponent())
}

// Display returns the merged view of the board.
func (b *Board) Display() BoardDisplay {
	var d BoardDisplay
	for i := range d.Board {
		d.Board[i] = int8(b.rawBoard[0].Points[i]) - int8(b.rawBoard[1].Points[mirror(i)])
	}
	d.Bar = [2]uint8{b.rawBoard[0].Bar, b.rawBoard[1].Bar}
	d.Off = [2]uint8{b.rawBoard[0].Off, b.rawBoard[1].Off}
	return d
}

// Blocked reports whether field is blocked for player: the opponent holds
// two or more checkers on the mirrored point.
func (b *Board) Blocked(player Player, field int) (bool, error) {
	if field < 0 || field >= NumPoints {
		return false, ErrFieldInvalid
	}
	opponent, err := b.opponentBoard(player)
	if err != nil {
		return false, err
	}
	return opponent.Points[mirror(field)] > 1, nil
}

// Set adds delta checkers for player on field. Blocking is evaluated before
// the delta is applied, regardless of sign. After a successful write any
// opposing checkers on the point are hit to the opponent's bar; a
// non-blocked point holds at most one.
func (b *Board) Set(player Player, field int, delta int8) error {
	blocked, err := b.Blocked(player, field)
	if err != nil {
		return err
	}
	if blocked {
		return ErrFieldBlocked
	}
	pb, err := b.playerBoard(player)
	if err != nil {
		return err
	}
	n := int8(pb.Points[field]) + delta
	if n < 0 {
		return ErrMoveInvalid
	}
	pb.Points[field] = uint8(n)

	opponent, err := b.opponentBoard(player)
	if err != nil {
		return err
	}
	opponent.Bar += opponent.Points[mirror(field)]
	opponent.Points[mirror(field)] = 0
	return nil
}

// SetBar adds delta checkers to the player's bar.
func (b *Board) SetBar(player Player, delta int8) error {
	pb, err := b.playerBoard(player)
	if err != nil {
		return err
	}
	n := int8(pb.Bar) + delta
	if n < 0 {
		return ErrMoveInvalid
	}
	pb.Bar = uint8(n)
	return nil
}

// SetOff adds amount checkers to the player's off area.
func (b *Board) SetOff(player Player, amount uint8) error {
	pb, err := b.playerBoard(player)
	if err != nil {
		return err
	}
	pb.Off += amount
	return nil
}

// IsWinner reports whether player has borne off all fifteen checkers.
func (b *Board) IsWinner(player Player) bool {
	pb, err := b.playerBoard(player)
	if err != nil {
		return false
	}
	return pb.Off == NumCheckers
}

// IsFinished reports whether either player has won.
func (b *Board) IsFinished() bool {
	return b.IsWinner(Player0) || b.IsWinner(Player1)
}

// Validate reports whether both halves hold exactly fifteen checkers across
// points, bar and off. The primitive mutators do not enforce this;
// compositions through ApplyMove preserve it.
func (b *Board) Validate() bool {
	for i := range b.rawBoard {
		if b.rawBoard[i].Off > NumCheckers {
			return false
		}
		if b.rawBoard[i].total() != NumCheckers {
			return false
		}
	}
	return true
}

// PipCount returns the total distance player still has to travel: each
// checker counts its point index plus one, checkers on the bar count 25.
func (b *Board) PipCount(player Player) (int, error) {
	pb, err := b.playerBoard(player)
	if err != nil {
		return 0, err
	}
	pips := int(pb.Bar) * barPips
	for i, n := range pb.Points {
		pips += (i + 1) * int(n)
	}
	return pips, nil
}
