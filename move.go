package gammon

import "fmt"

// BoardPosition addresses a checker location in the acting player's own
// frame. Non-negative values are point indices; the holding areas use
// negative sentinels so that any point index, valid or not, stays a field.
type BoardPosition int8

const (
	// PositionBar is the holding area for hit checkers.
	PositionBar BoardPosition = -1

	// PositionOff is the area for checkers borne off the board.
	PositionOff BoardPosition = -2
)

// Field returns the position of point i.
func Field(i int) BoardPosition {
	return BoardPosition(i)
}

// IsField reports whether the position addresses a point rather than a
// holding area.
func (p BoardPosition) IsField() bool {
	return p >= 0
}

func (p BoardPosition) String() string {
	switch p {
	case PositionBar:
		return "bar"
	case PositionOff:
		return "off"
	default:
		return fmt.Sprintf("point %d", int(p))
	}
}

// MoveChecker is a single checker move: re-entry from the bar, a move
// between two points, or a bear-off.
type MoveChecker struct {
	Player Player
	From   BoardPosition
	To     BoardPosition
}

func (m MoveChecker) String() string {
	return fmt.Sprintf("%s: %s -> %s", m.Player, m.From, m.To)
}

// MoveFrom builds the move die implies for a checker on point from, without
// applying it: a point-to-point move, or a bear-off when the die overshoots
// the board.
func MoveFrom(player Player, die int, from int) (MoveChecker, error) {
	if player != Player0 && player != Player1 {
		return MoveChecker{}, ErrPlayerInvalid
	}
	if from < 0 || from >= NumPoints {
		return MoveChecker{}, ErrFieldInvalid
	}
	if die < 1 || die > 6 {
		return MoveChecker{}, ErrMoveInvalid
	}
	to := PositionOff
	if from >= die {
		to = Field(from - die)
	}
	return MoveChecker{Player: player, From: Field(from), To: to}, nil
}

// MoveFromBar builds the re-entry move die implies for a checker on the bar:
// entry lands in the opponent's home board, on point 24-die.
func MoveFromBar(player Player, die int) (MoveChecker, error) {
	if player != Player0 && player != Player1 {
		return MoveChecker{}, ErrPlayerInvalid
	}
	if die < 1 || die > 6 {
		return MoveChecker{}, ErrMoveInvalid
	}
	return MoveChecker{Player: player, From: PositionBar, To: Field(NumPoints - die)}, nil
}

// checkField validates a point index used as a move endpoint.
func checkField(field BoardPosition) error {
	if int(field) >= NumPoints {
		return ErrFieldInvalid
	}
	return nil
}

// checkTarget validates a destination point for player.
func (b *Board) checkTarget(player Player, field BoardPosition) error {
	blocked, err := b.Blocked(player, int(field))
	if err != nil {
		return err
	}
	if blocked {
		return ErrFieldBlocked
	}
	return nil
}

// ApplyMove validates both endpoints of a move and then commits it; on error
// the board is unchanged. The supported combinations are bar to point, point
// to point, and point to off. Error values match what the Set/SetBar/SetOff
// primitives would have produced when applied in sequence.
func (b *Board) ApplyMove(move MoveChecker) error {
	pb, err := b.playerBoard(move.Player)
	if err != nil {
		return err
	}

	switch {
	case move.From == PositionBar && move.To.IsField():
		if pb.Bar == 0 {
			return ErrMoveInvalid
		}
		if err := b.checkTarget(move.Player, move.To); err != nil {
			return err
		}
		if err := b.SetBar(move.Player, -1); err != nil {
			return err
		}
		return b.Set(move.Player, int(move.To), 1)

	case move.From.IsField() && move.To.IsField():
		if err := checkField(move.From); err != nil {
			return err
		}
		if pb.Points[move.From] == 0 {
			return ErrMoveInvalid
		}
		if err := b.checkTarget(move.Player, move.To); err != nil {
			return err
		}
		if err := b.Set(move.Player, int(move.From), -1); err != nil {
			return err
		}
		return b.Set(move.Player, int(move.To), 1)

	case move.From.IsField() && move.To == PositionOff:
		if err := checkField(move.From); err != nil {
			return err
		}
		if pb.Points[move.From] == 0 {
			return ErrMoveInvalid
		}
		if err := b.Set(move.Player, int(move.From), -1); err != nil {
			return err
		}
		return b.SetOff(move.Player, 1)

	default:
		return ErrMoveInvalid
	}
}

// PossibleMoves returns the candidate moves for player using a single die
// value in 1-6. Three regimes apply:
//
//   - With any checker on the bar, the only candidate is re-entry on point
//     24-die in the opponent's home board. If that point is blocked there is
//     no candidate and ErrMoveInvalid is returned.
//   - A checker on point i with i >= die may move to i-die unless that point
//     is blocked.
//   - Bear-off candidates appear only once the bar is empty and every
//     checker is in the home board: the exact roll (i == die-1) always
//     qualifies, a larger roll only from the highest occupied point.
//
// Candidates are ordered by ascending source point.
func (b *Board) PossibleMoves(player Player, die int) ([]MoveChecker, error) {
	if die < 1 || die > 6 {
		return nil, ErrMoveInvalid
	}
	pb, err := b.playerBoard(player)
	if err != nil {
		return nil, err
	}

	if pb.Bar > 0 {
		// A checker on the bar must re-enter before any other move.
		entry := NumPoints - die
		blocked, err := b.Blocked(player, entry)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, ErrMoveInvalid
		}
		return []MoveChecker{{Player: player, From: PositionBar, To: Field(entry)}}, nil
	}

	bearingOff := pb.allHome()
	highest := -1
	for i := NumPoints - 1; i >= 0; i-- {
		if pb.Points[i] > 0 {
			highest = i
			break
		}
	}

	var moves []MoveChecker
	for i := 0; i < NumPoints; i++ {
		if pb.Points[i] == 0 {
			continue
		}
		if i >= die {
			to := i - die
			blocked, err := b.Blocked(player, to)
			if err != nil {
				return nil, err
			}
			if !blocked {
				moves = append(moves, MoveChecker{Player: player, From: Field(i), To: Field(to)})
			}
			continue
		}
		if bearingOff && (i == die-1 || i == highest) {
			moves = append(moves, MoveChecker{Player: player, From: Field(i), To: PositionOff})
		}
	}
	return moves, nil
}
