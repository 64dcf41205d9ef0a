package gammon

// Player identifies one side of the board. The zero value is PlayerNone,
// which is never a legal actor: operations that require an actor reject it
// with ErrPlayerInvalid.
type Player uint8

const (
	PlayerNone Player = iota
	Player0
	Player1
)

// Opponent returns the other player. The opponent of PlayerNone is
// PlayerNone.
func (p Player) Opponent() Player {
	switch p {
	case Player0:
		return Player1
	case Player1:
		return Player0
	default:
		return PlayerNone
	}
}

func (p Player) String() string {
	switch p {
	case Player0:
		return "player0"
	case Player1:
		return "player1"
	default:
		return "none"
	}
}
