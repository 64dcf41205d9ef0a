package gammon

import (
	"cmp"
	"math/rand/v2"
)

// SeedSize is the length in bytes of a player's roll-stream seed.
const SeedSize = 32

// PlayerWithDice binds a player to a seeded roll stream and, while that
// player holds the turn, the current dice. Dices is nil for the player
// waiting on their opponent.
type PlayerWithDice struct {
	Player Player
	Dices  *Dice

	roll Roller
}

// NewPlayerWithDice seeds a player's roll stream. The same seed always
// produces the same sequence of rolls.
func NewPlayerWithDice(player Player, seed [SeedSize]byte) PlayerWithDice {
	rng := rand.New(rand.NewChaCha8(seed))
	return PlayerWithDice{
		Player: player,
		roll: func() uint8 {
			return uint8(rng.IntN(diceFaces)) + 1
		},
	}
}

// Roll rolls this player's dice without storing them.
func (p *PlayerWithDice) Roll() Dice {
	return RollDice(p.roll)
}

// snapshot copies the player, including the held dice. The roll stream is
// shared with the original.
func (p *PlayerWithDice) snapshot() PlayerWithDice {
	cp := *p
	if p.Dices != nil {
		d := *p.Dices
		cp.Dices = &d
	}
	return cp
}

// Players owns both seeded players and the turn. Exactly one of the two
// underlying players holds dice at any time, and Current is a value snapshot
// of that player.
type Players struct {
	Player1 PlayerWithDice
	Player2 PlayerWithDice
	Current PlayerWithDice
}

// NewPlayers seeds both players and performs the opening roll-off: both roll
// once, and the higher pair under lexicographic comparison takes the first
// turn, keeping its roll in hand. Equal rolls are discarded and re-rolled
// until they differ, so the seeds must produce distinct streams: identical
// seeds can never break the tie.
func NewPlayers(firstSeed, secondSeed [SeedSize]byte) *Players {
	p := &Players{
		Player1: NewPlayerWithDice(Player0, firstSeed),
		Player2: NewPlayerWithDice(Player1, secondSeed),
	}
	for {
		d1 := p.Player1.Roll()
		d2 := p.Player2.Roll()
		switch compareDice(d1, d2) {
		case 1:
			p.Player1.Dices = &d1
			p.Current = p.Player1.snapshot()
			return p
		case -1:
			p.Player2.Dices = &d2
			p.Current = p.Player2.snapshot()
			return p
		}
	}
}

// compareDice orders two rolls lexicographically on (v0, v1).
func compareDice(a, b Dice) int {
	if c := cmp.Compare(a.Values[0], b.Values[0]); c != 0 {
		return c
	}
	return cmp.Compare(a.Values[1], b.Values[1])
}

// Switch passes the turn: the outgoing player's dice are cleared and the
// incoming player rolls fresh dice.
func (p *Players) Switch() {
	if p.Current.Player == p.Player1.Player {
		p.Player1.Dices = nil
		d := p.Player2.Roll()
		p.Player2.Dices = &d
		p.Current = p.Player2.snapshot()
	} else {
		p.Player2.Dices = nil
		d := p.Player1.Roll()
		p.Player1.Dices = &d
		p.Current = p.Player1.snapshot()
	}
}
