package gammon

import (
	"crypto/rand"
	"math/big"
)

// diceFaces is the number of faces on each die.
const diceFaces = 6

// A Roller produces one die value in 1-6. The engine takes whichever roller
// the caller hands it; determinism is the caller's choice.
type Roller func() uint8

// CryptoRoller returns a Roller backed by the operating system's entropy
// source.
func CryptoRoller() Roller {
	return func() uint8 {
		return uint8(RandInt(diceFaces)) + 1
	}
}

// RandInt returns a uniform random integer in [0, max).
func RandInt(max int) int {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}
	return int(i.Int64())
}

// Dice is a rolled pair of dice. Consumed tracks up to four uses: doubles
// grant four moves of the same value, any other roll two, with the trailing
// slots starting out consumed.
type Dice struct {
	Values   [2]uint8 `json:"values"`
	Consumed [4]bool  `json:"consumed"`
}

// RollDice rolls a fresh pair using r.
func RollDice(r Roller) Dice {
	d := Dice{Values: [2]uint8{r(), r()}}
	if d.Values[0] != d.Values[1] {
		d.Consumed[2] = true
		d.Consumed[3] = true
	}
	return d
}

// Roll discards the previous values and rolls again using r.
func (d Dice) Roll(r Roller) Dice {
	return RollDice(r)
}

// Doubles reports whether both dice show the same value.
func (d Dice) Doubles() bool {
	return d.Values[0] == d.Values[1]
}

// UsableCount returns how many uses remain on this roll.
func (d Dice) UsableCount() int {
	var n int
	for _, c := range d.Consumed {
		if !c {
			n++
		}
	}
	return n
}

// Value returns the die value behind consumed slot i: slots 0 and 1 map to
// the two rolled values, slots 2 and 3 repeat them for doubles.
func (d Dice) Value(i int) (uint8, error) {
	if i < 0 || i >= len(d.Consumed) {
		return 0, ErrMoveInvalid
	}
	return d.Values[i%2], nil
}

// Consume marks one use of slot i. It fails with ErrMoveInvalid when the
// slot is already consumed or out of range.
func (d *Dice) Consume(i int) error {
	if i < 0 || i >= len(d.Consumed) || d.Consumed[i] {
		return ErrMoveInvalid
	}
	d.Consumed[i] = true
	return nil
}
