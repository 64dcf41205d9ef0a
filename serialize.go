package gammon

import "encoding/json"

// boardJSON pins the wire shape of Board: a single raw_board field holding
// both players' halves. PlayerBoard, BoardDisplay and Dice marshal directly
// through their struct tags; fixed-size arrays encode as JSON arrays.
type boardJSON struct {
	RawBoard [2]PlayerBoard `json:"raw_board"`
}

// MarshalJSON implements json.Marshaler.
func (b Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{RawBoard: b.rawBoard})
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Board) UnmarshalJSON(data []byte) error {
	var v boardJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	b.rawBoard = v.RawBoard
	return nil
}
