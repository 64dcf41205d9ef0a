package gammon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openingPlayerBoardJSON = `{
	"board": [0,0,0,0,0,5,0,3,0,0,0,0,5,0,0,0,0,0,0,0,0,0,0,2],
	"bar": 0,
	"off": 0
}`

func TestBoardMarshal(t *testing.T) {
	b, err := json.Marshal(NewBoard())
	require.NoError(t, err)
	require.JSONEq(t, `{"raw_board":[`+openingPlayerBoardJSON+`,`+openingPlayerBoardJSON+`]}`, string(b))
}

func TestBoardRoundTrip(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.ApplyMove(MoveChecker{Player: Player0, From: Field(5), To: Field(4)}))
	require.NoError(t, b.ApplyMove(MoveChecker{Player: Player1, From: Field(12), To: Field(8)}))
	require.NoError(t, b.SetBar(Player1, 1))
	require.NoError(t, b.SetOff(Player0, 2))

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var got Board
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *b, got)
	assert.Equal(t, b.Display(), got.Display())
}

func TestBoardUnmarshalInvalid(t *testing.T) {
	var got Board
	assert.Error(t, json.Unmarshal([]byte(`{"raw_board":"nope"}`), &got))
}

func TestBoardDisplayMarshal(t *testing.T) {
	data, err := json.Marshal(NewBoard().Display())
	require.NoError(t, err)
	require.JSONEq(t, `{
		"board": [-2,0,0,0,0,5,0,3,0,0,0,-5,5,0,0,0,-3,0,-5,0,0,0,0,2],
		"bar": [0,0],
		"off": [0,0]
	}`, string(data))

	var got BoardDisplay
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, NewBoard().Display(), got)
}

func TestDiceMarshal(t *testing.T) {
	d := RollDice(sequenceRoller(2, 5))
	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `{"values":[2,5],"consumed":[false,false,true,true]}`, string(data))

	var got Dice
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, d, got)
}

func TestDiceMarshalDoubles(t *testing.T) {
	d := RollDice(sequenceRoller(4))
	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `{"values":[4,4],"consumed":[false,false,false,false]}`, string(data))
}
