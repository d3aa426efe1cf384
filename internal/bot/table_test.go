package bot

import (
	"testing"

	"github.com/lox/chopstix/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	assert.Equal(t, 22, DefaultTable.Len())
}

func TestLookupMiss(t *testing.T) {
	_, ok := DefaultTable.Lookup(hands(t, 1, 1), hands(t, 3, 3))
	assert.False(t, ok, "opponent pair not stored")

	_, ok = DefaultTable.Lookup(hands(t, 4, 4), hands(t, 1, 0))
	assert.False(t, ok, "own pair not stored")
}

// Every stored entry must answer all four orientations of its keys with the
// correspondingly mirrored move, and playing the mirrored move on the
// mirrored position must give the mirrored result.
func TestLookupSymmetry(t *testing.T) {
	for _, row := range DefaultRows {
		for _, e := range row.Entries {
			for _, swapFrom := range []bool{false, true} {
				for _, swapTo := range []bool{false, true} {
					from, to := e.From, row.To
					want := e.Move
					if swapFrom {
						from = Pair{from[1], from[0]}
						want = want.MirrorFrom()
					}
					if swapTo {
						to = Pair{to[1], to[0]}
						want = want.MirrorTo()
					}
					fromHands, toHands := hands(t, from[0], from[1]), hands(t, to[0], to[1])

					got, ok := DefaultTable.Lookup(fromHands, toHands)
					require.True(t, ok, "from %v to %v", from, to)
					assert.Equal(t, want, got, "from %v to %v", from, to)

					// Compare with the canonical play.
					canonFrom, canonTo := hands(t, e.From[0], e.From[1]), hands(t, row.To[0], row.To[1])
					require.NoError(t, game.Apply(e.Move, canonFrom, canonTo))
					require.NoError(t, game.Apply(got, fromHands, toHands))

					wantTo := Pair{canonTo.Left().Fingers(), canonTo.Right().Fingers()}
					if swapTo {
						wantTo = Pair{wantTo[1], wantTo[0]}
					}
					assert.Equal(t, wantTo, pairOf(toHands), "from %v to %v", from, to)
				}
			}
		}
	}
}

func TestNewMoveTableRejectsBadRows(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		msg  string
	}{
		{
			name: "count out of range",
			rows: []Row{{To: Pair{5, 0}}},
			msg:  "out of range",
		},
		{
			name: "opponent pair not canonical",
			rows: []Row{{To: Pair{0, 1}}},
			msg:  "larger first",
		},
		{
			name: "own pair not canonical",
			rows: []Row{{To: Pair{1, 0}, Entries: []Entry{{Pair{1, 2}, game.TapLL}}}},
			msg:  "larger first",
		},
		{
			name: "empty pair",
			rows: []Row{{To: Pair{1, 0}, Entries: []Entry{{Pair{0, 0}, game.TapLL}}}},
			msg:  "no fingers",
		},
		{
			name: "duplicate row",
			rows: []Row{{To: Pair{1, 0}}, {To: Pair{1, 0}}},
			msg:  "duplicate",
		},
		{
			name: "duplicate entry",
			rows: []Row{{To: Pair{1, 0}, Entries: []Entry{{Pair{2, 1}, game.TapLL}, {Pair{2, 1}, game.TapRL}}}},
			msg:  "duplicate",
		},
		{
			name: "split entry",
			rows: []Row{{To: Pair{1, 0}, Entries: []Entry{{Pair{2, 0}, game.Split}}}},
			msg:  "not a tap",
		},
		{
			name: "tap from a fist",
			rows: []Row{{To: Pair{1, 0}, Entries: []Entry{{Pair{3, 0}, game.TapRL}}}},
			msg:  "empty hand",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMoveTable(tt.rows)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestMustMoveTablePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustMoveTable([]Row{{To: Pair{9, 9}}})
	})
}

func TestCustomTable(t *testing.T) {
	table, err := NewMoveTable([]Row{{To: Pair{3, 3}, Entries: []Entry{{Pair{3, 3}, game.TapRL}}}})
	require.NoError(t, err)

	mm, err := New(Options{Table: table}, nil, testLogger())
	require.NoError(t, err)
	// Zero percentages never touch the random source.
	assert.Equal(t, game.TapRL, mm.GetMove(hands(t, 3, 3), hands(t, 3, 3)))
}
