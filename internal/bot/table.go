package bot

import (
	"fmt"

	"github.com/lox/chopstix/internal/game"
)

// Pair is a (left, right) finger count.
type Pair [2]int

// canonical returns p with the larger count first and whether the order was
// swapped to get there.
func (p Pair) canonical() (Pair, bool) {
	if p[0] < p[1] {
		return Pair{p[1], p[0]}, true
	}
	return p, false
}

func pairOf(h *game.Hands) Pair {
	return Pair{h.Left().Fingers(), h.Right().Fingers()}
}

// Entry is the preferred move when our hands hold From.
type Entry struct {
	From Pair
	Move game.Move
}

// Row holds the entries that apply when the opponent's hands hold To.
type Row struct {
	To      Pair
	Entries []Entry
}

// DefaultRows is the built-in strategy. Each finger combination is stored in
// one orientation only, larger count first; mirrored positions are derived
// at lookup time. Positions without a real choice are left out and handled
// by the random fallback.
var DefaultRows = []Row{
	{
		To: Pair{1, 0},
		Entries: []Entry{
			{Pair{4, 0}, game.TapLL}, // for the win
			{Pair{3, 0}, game.TapLL},
			{Pair{2, 0}, game.TapLR}, // don't give them 3
			{Pair{1, 0}, game.TapLL},
			{Pair{4, 1}, game.TapLL}, // win
			{Pair{3, 1}, game.TapLR}, // don't give them 2 or 4
			{Pair{2, 1}, game.TapRL}, // don't give them 3
			{Pair{1, 1}, game.TapLL}, // have them think about splitting
		},
	},
	{
		To: Pair{2, 0},
		Entries: []Entry{
			{Pair{4, 0}, game.TapLR}, // don't give them 1
			{Pair{3, 0}, game.TapLL}, // win
			{Pair{2, 0}, game.TapLL},
			{Pair{1, 0}, game.TapLL},
			{Pair{4, 1}, game.TapRL}, // don't give them 1
			{Pair{3, 1}, game.TapLL}, // win
			{Pair{2, 1}, game.TapRR},
			{Pair{1, 1}, game.TapLL},
		},
	},
	{
		To: Pair{1, 1},
		Entries: []Entry{
			{Pair{4, 3}, game.TapLL},
			{Pair{4, 2}, game.TapLL},
			{Pair{4, 1}, game.TapLR},
			{Pair{3, 2}, game.TapRR},
			{Pair{3, 1}, game.TapLL},
			{Pair{2, 1}, game.TapLR},
		},
	},
}

// DefaultTable is DefaultRows indexed for lookup.
var DefaultTable = MustMoveTable(DefaultRows)

// MoveTable maps canonical (opponent, own) finger pairs to a canonical tap.
type MoveTable struct {
	rows map[Pair]map[Pair]game.Move
	size int
}

// NewMoveTable indexes rows, rejecting malformed data: counts outside
// [0,4], keys not stored larger-first, duplicates, empty hands on either
// side, and moves that are not taps from a hand with fingers.
func NewMoveTable(rows []Row) (*MoveTable, error) {
	t := &MoveTable{rows: make(map[Pair]map[Pair]game.Move, len(rows))}
	for _, row := range rows {
		if err := validateKey(row.To); err != nil {
			return nil, fmt.Errorf("row %v: %w", row.To, err)
		}
		if _, dup := t.rows[row.To]; dup {
			return nil, fmt.Errorf("row %v: duplicate", row.To)
		}
		entries := make(map[Pair]game.Move, len(row.Entries))
		for _, e := range row.Entries {
			if err := validateKey(e.From); err != nil {
				return nil, fmt.Errorf("row %v entry %v: %w", row.To, e.From, err)
			}
			if _, dup := entries[e.From]; dup {
				return nil, fmt.Errorf("row %v entry %v: duplicate", row.To, e.From)
			}
			if !e.Move.IsTap() {
				return nil, fmt.Errorf("row %v entry %v: %s is not a tap", row.To, e.From, e.Move)
			}
			if e.From[e.Move.From()] == 0 {
				return nil, fmt.Errorf("row %v entry %v: %s taps with an empty hand", row.To, e.From, e.Move)
			}
			entries[e.From] = e.Move
		}
		t.rows[row.To] = entries
		t.size += len(entries)
	}
	return t, nil
}

// MustMoveTable is like NewMoveTable but panics on malformed rows.
func MustMoveTable(rows []Row) *MoveTable {
	t, err := NewMoveTable(rows)
	if err != nil {
		panic("bot: invalid move table: " + err.Error())
	}
	return t
}

func validateKey(p Pair) error {
	for _, n := range p {
		if n < 0 || n > game.MaxFingers {
			return fmt.Errorf("finger count %d out of range", n)
		}
	}
	if p[0] < p[1] {
		return fmt.Errorf("pair not stored larger first")
	}
	if p[0] == 0 {
		return fmt.Errorf("pair has no fingers")
	}
	return nil
}

// Len returns the number of stored entries.
func (t *MoveTable) Len() int {
	return t.size
}

// Lookup returns the stored move for from tapping to, mirrored to match the
// actual orientation of both pairs.
func (t *MoveTable) Lookup(from, to *game.Hands) (game.Move, bool) {
	toKey, swapTo := pairOf(to).canonical()
	row, ok := t.rows[toKey]
	if !ok {
		return game.NoMove, false
	}
	fromKey, swapFrom := pairOf(from).canonical()
	m, ok := row[fromKey]
	if !ok {
		return game.NoMove, false
	}
	if swapFrom {
		m = m.MirrorFrom()
	}
	if swapTo {
		m = m.MirrorTo()
	}
	return m, true
}
