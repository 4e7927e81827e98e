package source

import (
	"math/rand"
	"testing"

	"github.com/alecthomas/assert/v2"
)

// genPos generates a Position with internally consistent display fields
// derived from a random positive offset, as if every line were ten
// characters wide. This keeps generated values invariant-respecting without
// needing a real scanner.
func genPos(rng *rand.Rand) Position {
	off := rng.Intn(1000) + 1
	return Position{
		Filename: "gen",
		Offset:   off,
		Line:     (off-1)/10 + 1,
		Column:   (off-1)%10 + 1,
	}
}

func TestStart(t *testing.T) {
	p := Start("f")
	assert.Equal(t, Position{Filename: "f", Offset: 1, Line: 1, Column: 1}, p)
	assert.True(t, p.Valid())
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		r    rune
		want Position
	}{
		{
			name: "plain character",
			pos:  Position{Offset: 1, Line: 1, Column: 1},
			r:    'a',
			want: Position{Offset: 2, Line: 1, Column: 2},
		},
		{
			name: "tab from column 3 jumps to column 9",
			pos:  Position{Offset: 5, Line: 2, Column: 3},
			r:    '\t',
			want: Position{Offset: 6, Line: 2, Column: 9},
		},
		{
			name: "tab from column 1 jumps to column 9",
			pos:  Position{Offset: 1, Line: 1, Column: 1},
			r:    '\t',
			want: Position{Offset: 2, Line: 1, Column: 9},
		},
		{
			name: "tab from column 8 jumps to column 9",
			pos:  Position{Offset: 8, Line: 1, Column: 8},
			r:    '\t',
			want: Position{Offset: 9, Line: 1, Column: 9},
		},
		{
			name: "tab from column 9 jumps to column 17",
			pos:  Position{Offset: 9, Line: 1, Column: 9},
			r:    '\t',
			want: Position{Offset: 10, Line: 1, Column: 17},
		},
		{
			name: "newline starts a fresh line",
			pos:  Position{Offset: 7, Line: 3, Column: 4},
			r:    '\n',
			want: Position{Offset: 8, Line: 4, Column: 1},
		},
		{
			name: "multibyte rune advances one unit",
			pos:  Position{Offset: 1, Line: 1, Column: 1},
			r:    'é',
			want: Position{Offset: 2, Line: 1, Column: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.Advance(tt.r))
		})
	}
}

func TestAdvanceString(t *testing.T) {
	p := Start("f")

	got := p.AdvanceString("ab\tc\nd")
	// a,b: cols 2,3; tab: col 9; c: col 10; newline: line 2 col 1; d: col 2.
	assert.Equal(t, Position{Filename: "f", Offset: 7, Line: 2, Column: 2}, got)

	// Folding character by character agrees with AdvanceString.
	q := p
	for _, r := range "ab\tc\nd" {
		q = q.Advance(r)
	}
	assert.Equal(t, q, got)
}

func TestBackup(t *testing.T) {
	p := Start("f").AdvanceString("abc")
	assert.Equal(t, p.Backup(), Start("f").AdvanceString("ab"))
}

func TestPositionOrdering(t *testing.T) {
	// Ordering and identity are by (Filename, Offset) only; Line and Column
	// are advisory and must not influence comparison.
	a := Position{Filename: "f", Offset: 5, Line: 1, Column: 5}
	b := Position{Filename: "f", Offset: 5, Line: 99, Column: 1}
	c := Position{Filename: "f", Offset: 6, Line: 1, Column: 6}
	d := Position{Filename: "g", Offset: 1, Line: 1, Column: 1}

	assert.True(t, a.Same(b))
	assert.Equal(t, 0, a.Compare(b))
	assert.True(t, a.Before(c))
	assert.False(t, c.Before(a))
	assert.True(t, a.Before(d))
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"with filename", Position{Filename: "main.vt", Offset: 1, Line: 3, Column: 7}, "main.vt:3,7"},
		{"without filename", Position{Offset: 1, Line: 3, Column: 7}, "3,7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.String())
		})
	}
}

func TestGeneratedPositionsValid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for k := 0; k < 1000; k++ {
		p := genPos(rng)
		assert.True(t, p.Valid(), "generated position %#v must satisfy the invariant", p)
	}
}

func TestAdvancePreservesInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	runes := []rune{'a', 'Z', '0', ' ', '\t', '\n', 'é', '界'}
	for k := 0; k < 1000; k++ {
		p := genPos(rng)
		q := p.Advance(runes[rng.Intn(len(runes))])
		assert.True(t, q.Valid(), "advancing %#v broke the invariant: %#v", p, q)
		assert.Equal(t, p.Offset+1, q.Offset)
	}
}
