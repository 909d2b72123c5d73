package types

import "testing"

func TestCursorAdvance(t *testing.T) {
	tests := []struct {
		name     string
		cursor   Cursor
		slice    string
		wantLine int
		wantCol  int
	}{
		{
			name:     "empty slice",
			cursor:   Cursor{Line: 1, Col: 1},
			slice:    "",
			wantLine: 1,
			wantCol:  1,
		},
		{
			name:     "ascii no terminator",
			cursor:   Cursor{Line: 1, Col: 1},
			slice:    "hello",
			wantLine: 1,
			wantCol:  6,
		},
		{
			name:     "multibyte runes count as one column each",
			cursor:   Cursor{Line: 1, Col: 1},
			slice:    "å∂œ",
			wantLine: 1,
			wantCol:  4,
		},
		{
			name:     "lf terminator",
			cursor:   Cursor{Line: 1, Col: 1},
			slice:    "ab\ncd",
			wantLine: 2,
			wantCol:  3,
		},
		{
			name:     "crlf counts as one terminator",
			cursor:   Cursor{Line: 1, Col: 1},
			slice:    "ab\r\ncd",
			wantLine: 2,
			wantCol:  3,
		},
		{
			name:     "lone cr terminator",
			cursor:   Cursor{Line: 1, Col: 1},
			slice:    "ab\rcd",
			wantLine: 2,
			wantCol:  3,
		},
		{
			name:     "trailing terminator resets column",
			cursor:   Cursor{Line: 1, Col: 1},
			slice:    "a\r\n",
			wantLine: 2,
			wantCol:  1,
		},
		{
			name:     "crlf then lf then cr is three terminators",
			cursor:   Cursor{Line: 1, Col: 1},
			slice:    "a\r\n\n\r",
			wantLine: 4,
			wantCol:  1,
		},
		{
			name:     "mixed terminators with tail",
			cursor:   Cursor{Line: 1, Col: 1},
			slice:    "a\r\nb\rc\nd",
			wantLine: 4,
			wantCol:  2,
		},
		{
			name:     "advance from mid-line keeps line",
			cursor:   Cursor{Line: 3, Col: 7},
			slice:    "xy",
			wantLine: 3,
			wantCol:  9,
		},
		{
			name:     "terminator from mid-line resets column",
			cursor:   Cursor{Line: 3, Col: 7},
			slice:    "\n",
			wantLine: 4,
			wantCol:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cursor.Advance(tt.slice)
			if got.Line != tt.wantLine {
				t.Errorf("Advance() line = %v, want %v", got.Line, tt.wantLine)
			}
			if got.Col != tt.wantCol {
				t.Errorf("Advance() col = %v, want %v", got.Col, tt.wantCol)
			}
		})
	}
}

func TestStartCursor(t *testing.T) {
	c := StartCursor()
	if c.Line != 1 || c.Col != 1 {
		t.Errorf("StartCursor() = %v, want {1 1}", c)
	}
}

func TestCursorLocation(t *testing.T) {
	c := Cursor{Line: 4, Col: 9}
	loc := c.Location()
	if loc.Line != 4 || loc.Col != 9 {
		t.Errorf("Location() = %v, want 4:9", loc)
	}
}
