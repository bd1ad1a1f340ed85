package board

import "testing"

func TestParseMove(t *testing.T) {
	m, promo, err := ParseMove("e2e4")
	if err != nil {
		t.Fatal("Error parsing move:", err)
	}
	if m.From != E2 || m.To != E4 || promo != NoPieceType {
		t.Errorf("ParseMove(e2e4) = %v %v %v", m.From, m.To, promo)
	}
	if m.String() != "e2e4" {
		t.Errorf("String() = %q, want e2e4", m.String())
	}

	m, promo, err = ParseMove("e7e8q")
	if err != nil {
		t.Fatal("Error parsing move:", err)
	}
	if m.From != E7 || m.To != E8 || promo != Queen {
		t.Errorf("ParseMove(e7e8q) = %v %v %v", m.From, m.To, promo)
	}

	for _, bad := range []string{"", "e2", "e2e", "e2e9", "i2i4", "e7e8x", "e2e4q5"} {
		if _, _, err := ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q) succeeded, want error", bad)
		}
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("a8")
	if err != nil {
		t.Fatal("Error parsing square:", err)
	}
	if sq != A8 {
		t.Errorf("ParseSquare(a8) = %v, want a8", sq)
	}

	sq, err = ParseSquare("h1")
	if err != nil {
		t.Fatal("Error parsing square:", err)
	}
	if sq != H1 {
		t.Errorf("ParseSquare(h1) = %v, want h1", sq)
	}

	if got := E4.String(); got != "e4" {
		t.Errorf("E4.String() = %q, want e4", got)
	}
	if got := NoSquare.String(); got != "-" {
		t.Errorf("NoSquare.String() = %q, want -", got)
	}

	for _, bad := range []string{"", "e", "e9", "i4", "44"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) succeeded, want error", bad)
		}
	}
}
