package game

import "testing"

func TestHomeClaimIsMonotonic(t *testing.T) {
	row := NewHomeRow(3, 50, 0, 20, 10, 10)

	landing := Box{X: 50, Y: 0, W: 10, H: 10}
	idx := row.Claim(landing)
	if idx != 1 {
		t.Fatalf("claim index = %d, want 1 (center slot)", idx)
	}
	if !row.Spaces[1].Taken {
		t.Fatalf("claimed slot not marked taken")
	}

	// The same landing can never claim again: taken slots are excluded.
	for i := 0; i < 3; i++ {
		if got := row.Claim(landing); got != HomeNone {
			t.Fatalf("re-claim returned %d, want HomeNone", got)
		}
	}
	if row.AllTaken() {
		t.Fatalf("only one of three slots is taken")
	}
}

func TestHomeClaimRequiresAlignment(t *testing.T) {
	row := NewHomeRow(3, 50, 0, 20, 10, 10)

	// Off by more than the tolerance on either axis: no match.
	if got := row.Claim(Box{X: 50.5, Y: 0, W: 10, H: 10}); got != HomeNone {
		t.Fatalf("misaligned x claimed slot %d", got)
	}
	if got := row.Claim(Box{X: 50, Y: 0.5, W: 10, H: 10}); got != HomeNone {
		t.Fatalf("misaligned y claimed slot %d", got)
	}
	// Within tolerance: match.
	if got := row.Claim(Box{X: 50.05, Y: -0.05, W: 10, H: 10}); got != 1 {
		t.Fatalf("aligned landing claimed slot %d, want 1", got)
	}
}

func TestHomeRowLayoutIsCentered(t *testing.T) {
	row := NewHomeRow(3, 50, 0, 20, 10, 10)
	wantX := []float64{30, 50, 70}
	for i, s := range row.Spaces {
		if s.X != wantX[i] {
			t.Fatalf("slot %d at x=%f, want %f", i, s.X, wantX[i])
		}
	}
	if row.AllTaken() {
		t.Fatalf("fresh row reports all taken")
	}
	for i := range row.Spaces {
		row.Spaces[i].Taken = true
	}
	if !row.AllTaken() {
		t.Fatalf("fully claimed row reports free slots")
	}
}
