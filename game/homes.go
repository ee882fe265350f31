package game

// HomeNone is returned by Claim when no free slot matched the landing.
const HomeNone = -1

// HomeSpace is one scoring slot on the top bank. Taken is monotonic:
// once claimed it never frees up again.
type HomeSpace struct {
	Box
	Taken bool
}

// HomeRow is the fixed set of scoring slots along the top boundary,
// created once at session start and never resized.
type HomeRow struct {
	Spaces []*HomeSpace
}

// NewHomeRow lays out count slots of the given size, spaced evenly and
// centered on centerX so every slot lines up with a player hop column.
func NewHomeRow(count int, centerX, y, spacing, w, h float64) *HomeRow {
	r := &HomeRow{}
	first := centerX - spacing*float64(count-1)/2
	for i := 0; i < count; i++ {
		r.Spaces = append(r.Spaces, &HomeSpace{
			Box: Box{X: first + spacing*float64(i), Y: y, W: w, H: h},
		})
	}
	return r
}

// Claim finds the first untaken slot aligned with b, marks it taken and
// returns its index. Already-taken slots never match again; with no
// match it returns HomeNone.
func (r *HomeRow) Claim(b Box) int {
	for i, s := range r.Spaces {
		if s.Taken {
			continue
		}
		if s.Near(b, HomeSnapTolerance) {
			s.Taken = true
			return i
		}
	}
	return HomeNone
}

// AllTaken reports whether every slot has been claimed.
func (r *HomeRow) AllTaken() bool {
	for _, s := range r.Spaces {
		if !s.Taken {
			return false
		}
	}
	return true
}
