package platformer

// resolveLandings recomputes Grounded and snaps the player onto a platform it
// fell onto this frame. Returns the landed platform index or NoPlatform.
//
// A landing needs the player to be falling and its bottom edge to have been
// at or above the platform top before this frame's vertical move. Only tops
// are solid: sides and undersides pass through. Fast falls can skip thin
// platforms since there is a single test per frame.
//
// Candidates are visited in list order and each landing overwrites the
// previous one. A landing zeroes DY, so in practice no later platform can
// qualify in the same frame.
func resolveLandings(p *Player, platforms []Platform) int {
	p.Grounded = false
	landed := NoPlatform

	for i, pl := range platforms {
		if !p.Rect().Intersects(pl.Rect()) {
			continue
		}
		if p.DY > 0 && p.Y+p.Height-p.DY <= pl.Y {
			p.Y = pl.Y - p.Height
			p.DY = 0
			p.Grounded = true
			landed = i
		}
	}

	return landed
}

// clampHorizontal keeps the player inside [0, worldW - width].
func clampHorizontal(p *Player, worldW float64) {
	if p.X < 0 {
		p.X = 0
	}
	if p.X+p.Width > worldW {
		p.X = worldW - p.Width
	}
}

// collectCoins marks every uncollected coin touching the player and returns
// their indexes. Uses the circle-vs-box test: squared distance from the
// coin center to the nearest point of the player box against radius².
func collectCoins(p *Player, coins []Coin) []int {
	var picked []int
	box := p.Rect()
	for i := range coins {
		c := &coins[i]
		if c.Collected {
			continue
		}
		if box.DistSqToPoint(c.X, c.Y) <= c.Radius*c.Radius {
			c.Collected = true
			picked = append(picked, i)
		}
	}
	return picked
}
