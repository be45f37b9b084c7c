package platformer

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestIntegrate(t *testing.T) {
	ph := Physics{Gravity: 0.6, Friction: 0.8}

	tests := []struct {
		name         string
		player       Player
		in           Input
		wantDX       float64
		wantDY       float64
		wantGrounded bool
	}{
		{
			name:   "friction without input",
			player: Player{DX: 4, Speed: 4, JumpForce: -12},
			wantDX: 3.2,
			wantDY: 0.6,
		},
		{
			name:   "right sets speed instantly",
			player: Player{Speed: 4, JumpForce: -12},
			in:     Input{Right: true},
			wantDX: 4,
			wantDY: 0.6,
		},
		{
			name:   "left wins over right",
			player: Player{DX: 4, Speed: 4, JumpForce: -12},
			in:     Input{Left: true, Right: true},
			wantDX: -4,
			wantDY: 0.6,
		},
		{
			name:   "no jump while airborne",
			player: Player{Speed: 4, JumpForce: -12},
			in:     Input{Up: true},
			wantDY: 0.6,
		},
		{
			name:   "jump from ground clears grounded",
			player: Player{Speed: 4, JumpForce: -12, Grounded: true},
			in:     Input{Up: true},
			wantDY: -11.4,
		},
		{
			name:         "grounded without up stays grounded until resolution",
			player:       Player{Speed: 4, JumpForce: -12, Grounded: true},
			wantDY:       0.6,
			wantGrounded: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.player
			x, y := p.X, p.Y

			integrate(&p, tc.in, ph)

			if !almostEqual(p.DX, tc.wantDX) {
				t.Errorf("DX = %v, expected %v", p.DX, tc.wantDX)
			}
			if !almostEqual(p.DY, tc.wantDY) {
				t.Errorf("DY = %v, expected %v", p.DY, tc.wantDY)
			}
			if p.Grounded != tc.wantGrounded {
				t.Errorf("Grounded = %v, expected %v", p.Grounded, tc.wantGrounded)
			}
			if !almostEqual(p.X, x+p.DX) || !almostEqual(p.Y, y+p.DY) {
				t.Errorf("position (%v, %v) not integrated from velocity (%v, %v)", p.X, p.Y, p.DX, p.DY)
			}
		})
	}
}

func TestLandingSnapsOntoPlatform(t *testing.T) {
	ground := []Platform{{X: 0, Y: 400, Width: 800, Height: 50}}

	// y=369 moving down by 5: bottom 404 after the move, 399 before it.
	p := Player{X: 100, Y: 369, DY: 5, Width: 30, Height: 30, Current: NoPlatform}
	p.Y += p.DY

	landed := resolveLandings(&p, ground)

	if landed != 0 {
		t.Fatalf("landed = %d, expected 0", landed)
	}
	if p.Y != 370 {
		t.Errorf("Y = %v, expected 370", p.Y)
	}
	if p.DY != 0 {
		t.Errorf("DY = %v, expected 0", p.DY)
	}
	if !p.Grounded {
		t.Error("expected grounded after landing")
	}
}

func TestLandingRejected(t *testing.T) {
	ground := []Platform{{X: 0, Y: 400, Width: 800, Height: 50}}

	tests := []struct {
		name   string
		player Player
	}{
		{"rising through", Player{X: 100, Y: 390, DY: -5, Width: 30, Height: 30}},
		{"entering from below", Player{X: 100, Y: 395, DY: 5, Width: 30, Height: 30}},
		{"beside the platform", Player{X: 810, Y: 374, DY: 5, Width: 30, Height: 30}},
		{"resting edge to edge", Player{X: 100, Y: 370, DY: 0, Width: 30, Height: 30}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.player
			p.Grounded = true
			y := p.Y

			if landed := resolveLandings(&p, ground); landed != NoPlatform {
				t.Errorf("landed = %d, expected none", landed)
			}
			if p.Grounded {
				t.Error("grounded should be recomputed to false")
			}
			if p.Y != y {
				t.Errorf("Y moved from %v to %v without a landing", y, p.Y)
			}
		})
	}
}

func TestLandingFirstCandidateWins(t *testing.T) {
	// Both platforms overlap the falling player. The first landing zeroes DY,
	// so the second one no longer qualifies.
	platforms := []Platform{
		{X: 0, Y: 402, Width: 200, Height: 20},
		{X: 0, Y: 400, Width: 200, Height: 20},
	}
	p := Player{X: 50, Y: 374, DY: 5, Width: 30, Height: 30}

	landed := resolveLandings(&p, platforms)

	if landed != 0 {
		t.Errorf("landed = %d, expected 0", landed)
	}
	if p.Y != 372 {
		t.Errorf("Y = %v, expected 372", p.Y)
	}
}

func TestGroundedImpliesZeroDY(t *testing.T) {
	platforms := []Platform{
		{X: 0, Y: 400, Width: 800, Height: 50},
		{X: 200, Y: 320, Width: 100, Height: 20},
	}
	ph := Physics{Gravity: 0.6, Friction: 0.8}
	p := Player{X: 180, Y: 0, Width: 30, Height: 30, Speed: 4, JumpForce: -12, Current: NoPlatform}

	for i := range 300 {
		in := Input{Right: i%40 < 10, Up: i%25 == 0}
		integrate(&p, in, ph)
		resolveLandings(&p, platforms)
		if p.Grounded && p.DY != 0 {
			t.Fatalf("frame %d: grounded with DY = %v", i, p.DY)
		}
	}
}

func TestClampHorizontal(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{-5, 0},
		{0, 0},
		{400, 400},
		{770, 770},
		{790, 770},
	}

	for _, tc := range tests {
		p := Player{X: tc.x, Width: 30}
		clampHorizontal(&p, 800)
		if p.X != tc.want {
			t.Errorf("clamp(%v) = %v, expected %v", tc.x, p.X, tc.want)
		}
	}
}

func TestCollectCoins(t *testing.T) {
	coins := []Coin{
		{X: 250, Y: 290, Radius: 10},
		{X: 450, Y: 230, Radius: 10},
	}

	// Corner nearest the first coin is (255, 300): 25+100 > 100.
	p := Player{X: 255, Y: 300, Width: 30, Height: 30}
	if got := collectCoins(&p, coins); len(got) != 0 {
		t.Fatalf("collected %v from outside the radius", got)
	}

	p.X, p.Y = 245, 295
	got := collectCoins(&p, coins)
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("collected %v, expected [0]", got)
	}
	if !coins[0].Collected || coins[1].Collected {
		t.Errorf("collected flags = %v, %v", coins[0].Collected, coins[1].Collected)
	}

	if got := collectCoins(&p, coins); len(got) != 0 {
		t.Errorf("coin collected twice: %v", got)
	}
	if !coins[0].Collected {
		t.Error("collected flag must stay set")
	}
}
