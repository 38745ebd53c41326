package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/vmath"
)

const tolerance = 1e-9

func newPaddle(x, y float64) core.Paddle {
	return core.Paddle{Position: vmath.V2(x, y), PreviousPosition: vmath.V2(x, y), Radius: 40}
}

func TestResolveNoContact(t *testing.T) {
	resolvers := map[string]CollisionResolver{
		"push":     NewPushResolver(),
		"specular": NewSpecularResolver(),
	}

	for name, r := range resolvers {
		puck := core.Puck{Position: vmath.V2(404, 203), Velocity: vmath.V2(4, 3), Radius: 15}
		before := puck

		if r.Resolve(&puck, newPaddle(600, 200), vmath.Vec2{}) {
			t.Errorf("%s: unexpected hit at distance %f", name, puck.Position.Distance(vmath.V2(600, 200)))
		}
		if puck != before {
			t.Errorf("%s: puck mutated without contact", name)
		}
	}
}

func TestResolveExactContactIsNoop(t *testing.T) {
	puck := core.Puck{Position: vmath.V2(155, 200), Velocity: vmath.V2(-1, 0), Radius: 15}
	if NewPushResolver().Resolve(&puck, newPaddle(100, 200), vmath.Vec2{}) {
		t.Error("distance equal to radius sum must not collide")
	}
}

// Incoming normal component is negated, tangential component unchanged
func TestReflectionLawStaticPaddle(t *testing.T) {
	rng := vmath.NewFastRand(1234)
	paddle := newPaddle(200, 200)

	for i := 0; i < 500; i++ {
		angle := rng.Float64() * 2 * math.Pi
		depth := 1 + rng.Float64()*50 // inside contact range
		pos := paddle.Position.Add(vmath.V2(math.Cos(angle), math.Sin(angle)).Scale(depth))
		vel := vmath.V2(rng.Float64()*16-8, rng.Float64()*16-8)

		puck := core.Puck{Position: pos, Velocity: vel, Radius: 15}
		normal, _ := pos.Sub(paddle.Position).Normalize()
		tangent := normal.Perpendicular()

		if !NewPushResolver().Resolve(&puck, paddle, vmath.Vec2{}) {
			t.Fatalf("iteration %d: expected hit at depth %f", i, depth)
		}

		if got, want := puck.Velocity.Dot(normal), -vel.Dot(normal); math.Abs(got-want) > 1e-6 {
			t.Errorf("iteration %d: normal component %f, want %f", i, got, want)
		}
		if got, want := puck.Velocity.Dot(tangent), vel.Dot(tangent); math.Abs(got-want) > 1e-6 {
			t.Errorf("iteration %d: tangent component %f, want %f", i, got, want)
		}
	}
}

func TestNonPenetration(t *testing.T) {
	rng := vmath.NewFastRand(99)
	resolvers := []CollisionResolver{NewPushResolver(), NewSpecularResolver()}

	for _, r := range resolvers {
		for i := 0; i < 500; i++ {
			paddle := newPaddle(100+rng.Float64()*600, 50+rng.Float64()*300)
			offset := vmath.V2(rng.Float64()*120-60, rng.Float64()*120-60)
			puck := core.Puck{
				Position: paddle.Position.Add(offset),
				Velocity: vmath.V2(rng.Float64()*10-5, rng.Float64()*10-5),
				Radius:   15,
			}
			paddleVel := vmath.V2(rng.Float64()*20-10, rng.Float64()*20-10)

			r.Resolve(&puck, paddle, paddleVel)

			if d := puck.Position.Distance(paddle.Position); d < puck.Radius+paddle.Radius-tolerance {
				t.Fatalf("%T iteration %d: penetration, distance %f", r, i, d)
			}
			if !puck.Position.IsFinite() || !puck.Velocity.IsFinite() {
				t.Fatalf("%T iteration %d: non-finite state %+v", r, i, puck)
			}
		}
	}
}

func TestResolveSeparationGap(t *testing.T) {
	paddle := newPaddle(100, 200)
	puck := core.Puck{Position: vmath.V2(140, 200), Velocity: vmath.V2(-3, 0), Radius: 15}

	NewPushResolver().Resolve(&puck, paddle, vmath.Vec2{})

	want := vmath.V2(100+55+0.1, 200)
	if !puck.Position.ApproxEqual(want, tolerance) {
		t.Errorf("position = %+v, want %+v", puck.Position, want)
	}
	if !puck.Velocity.ApproxEqual(vmath.V2(3, 0), tolerance) {
		t.Errorf("velocity = %+v, want (3,0)", puck.Velocity)
	}
}

func TestResolveZeroDistance(t *testing.T) {
	paddle := newPaddle(100, 200)
	puck := core.Puck{Position: vmath.V2(100, 200), Velocity: vmath.V2(-2, 1), Radius: 15}

	if !NewPushResolver().Resolve(&puck, paddle, vmath.Vec2{}) {
		t.Fatal("expected hit")
	}

	if !puck.Position.IsFinite() || !puck.Velocity.IsFinite() {
		t.Fatalf("non-finite state after degenerate contact: %+v", puck)
	}
	want := paddle.Position.Add(DefaultNormal.Scale(55.1))
	if !puck.Position.ApproxEqual(want, tolerance) {
		t.Errorf("position = %+v, want %+v", puck.Position, want)
	}
	// Reflected along default normal
	if !puck.Velocity.ApproxEqual(vmath.V2(2, 1), tolerance) {
		t.Errorf("velocity = %+v, want (2,1)", puck.Velocity)
	}
}

func TestYield(t *testing.T) {
	puck := core.Puck{Position: vmath.V2(200, 16), Radius: 15}

	paddle := newPaddle(200, 60)
	if !Yield(&paddle, puck, 0.1) {
		t.Fatal("overlapping paddle should yield")
	}
	if !paddle.Position.ApproxEqual(vmath.V2(200, 16+55.1), tolerance) {
		t.Errorf("position = %+v, want (200,71.1)", paddle.Position)
	}
	if puck.Position != vmath.V2(200, 16) {
		t.Errorf("puck moved: %+v", puck.Position)
	}

	// Second call is a no-op once separated
	before := paddle.Position
	if Yield(&paddle, puck, 0.1) || paddle.Position != before {
		t.Errorf("separated paddle moved to %+v", paddle.Position)
	}

	// Coincident centers use the opposite of the default normal
	paddle = newPaddle(200, 16)
	Yield(&paddle, puck, 0.1)
	if !paddle.Position.ApproxEqual(vmath.V2(200-55.1, 16), tolerance) {
		t.Errorf("degenerate yield = %+v", paddle.Position)
	}
}

func TestYieldVertical(t *testing.T) {
	puck := core.Puck{Position: vmath.V2(200, 16), Radius: 15}
	paddle := newPaddle(230, 60)

	if !YieldVertical(&paddle, puck, 0.1) {
		t.Fatal("overlapping paddle should yield")
	}
	if paddle.Position.X != 230 {
		t.Errorf("x changed to %v", paddle.Position.X)
	}
	if d := paddle.Position.Sub(puck.Position).Length(); math.Abs(d-55.1) > tolerance {
		t.Errorf("distance = %v, want 55.1", d)
	}
	if paddle.Position.Y <= puck.Position.Y {
		t.Errorf("paddle crossed the puck: %+v", paddle.Position)
	}

	if YieldVertical(&paddle, puck, 0.1) {
		t.Error("separated paddle yielded again")
	}
}

func TestPushTransfer(t *testing.T) {
	tests := []struct {
		name      string
		paddleVel vmath.Vec2
		wantVel   vmath.Vec2
	}{
		// Normal is +X; reflected velocity (2,0) plus 0.5 * 6
		{"approaching", vmath.V2(6, 0), vmath.V2(5, 0)},
		// Retreating paddle adds nothing
		{"retreating", vmath.V2(-6, 0), vmath.V2(2, 0)},
		// Tangential paddle motion has no normal component
		{"sliding", vmath.V2(0, 8), vmath.V2(2, 0)},
		// Only the normal share of a diagonal push transfers
		{"diagonal", vmath.V2(4, 4), vmath.V2(4, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddle := newPaddle(100, 200)
			puck := core.Puck{Position: vmath.V2(150, 200), Velocity: vmath.V2(-2, 0), Radius: 15}

			NewPushResolver().Resolve(&puck, paddle, tt.paddleVel)

			if !puck.Velocity.ApproxEqual(tt.wantVel, tolerance) {
				t.Errorf("velocity = %+v, want %+v", puck.Velocity, tt.wantVel)
			}
		})
	}
}

func TestSpecularIgnoresPaddleMotion(t *testing.T) {
	paddle := newPaddle(100, 200)
	puck := core.Puck{Position: vmath.V2(150, 200), Velocity: vmath.V2(-2, 0), Radius: 15}

	NewSpecularResolver().Resolve(&puck, paddle, vmath.V2(10, 0))

	if !puck.Velocity.ApproxEqual(vmath.V2(2, 0), tolerance) {
		t.Errorf("velocity = %+v, want (2,0)", puck.Velocity)
	}
}

func TestNewResolver(t *testing.T) {
	if r, err := NewResolver(""); err != nil {
		t.Errorf("default model: %v", err)
	} else if _, ok := r.(*PushResolver); !ok {
		t.Errorf("default model = %T, want *PushResolver", r)
	}

	if r, err := NewResolver("specular"); err != nil {
		t.Errorf("specular: %v", err)
	} else if _, ok := r.(*SpecularResolver); !ok {
		t.Errorf("specular model = %T", r)
	}

	if _, err := NewResolver("elastic"); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestIntegrate(t *testing.T) {
	puck := core.Puck{Position: vmath.V2(400, 200), Velocity: vmath.V2(4, 3), Radius: 15}
	Integrate(&puck)
	if puck.Position != vmath.V2(404, 203) {
		t.Errorf("position = %+v, want (404,203)", puck.Position)
	}
	if puck.Velocity != vmath.V2(4, 3) {
		t.Errorf("velocity changed: %+v", puck.Velocity)
	}
}
