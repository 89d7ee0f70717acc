package simulation

import (
	"math"
	"testing"

	"github.com/automoto/kickoff/components"
	cfg "github.com/automoto/kickoff/config"
)

func testAgent(x, y, speed float64) *components.AgentData {
	return &components.AgentData{X: x, Y: y, Radius: 20, Speed: speed}
}

func TestMovePlayerAxesAreIndependent(t *testing.T) {
	a := testAgent(200, 200, 5)

	MovePlayer(a, Controls{Up: true, Right: true}, testField())
	if a.X != 205 || a.Y != 195 {
		t.Fatalf("position = (%v, %v), want (205, 195)", a.X, a.Y)
	}

	MovePlayer(a, Controls{Up: true, Down: true}, testField())
	if a.X != 205 || a.Y != 195 {
		t.Fatalf("opposite keys moved the agent to (%v, %v)", a.X, a.Y)
	}
}

func TestMovePlayerStopsFlushWithEdge(t *testing.T) {
	a := testAgent(22, 518, 5)

	MovePlayer(a, Controls{Left: true, Down: true}, testField())

	if a.X != 20 || a.Y != 520 {
		t.Fatalf("position = (%v, %v), want (20, 520)", a.X, a.Y)
	}
}

func TestPursueBallMovesAtSpeed(t *testing.T) {
	a := testAgent(720, 270, 4)
	b := testBall(480, 270, 0, 0)

	PursueBall(a, b, testField(), 10)

	if a.X != 716 || a.Y != 270 {
		t.Fatalf("position = (%v, %v), want (716, 270)", a.X, a.Y)
	}
}

func TestPursueBallHoldsInsideDeadZone(t *testing.T) {
	a := testAgent(515, 270, 4)
	b := testBall(480, 270, 0, 0)

	PursueBall(a, b, testField(), 10)

	if a.X != 515 {
		t.Fatalf("agent moved inside the dead zone to %v", a.X)
	}
}

func TestKickAddsImpulseAlongCentreLine(t *testing.T) {
	a := testAgent(100, 100, 0)
	b := testBall(109, 112, 1, 1)

	if !Kick(a, b, 5) {
		t.Fatalf("expected contact")
	}
	if math.Abs(b.SpeedX-4) > eps || math.Abs(b.SpeedY-5) > eps {
		t.Fatalf("velocity = (%v, %v), want (4, 5)", b.SpeedX, b.SpeedY)
	}
}

func TestKickRequiresOverlap(t *testing.T) {
	a := testAgent(100, 100, 0)
	b := testBall(130, 100, 0, 0)

	if Kick(a, b, cfg.Rules.ShootPower) {
		t.Fatalf("touching circles should not kick")
	}
	if b.SpeedX != 0 || b.SpeedY != 0 {
		t.Fatalf("ball moved: (%v, %v)", b.SpeedX, b.SpeedY)
	}
}

func TestKickSkipsCoincidentCentres(t *testing.T) {
	a := testAgent(100, 100, 0)
	b := testBall(100, 100, 0, 0)

	if Kick(a, b, 8) {
		t.Fatalf("coincident centres should not kick")
	}
	if b.SpeedX != 0 || b.SpeedY != 0 {
		t.Fatalf("ball moved: (%v, %v)", b.SpeedX, b.SpeedY)
	}
}
