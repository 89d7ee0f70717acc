package simulation

import (
	"math/rand"
	"testing"

	"github.com/automoto/kickoff/shared/gamemath"
	"github.com/automoto/kickoff/tags"
	"github.com/solarlune/resolv"
)

func TestBroadPhaseKeepsEveryOverlap(t *testing.T) {
	const ballR, agentR = 10.0, 20.0
	space := resolv.NewSpace(960, 540, cellSize, cellSize)
	ball := newBody(480, 270, ballR, tags.ResolvBall)
	agent := newBody(240, 270, agentR, tags.ResolvAgent, tags.ResolvPlayer)
	space.Add(ball, agent)

	rng := rand.New(rand.NewSource(11))
	contacts := 0
	for i := 0; i < 100000; i++ {
		bx := ballR + rng.Float64()*(960-2*ballR)
		by := ballR + rng.Float64()*(540-2*ballR)
		ax := bx + (rng.Float64()*2-1)*(ballR+agentR+1)
		ay := by + (rng.Float64()*2-1)*(ballR+agentR+1)
		if !gamemath.CirclesOverlap(ax, ay, agentR, bx, by, ballR) {
			continue
		}
		contacts++

		syncBody(ball, bx, by, ballR)
		syncBody(agent, ax, ay, agentR)
		if !nearBall(agent) {
			t.Fatalf("broad phase missed overlap: ball (%v, %v) agent (%v, %v)", bx, by, ax, ay)
		}
	}
	if contacts == 0 {
		t.Fatalf("no overlapping placements were generated")
	}
}

func TestBroadPhaseMissesCellMargin(t *testing.T) {
	ball := newBody(480, 270, 10, tags.ResolvBall)
	agent := newBody(100, 100, 20, tags.ResolvAgent)
	space := resolv.NewSpace(960, 540, cellSize, cellSize)
	space.Add(ball, agent)

	if nearBall(agent) {
		t.Fatalf("distant agent passed the broad phase")
	}
}

func TestBroadPhaseWithoutBodyPassesThrough(t *testing.T) {
	if !nearBall(nil) {
		t.Fatalf("nil body should fall through to the exact test")
	}
}
