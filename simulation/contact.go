package simulation

import (
	"github.com/automoto/kickoff/tags"
	"github.com/solarlune/resolv"
)

// bodyPad widens every box past the circle's bounding square. resolv maps a
// box to cells through X+W-1, so two unpadded boxes overlapping by under a
// pixel can land in different cells.
const bodyPad = 1

// newBody returns a broad phase body bounding the circle at (x, y).
func newBody(x, y, r float64, resolvTags ...string) *resolv.Object {
	size := 2 * (r + bodyPad)
	obj := resolv.NewObject(x-r-bodyPad, y-r-bodyPad, size, size, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	return obj
}

// syncBody moves a broad phase body so its box bounds the circle at (x, y).
func syncBody(obj *resolv.Object, x, y, r float64) {
	if obj == nil {
		return
	}
	obj.X = x - r - bodyPad
	obj.Y = y - r - bodyPad
	obj.Update()
}

// nearBall is the broad phase: it reports whether the body shares a space
// cell with the ball. Entities without a body always pass through to the
// exact circle test.
func nearBall(obj *resolv.Object) bool {
	if obj == nil || obj.Space == nil {
		return true
	}
	return obj.Check(0, 0, tags.ResolvBall) != nil
}
