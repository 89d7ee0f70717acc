package gamemath

import "math"

// MinDistance is the separation below which a direction is treated as undefined.
const MinDistance = 1e-6

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// CirclesOverlap reports whether two circles intersect. Touching circles do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

// Direction returns the unit vector pointing from (fromX, fromY) to (toX, toY)
// and the distance between them. ok is false when the points are closer than
// MinDistance and no direction can be derived.
func Direction(fromX, fromY, toX, toY float64) (dirX, dirY, dist float64, ok bool) {
	dx := toX - fromX
	dy := toY - fromY
	dist = math.Hypot(dx, dy)
	if dist < MinDistance {
		return 0, 0, dist, false
	}
	return dx / dist, dy / dist, dist, true
}

// Magnitude returns the length of a vector.
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// ClampMagnitude rescales (x, y) so that its length does not exceed max.
// The direction is preserved.
func ClampMagnitude(x, y, max float64) (float64, float64) {
	m := math.Hypot(x, y)
	if m <= max || m == 0 {
		return x, y
	}
	scale := max / m
	return x * scale, y * scale
}

// ClampFloat clamps v to [min, max].
func ClampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampCircle keeps a circle's centre inside a width x height rectangle
// anchored at the origin, so the whole circle stays within it.
func ClampCircle(x, y, radius, width, height float64) (float64, float64) {
	return ClampFloat(x, radius, width-radius), ClampFloat(y, radius, height-radius)
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
