// internal/utils/math.go
package utils

import (
	"math"

	"go-tower-sim/internal/types"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Dist2 returns the squared distance between (ax, ay) and (bx, by).
func Dist2(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// Dist returns the euclidean distance between two points.
func Dist(ax, ay, bx, by float64) float64 {
	return math.Sqrt(Dist2(ax, ay, bx, by))
}

// PointToSegmentDistance returns the distance from p to the closest point of segment ab.
// A degenerate segment (a == b) is treated as the point a.
func PointToSegmentDistance(px, py, ax, ay, bx, by float64) float64 {
	abx := bx - ax
	aby := by - ay
	apx := px - ax
	apy := py - ay
	ab2 := abx*abx + aby*aby
	t := 0.0
	if ab2 != 0 {
		t = Clamp((apx*abx+apy*aby)/ab2, 0, 1)
	}
	cx := ax + t*abx
	cy := ay + t*aby
	return Dist(px, py, cx, cy)
}

// SegmentCircleHit сообщает, пересекает ли отрезок (x1,y1)-(x2,y2) окружность (cx,cy,r).
// Засчитывается только пересечение границы в пределах отрезка (t в [0,1]).
// Отрезок нулевой длины не пересекает ничего.
func SegmentCircleHit(x1, y1, x2, y2, cx, cy, r float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	fx := x1 - cx
	fy := y1 - cy
	a := dx*dx + dy*dy
	if a == 0 {
		return false
	}
	b := 2 * (fx*dx + fy*dy)
	c := fx*fx + fy*fy - r*r
	disc := b*b - 4*a*c
	if disc < 0 {
		return false
	}
	disc = math.Sqrt(disc)
	t1 := (-b - disc) / (2 * a)
	t2 := (-b + disc) / (2 * a)
	return (t1 >= 0 && t1 <= 1) || (t2 >= 0 && t2 <= 1)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Round1 rounds to one decimal place, for display values.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// NearPolyline reports whether (x, y) is closer than r to any segment of path.
func NearPolyline(path []types.Vec2, x, y, r float64) bool {
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		if PointToSegmentDistance(x, y, a.X, a.Y, b.X, b.Y) < r {
			return true
		}
	}
	return false
}
