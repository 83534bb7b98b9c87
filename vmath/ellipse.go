package vmath

// Ellipse utilities for eye overlays and terminator containment

// EllipseDistSq returns normalized squared distance for ellipse containment
// Result <= 1 means the point is inside the ellipse
func EllipseDistSq(dx, dy, rx, ry float64) float64 {
	nx := dx / rx
	ny := dy / ry
	return nx*nx + ny*ny
}

// EllipseContains returns true if point (dx, dy) from the ellipse center is
// inside or on the boundary
func EllipseContains(dx, dy, rx, ry float64) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	return EllipseDistSq(dx, dy, rx, ry) <= 1
}
