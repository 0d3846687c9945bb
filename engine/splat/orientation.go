package splat

import (
	"github.com/chewxy/math32"
	"github.com/meshsplat/meshsplat/common"
)

// normalFrame builds a row-major orthonormal 3x3 matrix whose columns are a
// tangent frame for the given unit surface normal: column 0 and 1 span the
// tangent plane, column 2 is the normal itself.
//
// The tangent is derived from the world up axis, switching to +X when the
// normal is nearly parallel to up so the cross product stays well-conditioned.
func normalFrame(n common.Vec3) [9]float32 {
	up := common.Vec3{Y: 1}
	if math32.Abs(n.Y) > 0.999 {
		up = common.Vec3{X: 1}
	}
	t1 := up.Cross(n).Normalized()
	t2 := n.Cross(t1)

	return [9]float32{
		t1.X, t2.X, n.X,
		t1.Y, t2.Y, n.Y,
		t1.Z, t2.Z, n.Z,
	}
}
