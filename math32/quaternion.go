// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Quat is quaternion with X,Y,Z and W components.
type Quat struct {
	X float32 `json:"x" yaml:"x" toml:"x"`
	Y float32 `json:"y" yaml:"y" toml:"y"`
	Z float32 `json:"z" yaml:"z" toml:"z"`
	W float32 `json:"w" yaml:"w" toml:"w"`
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// NewQuatAxisAngle returns a new quaternion from given axis and angle rotation (radians).
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	nq := Quat{}
	nq.SetFromAxisAngle(axis, angle)
	return nq
}

// IsNil returns true if all values are 0 (uninitialized).
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// SetIdentity sets this quanternion to the identity quaternion.
func (q *Quat) SetIdentity() {
	q.X = 0
	q.Y = 0
	q.Z = 0
	q.W = 1
}

// SetFromAxisAngle sets this quaternion with the rotation
// specified by the given axis and angle (radians).
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	axis = axis.Normal()
	halfAngle := angle / 2
	s := Sin(halfAngle)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = Cos(halfAngle)
}

// Mul returns the multiplication of this quaternion by other.
func (q Quat) Mul(other Quat) Quat {
	qax, qay, qaz, qaw := q.X, q.Y, q.Z, q.W
	qbx, qby, qbz, qbw := other.X, other.Y, other.Z, other.W
	return Quat{
		qax*qbw + qaw*qbx + qay*qbz - qaz*qby,
		qay*qbw + qaw*qby + qaz*qbx - qax*qbz,
		qaz*qbw + qaw*qbz + qax*qby - qay*qbx,
		qaw*qbw - qax*qbx - qay*qby - qaz*qbz,
	}
}
