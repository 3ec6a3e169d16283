// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Pose contains the full specification of position, scale and orientation,
// always relative to the parent element.
type Pose struct {

	// Pos is the position of center of element (relative to parent).
	Pos Vector3 `json:"pos" yaml:"pos" toml:"pos"`

	// Scale is the scale (relative to parent).
	Scale Vector3 `json:"scale" yaml:"scale" toml:"scale"`

	// Quat is the rotation specified as a Quat (relative to parent).
	Quat Quat `json:"quat" yaml:"quat" toml:"quat"`
}

// NewPose returns an identity pose at the given position.
func NewPose(x, y, z float32) Pose {
	ps := Pose{Pos: Vec3(x, y, z)}
	ps.Defaults()
	return ps
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale.IsNil() {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(Vec3(x, y, z), DegToRad(angle))
}

// Mul returns the pose of child expressed in the coordinates of the parent of ps,
// i.e., applying child relative to ps.
func (ps Pose) Mul(child Pose) Pose {
	ps.Defaults()
	child.Defaults()
	return Pose{
		Pos:   ps.Pos.Add(child.Pos.Mul(ps.Scale).MulQuat(ps.Quat)),
		Scale: ps.Scale.Mul(child.Scale),
		Quat:  ps.Quat.Mul(child.Quat),
	}
}

// Transform applies the pose to the given point.
func (ps Pose) Transform(pt Vector3) Vector3 {
	ps.Defaults()
	return ps.Pos.Add(pt.Mul(ps.Scale).MulQuat(ps.Quat))
}
