// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-5

func assertVec(t *testing.T, want, got Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
}

func TestPoseDefaults(t *testing.T) {
	var ps Pose
	ps.Defaults()
	assert.Equal(t, Vec3(1, 1, 1), ps.Scale)
	assert.Equal(t, NewQuat(0, 0, 0, 1), ps.Quat)

	ps.Scale.Set(2, 2, 2)
	ps.Defaults()
	assert.Equal(t, Vector3Scalar(2), ps.Scale)
}

func TestMulQuat(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90))
	assertVec(t, Vec3(0, 0, -1), Vec3(1, 0, 0).MulQuat(q))
}

func TestPoseMul(t *testing.T) {
	parent := NewPose(1, 0, 0)
	parent.Scale.Set(2, 2, 2)
	child := NewPose(0, 1, 0)
	w := parent.Mul(child)
	assertVec(t, Vec3(1, 2, 0), w.Pos)
	assertVec(t, Vec3(2, 2, 2), w.Scale)

	rot := Pose{}
	rot.SetAxisRotation(0, 0, 1, 90)
	assertVec(t, Vec3(0, 1, 0), rot.Transform(Vec3(1, 0, 0)))
}

func TestVectorOps(t *testing.T) {
	v := Vec3(3, 4, 0)
	assert.InDelta(t, 5, v.Length(), tol)
	assertVec(t, Vec3(0.6, 0.8, 0), v.Normal())
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	assert.Equal(t, Vec3(2, 3, 4), Vec3(1, 1, 1).Add(Vec3(1, 2, 3)))
	assert.Equal(t, "(1, 2, 3)", Vec3(1, 2, 3).String())
}
