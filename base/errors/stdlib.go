// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "errors"

// As is [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }
