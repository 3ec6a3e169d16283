// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command composer loads a parts registry and composes scenes from it.
package main

func main() {
	execute()
}
