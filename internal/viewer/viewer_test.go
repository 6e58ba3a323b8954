// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import "testing"

func TestFitSize(t *testing.T) {
	for _, test := range []struct {
		w, h         int
		wantW, wantH float32
	}{
		{500, 600, 500, 600},
		{1500, 1800, 1000.0 * 1500 / 1800, 1000},
		{3000, 1000, 1000, 1000.0 / 3},
		{0, 0, 1000, 1000},
	} {
		gotW, gotH := fitSize(test.w, test.h, 1000, 1000)
		if d := gotW - test.wantW; d > 0.01 || d < -0.01 {
			t.Errorf("fitSize(%d, %d) = %v×%v, want %v×%v", test.w, test.h, gotW, gotH, test.wantW, test.wantH)
		}
		if d := gotH - test.wantH; d > 0.01 || d < -0.01 {
			t.Errorf("fitSize(%d, %d) = %v×%v, want %v×%v", test.w, test.h, gotW, gotH, test.wantW, test.wantH)
		}
	}
}
