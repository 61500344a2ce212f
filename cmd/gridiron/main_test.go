package main

import "testing"

func TestClampRetries(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{30, 30},
	}

	for _, tc := range cases {
		if got := clampRetries(tc.in); got != tc.want {
			t.Errorf("clampRetries(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
