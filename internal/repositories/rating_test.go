package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRating(t *testing.T) {
	cases := []struct {
		mean float64
		want float64
	}{
		{0, 0},
		{5, 5},
		{4.0, 4.0},
		{13.0 / 3.0, 4.3},
		{14.0 / 3.0, 4.7},
		{4.25, 4.3},
		{4.24, 4.2},
		{1.0 / 3.0, 0.3},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, RoundRating(tc.mean), 1e-9, "mean %v", tc.mean)
	}
}
