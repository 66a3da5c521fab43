package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   *float64
	}{
		{name: "empty returns nil", values: nil, want: nil},
		{name: "single value", values: []float64{7}, want: ptr(7)},
		{name: "simple mean", values: []float64{10, 20, 30}, want: ptr(20)},
		{name: "zeros are data", values: []float64{0, 0}, want: ptr(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mean(tt.values)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   *float64
	}{
		{name: "empty returns nil", values: nil, want: nil},
		{name: "odd length", values: []float64{1, 2, 3, 4, 5}, want: ptr(3)},
		{name: "even length averages center", values: []float64{1, 2, 3, 4}, want: ptr(2.5)},
		{name: "unsorted input", values: []float64{5, 1, 4, 2, 3}, want: ptr(3)},
		{name: "single value", values: []float64{42}, want: ptr(42)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Median(tt.values)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestMedianPermutationInvariant(t *testing.T) {
	perms := [][]float64{
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{3, 1, 5, 2, 4},
	}
	for _, p := range perms {
		got := Median(p)
		require.NotNil(t, got)
		assert.Equal(t, 3.0, *got)
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{9, 1, 5}
	Median(values)
	assert.Equal(t, []float64{9, 1, 5}, values)
}

func ptr(v float64) *float64 { return &v }
