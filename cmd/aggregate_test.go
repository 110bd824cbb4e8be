package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		limit, n, want int
	}{
		{25, 100, 25},
		{25, 10, 10},
		{0, 10, 0},
		{-5, 10, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampLimit(tt.limit, tt.n), "limit=%d n=%d", tt.limit, tt.n)
	}
}
