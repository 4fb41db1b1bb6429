package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAt(t *testing.T) {
	s := []string{"a", "b", "c"}

	tests := []struct {
		name   string
		index  int
		want   string
		wantOK bool
	}{
		{name: "first", index: 0, want: "a", wantOK: true},
		{name: "last", index: 2, want: "c", wantOK: true},
		{name: "past_end", index: 3, want: "", wantOK: false},
		{name: "negative", index: -1, want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := At(s, tt.index)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAt_NilSlice(t *testing.T) {
	var s []int
	_, ok := At(s, 0)
	assert.False(t, ok)
}

func TestContainsAll(t *testing.T) {
	assert.True(t, ContainsAll([]int{1, 2, 3}, []int{3, 1}))
	assert.True(t, ContainsAll([]int{1, 2, 3}, nil))
	assert.True(t, ContainsAll[int](nil, nil))
	assert.False(t, ContainsAll([]int{1, 2}, []int{2, 4}))
	assert.False(t, ContainsAll(nil, []int{1}))
}

func TestIsSame(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{name: "same_order", a: []string{"x", "y"}, b: []string{"x", "y"}, want: true},
		{name: "different_order", a: []string{"x", "y"}, b: []string{"y", "x"}, want: true},
		{name: "duplicates_ignored", a: []string{"x", "x", "y"}, b: []string{"y", "x"}, want: true},
		{name: "subset", a: []string{"x"}, b: []string{"x", "y"}, want: false},
		{name: "disjoint", a: []string{"x"}, b: []string{"z"}, want: false},
		{name: "both_empty", a: nil, b: []string{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSame(tt.a, tt.b))
		})
	}
}
