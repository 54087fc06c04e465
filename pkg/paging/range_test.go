package paging

import (
	"reflect"
	"testing"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		want     []int
	}{
		{"single", 1, 1, []int{1}},
		{"ascending", 3, 7, []int{3, 4, 5, 6, 7}},
		{"zero based", 0, 2, []int{0, 1, 2}},
		{"negative", -2, 1, []int{-2, -1, 0, 1}},
		{"empty when reversed", 5, 4, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Range(tt.min, tt.max)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Range(%d, %d) = %v, want %v", tt.min, tt.max, got, tt.want)
			}
		})
	}
}
