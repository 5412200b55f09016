//go:build unit

package queries_test

import (
	"testing"

	"gearshare/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestPage_Normalize(t *testing.T) {
	cases := []struct {
		name string
		in   queries.Page
		want queries.Page
	}{
		{"zero value falls back to defaults", queries.Page{}, queries.DefaultPage()},
		{"negative from becomes zero", queries.Page{From: -3, Size: 5}, queries.Page{From: 0, Size: 5}},
		{"oversized size is clamped", queries.Page{From: 0, Size: queries.MaxPageSize + 1}, queries.Page{From: 0, Size: queries.MaxPageSize}},
		{"usable window is untouched", queries.Page{From: 20, Size: 5}, queries.Page{From: 20, Size: 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}

func TestPage_Cut(t *testing.T) {
	cases := []struct {
		name   string
		page   queries.Page
		n      int
		wantLo int
		wantHi int
	}{
		{"full first page", queries.Page{From: 0, Size: 10}, 3, 0, 3},
		{"middle window", queries.Page{From: 1, Size: 2}, 5, 1, 3},
		{"window past the end is empty", queries.Page{From: 10, Size: 10}, 4, 4, 4},
		{"window ending past the end is truncated", queries.Page{From: 3, Size: 10}, 5, 3, 5},
		{"zero rows", queries.Page{From: 0, Size: 10}, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := tc.page.Cut(tc.n)
			assert.Equal(t, tc.wantLo, lo)
			assert.Equal(t, tc.wantHi, hi)
		})
	}
}
