package httpresp

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{30, 15, 2},
		{31, 15, 3},
		{5, 0, 0},
	}

	for _, c := range cases {
		if got := TotalPages(c.total, c.perPage); got != c.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", c.total, c.perPage, got, c.want)
		}
	}
}
