package partition

import "testing"

func TestSplitCoversExactly(t *testing.T) {
	cases := []struct{ height, workers int }{
		{0, 1}, {1, 1}, {10, 1}, {10, 3}, {10, 10}, {100, 7}, {3, 8},
	}
	for _, c := range cases {
		ranges := Split(c.height, c.workers)
		if len(ranges) != c.workers {
			t.Fatalf("Split(%d,%d): got %d ranges, want %d",
				c.height, c.workers, len(ranges), c.workers)
		}

		// Contiguous and non-overlapping: each range starts where the
		// previous one ended.
		next := 0
		for i, r := range ranges {
			if r.Start != next {
				t.Errorf("Split(%d,%d) range %d: starts at %d, want %d",
					c.height, c.workers, i, r.Start, next)
			}
			if r.End < r.Start {
				t.Errorf("Split(%d,%d) range %d: inverted %+v",
					c.height, c.workers, i, r)
			}
			next = r.End
		}
		if next != c.height {
			t.Errorf("Split(%d,%d): union ends at %d, want %d",
				c.height, c.workers, next, c.height)
		}
		if last := ranges[len(ranges)-1]; last.End != c.height {
			t.Errorf("Split(%d,%d): last End = %d, want %d",
				c.height, c.workers, last.End, c.height)
		}
	}
}

func TestSplitRemainderGoesToLast(t *testing.T) {
	ranges := Split(10, 3)
	want := []Range{{0, 3}, {3, 6}, {6, 10}}
	for i := range want {
		if ranges[i] != want[i] {
			t.Errorf("range %d: got %+v, want %+v", i, ranges[i], want[i])
		}
	}
}

func TestSplitMoreWorkersThanRows(t *testing.T) {
	ranges := Split(2, 5)
	empty := 0
	for _, r := range ranges {
		if r.Empty() {
			empty++
			if r.Len() != 0 {
				t.Errorf("empty range %+v has Len %d", r, r.Len())
			}
		}
	}
	if empty == 0 {
		t.Error("expected some empty ranges with workers > height")
	}
	if ranges[len(ranges)-1].End != 2 {
		t.Errorf("last End = %d, want 2", ranges[len(ranges)-1].End)
	}
}

func TestSplitClampsWorkers(t *testing.T) {
	ranges := Split(5, 0)
	if len(ranges) != 1 || ranges[0] != (Range{0, 5}) {
		t.Errorf("got %+v, want single full range", ranges)
	}
}

func TestDefaultWorkers(t *testing.T) {
	if DefaultWorkers() < 1 {
		t.Error("DefaultWorkers below 1")
	}
}
