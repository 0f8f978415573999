package parallel

import "sync/atomic"
import "testing"

import "github.com/pkg/errors"

func TestForEachVisitsAll(t *testing.T) {
	for _, limit := range []int{-1, 1, 3, 64} {
		var sum, running, peak atomic.Int64
		err := ForEach(100, limit, func(i int) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			sum.Add(int64(i))
			running.Add(-1)
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if sum.Load() != 4950 {
			t.Errorf("limit %d: sum %d", limit, sum.Load())
		}
		max := int64(limit)
		if max < 1 {
			max = 1
		}
		if peak.Load() > max {
			t.Errorf("limit %d: %d goroutines ran at once", limit, peak.Load())
		}
	}
}

func TestForEachFirstError(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int64
	err := ForEach(10, 4, func(i int) error {
		calls.Add(1)
		if i == 3 || i == 7 {
			return errors.Wrapf(boom, "job %d", i)
		}
		return nil
	})
	if errors.Cause(err) != boom || err.Error() != "job 3: boom" {
		t.Errorf("got %v", err)
	}
	if calls.Load() != 10 {
		t.Errorf("%d jobs ran", calls.Load())
	}
	if ForEach(0, 4, nil) != nil {
		t.Errorf("empty loop must not fail")
	}
}

func TestThreads(t *testing.T) {
	if Threads() < 1 {
		t.Errorf("got %d threads", Threads())
	}
	if CPU() == "" {
		t.Errorf("empty cpu name")
	}
}
