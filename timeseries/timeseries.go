// Package timeseries yields evenly spaced epochs between two instants.
//
// A series counts from its start: the first value is start itself and each
// following value is one step later. An exclusive series stops strictly
// before end, an inclusive one may land exactly on it. The step may be
// negative when end precedes start.
package timeseries

import (
	"fmt"
	"iter"
	"math"
	"math/big"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/epoch"
)

type TimeSeries struct {
	start     epoch.Epoch
	end       epoch.Epoch
	step      duration.Duration
	inclusive bool

	// front and back are the offsets from start of the next values Next and
	// NextBack would yield. The series is exhausted once they cross.
	front duration.Duration
	back  duration.Duration
	done  bool
}

// Exclusive returns the series start, start+step, ... stopping before end.
func Exclusive(start, end epoch.Epoch, step duration.Duration) TimeSeries {
	return newSeries(start, end, step, false)
}

// Inclusive returns the series start, start+step, ... up to and including end.
func Inclusive(start, end epoch.Epoch, step duration.Duration) TimeSeries {
	return newSeries(start, end, step, true)
}

func newSeries(start, end epoch.Epoch, step duration.Duration, inclusive bool) TimeSeries {
	ts := TimeSeries{start: start, end: end, step: step, inclusive: inclusive}
	n := count(end.Sub(start), step, inclusive)
	if n.Sign() == 0 {
		ts.done = true
		return ts
	}
	last := step.TotalNanoseconds()
	last.Mul(last, n.Sub(n, big.NewInt(1)))
	ts.back, _ = duration.FromTotalNanoseconds(last)
	return ts
}

// count returns how many values a series over span yields.
func count(span, step duration.Duration, inclusive bool) *big.Int {
	n := new(big.Int)
	if step.IsZero() {
		return n
	}
	if span.IsZero() {
		if inclusive {
			n.SetInt64(1)
		}
		return n
	}
	if span.Signum() != step.Signum() {
		return n
	}
	q, r := new(big.Int).QuoRem(span.Abs().TotalNanoseconds(), step.Abs().TotalNanoseconds(), new(big.Int))
	switch {
	case r.Sign() != 0:
		return q.Add(q, big.NewInt(1))
	case inclusive:
		return q.Add(q, big.NewInt(1))
	default:
		return q
	}
}

func (ts TimeSeries) Start() epoch.Epoch { return ts.start }

func (ts TimeSeries) End() epoch.Epoch { return ts.end }

func (ts TimeSeries) Step() duration.Duration { return ts.step }

func (ts TimeSeries) IsInclusive() bool { return ts.inclusive }

// Next returns the next value from the front, or false once exhausted.
func (ts *TimeSeries) Next() (epoch.Epoch, bool) {
	if ts.done {
		return epoch.Epoch{}, false
	}
	e := ts.start.Add(ts.front)
	ts.done = ts.front == ts.back
	ts.front = ts.front.Add(ts.step)
	return e, true
}

// NextBack returns the next value from the back, or false once exhausted.
func (ts *TimeSeries) NextBack() (epoch.Epoch, bool) {
	if ts.done {
		return epoch.Epoch{}, false
	}
	e := ts.start.Add(ts.back)
	ts.done = ts.front == ts.back
	ts.back = ts.back.Sub(ts.step)
	return e, true
}

// Len returns the number of values left, clamped to math.MaxInt.
func (ts TimeSeries) Len() int {
	if ts.done {
		return 0
	}
	n := ts.back.Sub(ts.front).TotalNanoseconds()
	n.Quo(n, ts.step.TotalNanoseconds())
	n.Add(n, big.NewInt(1))
	if !n.IsInt64() || n.Int64() > math.MaxInt {
		return math.MaxInt
	}
	return int(n.Int64())
}

// All yields the remaining values front to back without consuming ts.
func (ts TimeSeries) All() iter.Seq[epoch.Epoch] {
	return func(yield func(epoch.Epoch) bool) {
		s := ts
		for e, ok := s.Next(); ok; e, ok = s.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward yields the remaining values back to front without consuming ts.
func (ts TimeSeries) Backward() iter.Seq[epoch.Epoch] {
	return func(yield func(epoch.Epoch) bool) {
		s := ts
		for e, ok := s.NextBack(); ok; e, ok = s.NextBack() {
			if !yield(e) {
				return
			}
		}
	}
}

// Collect returns the remaining values front to back.
func (ts TimeSeries) Collect() []epoch.Epoch {
	out := make([]epoch.Epoch, 0, min(ts.Len(), 1<<16))
	for e := range ts.All() {
		out = append(out, e)
	}
	return out
}

// String renders the series bounds, e.g.
// "TimeSeries [2017-01-14T00:00:00 UTC : 2017-01-14T10:00:00 UTC : 2 h]".
func (ts TimeSeries) String() string {
	last := ts.end
	if !ts.inclusive {
		last = ts.end.Add(ts.step.Neg())
	}
	return fmt.Sprintf("TimeSeries [%s : %s : %s]", ts.start, last, ts.step)
}
