// SPDX-License-Identifier: MIT

package optimise

import (
	"fmt"

	"github.com/katalvlaran/certmin/domain"
	"github.com/katalvlaran/certmin/interval"
)

// Kind says where a candidate came from.
type Kind int

const (
	// Stationary: all partial derivatives vanish; no coordinate is fixed.
	Stationary Kind = iota
	// Face: stationary within a face of the domain (some coordinates fixed
	// at a bound, some free).
	Face
	// Corner: every coordinate fixed at a bound.
	Corner
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Stationary:
		return "stationary"
	case Face:
		return "face"
	case Corner:
		return "corner"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Candidate is a certified candidate minimiser in original coordinates.
//   - Point encloses the point; Value encloses f over Point.
//   - Tags[i] names the reference interval coordinate i was found in.
//   - Clipped is set when the solver's enclosure reached outside D and was
//     cut back to it. Point then encloses the stationary point only if that
//     point is feasible; Value still encloses f over Point.
type Candidate struct {
	Point   interval.Vector
	Value   interval.Interval
	Kind    Kind
	Tags    []domain.RegionTag
	Clipped bool
}

// Status of a Result.
type Status int

const (
	// Found: Point and Value hold the certified minimum.
	Found Status = iota
	// NoRealSolution: no certifiable candidate exists.
	NoRealSolution
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NoRealSolution:
		return "no real solution"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of Minimise.
//   - Candidates: every certifiable candidate considered, in scan order.
//   - Contenders: candidates that cannot be proved worse than the minimum.
//   - Report: what the search established per region.
type Result struct {
	Status     Status
	Point      interval.Vector
	Value      interval.Interval
	Kind       Kind
	Clipped    bool
	Candidates []Candidate
	Contenders []Candidate
	Report     Report
}

// selectMinimum reduces candidates to the certified minimum.
//
// Only a CertainlyTrue comparison replaces the running best; Indeterminate
// and CertainlyFalse keep it. After the scan, every candidate not certainly
// worse than the best is reported as a contender.
func selectMinimum(cands []Candidate) Result {
	valid := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Value.Certifiable() {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return Result{Status: NoRealSolution}
	}

	best := 0
	for i := 1; i < len(valid); i++ {
		switch interval.Less(valid[i].Value, valid[best].Value) {
		case interval.CertainlyTrue:
			best = i
		case interval.CertainlyFalse, interval.Indeterminate:
		}
	}

	res := Result{
		Status:     Found,
		Point:      valid[best].Point,
		Value:      valid[best].Value,
		Kind:       valid[best].Kind,
		Clipped:    valid[best].Clipped,
		Candidates: valid,
	}
	for i, c := range valid {
		if i == best {
			continue
		}
		switch interval.Less(valid[best].Value, c.Value) {
		case interval.CertainlyTrue:
		case interval.CertainlyFalse, interval.Indeterminate:
			res.Contenders = append(res.Contenders, c)
		}
	}

	return res
}
