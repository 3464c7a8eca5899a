package terrain

import (
	"context"

	"github.com/skypies/geo"
)

// Sampler wraps a Query with a last-request-wins staleness guard. During a
// fast drag, move events issue overlapping height requests; a response that
// comes back after a newer request has been issued is stale and must be
// discarded, or the tool flickers through outdated intermediate distances.
//
// Single-threaded like the rest of the event loop: Begin and the staleness
// check happen on the input thread, only the height fetch itself may be
// concurrent.

type Token uint64

type Sampler struct {
	Q    Query
	last Token
}

func NewSampler(q Query) *Sampler {
	return &Sampler{Q: q}
}

// Begin registers a new request, superseding all earlier ones.
func (s *Sampler)Begin() Token {
	s.last++
	return s.last
}

// Current reports whether t is still the newest request.
func (s *Sampler)Current(t Token) bool { return t == s.last }

// HeightAt fetches a height for the request t. ok is false when the response
// came back stale (a newer request was begun meanwhile); callers skip the
// tick entirely in that case.
func (s *Sampler)HeightAt(ctx context.Context, t Token, ll geo.Latlong) (height float64, ok bool, err error) {
	h,err := s.Q.HeightAt(ctx, ll)
	if err != nil {
		return 0, false, err
	}
	if !s.Current(t) {
		return 0, false, nil
	}
	return h, true, nil
}
