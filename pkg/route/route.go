package route

import (
	"cmp"
	"slices"

	"github.com/matzehuels/slidegraph/pkg/geom"
)

// Connector is a routed edge.
type Connector struct {
	From   string     `json:"from"`
	To     string     `json:"to"`
	Source Anchor     `json:"source"`
	Target Anchor     `json:"target"`
	Begin  geom.Point `json:"begin"`
	End    geom.Point `json:"end"`
	Style  Style      `json:"style"`
}

// Candidate is one scored anchor pair.
type Candidate struct {
	Source, Target Anchor
	Begin, End     geom.Point
	DistSq         float64
}

// Pairs returns all 36 anchor pairs between src and dst in enumeration
// order: every target anchor for the first source anchor, then the next.
func Pairs(src, dst Endpoints) []Candidate {
	out := make([]Candidate, 0, len(Candidates)*len(Candidates))
	for _, s := range Candidates {
		begin := src.Resolve(s)
		for _, t := range Candidates {
			end := dst.Resolve(t)
			out = append(out, Candidate{
				Source: s, Target: t,
				Begin: begin, End: end,
				DistSq: begin.DistSq(end),
			})
		}
	}
	return out
}

// Shortest returns the first pair with minimal squared distance.
func Shortest(src, dst Endpoints) Candidate {
	return slices.MinFunc(Pairs(src, dst), func(a, b Candidate) int {
		return cmp.Compare(a.DistSq, b.DistSq)
	})
}

// Route connects src to dst with the shortest anchor pair.
func Route(src, dst Endpoints, style Style) Connector {
	best := Shortest(src, dst)
	return Connector{
		Source: best.Source,
		Target: best.Target,
		Begin:  best.Begin,
		End:    best.End,
		Style:  style,
	}
}
