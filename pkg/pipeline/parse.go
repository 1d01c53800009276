package pipeline

import (
	"github.com/matzehuels/slidegraph/pkg/graph"
)

// LoadGraph returns opts.Graph, or reads opts.GraphPath. Either way the
// graph is validated.
func LoadGraph(opts Options) (graph.Graph, error) {
	if opts.Graph != nil {
		if err := opts.Graph.Validate(); err != nil {
			return graph.Graph{}, err
		}
		return *opts.Graph, nil
	}
	return graph.ReadGraphFile(opts.GraphPath)
}
