package scaffold

import (
	"io"
	"strings"

	"github.com/ddddddO/gtree"

	"github.com/layerkit-labs/layerkit/internal/pathspec"
)

// WriteTree renders the specs of results as a directory tree under rootName.
// Entries refused for lacking the root marker are left out.
func WriteTree(w io.Writer, rootName string, results []Result) error {
	root := gtree.NewRoot(rootName)
	nodes := make(map[string]*gtree.Node)

	for _, res := range results {
		if res.Status == StatusRootMissing {
			continue
		}
		parent := root
		segments := res.Spec.Segments()
		for i, seg := range segments {
			key := strings.Join(segments[:i+1], pathspec.Separator)
			node, ok := nodes[key]
			if !ok {
				node = parent.Add(seg)
				nodes[key] = node
			}
			parent = node
		}
	}

	return gtree.OutputProgrammably(w, root)
}
