// SPDX-License-Identifier: MIT

package commands

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/sparse"
)

// ErrMalformedEdge reports an edge-list line that is not two vertex indices
// and an optional weight.
var ErrMalformedEdge = errors.New("graphblas: malformed edge")

// defaultWeight is the weight of a line without a third field.
const defaultWeight = 1.0

// edgeList is a parsed edge-list file.
type edgeList struct {
	from, to []int
	weights  []float64
	vertices int // highest index + 1
}

// readEdgeList parses "from to [weight]" lines. Fields after the weight
// (labels) are ignored.
func readEdgeList(r io.Reader) (*edgeList, error) {
	l := &edgeList{}
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, errors.Wrapf(ErrMalformedEdge, "line %d: %q", line, text)
		}
		u, err := vertex(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		v, err := vertex(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		w := defaultWeight
		if len(fields) > 2 {
			if w, err = weight(fields[2]); err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
		}
		l.from = append(l.from, u)
		l.to = append(l.to, v)
		l.weights = append(l.weights, w)
		l.vertices = max(l.vertices, u+1, v+1)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read edge list")
	}
	return l, nil
}

func vertex(field string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return 0, errors.Wrapf(ErrMalformedEdge, "vertex %q is not a non-negative integer", field)
	}
	return n, nil
}

func weight(field string) (float64, error) {
	w, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, errors.Wrapf(ErrMalformedEdge, "weight %q is not a finite number", field)
	}
	return w, nil
}

// coordinates returns the edge coordinates, mirrored for undirected graphs.
func (l *edgeList) coordinates(undirected bool) (rows, cols []int, weights []float64) {
	if !undirected {
		return l.from, l.to, l.weights
	}
	rows = append(append(make([]int, 0, 2*len(l.from)), l.from...), l.to...)
	cols = append(append(make([]int, 0, 2*len(l.to)), l.to...), l.from...)
	weights = append(append(make([]float64, 0, 2*len(l.weights)), l.weights...), l.weights...)
	return rows, cols, weights
}

// adjacency builds an n×n pattern matrix, n being the larger of vertices
// and what the edges need. Repeated edges collapse into one entry.
func (l *edgeList) adjacency(ctx *sparse.Context, vertices int, undirected bool) (*sparse.Matrix[bool], error) {
	rows, cols, _ := l.coordinates(undirected)
	vals := make([]bool, len(rows))
	for i := range vals {
		vals[i] = true
	}
	list, err := sparse.MatrixElementListFromSlices(rows, cols, vals)
	if err != nil {
		return nil, err
	}
	n := max(vertices, l.vertices)
	return sparse.NewMatrixFromElementList(ctx, sparse.Size{Rows: n, Cols: n}, list, algebra.LogicalOr[bool]())
}

// weighted builds an n×n weight matrix. Repeated edges keep the cheapest
// weight.
func (l *edgeList) weighted(ctx *sparse.Context, vertices int, undirected bool) (*sparse.Matrix[float64], error) {
	rows, cols, weights := l.coordinates(undirected)
	list, err := sparse.MatrixElementListFromSlices(rows, cols, weights)
	if err != nil {
		return nil, err
	}
	n := max(vertices, l.vertices)
	return sparse.NewMatrixFromElementList(ctx, sparse.Size{Rows: n, Cols: n}, list, algebra.Min[float64]())
}

// loadGraph reads the edge list named by path ("-" is stdin) and builds
// its adjacency matrix using the --vertices flag.
func loadGraph(cmd *cobra.Command, ctx *sparse.Context, path string, undirected bool) (*sparse.Matrix[bool], error) {
	l, vertices, err := readGraph(cmd, path)
	if err != nil {
		return nil, err
	}
	return l.adjacency(ctx, vertices, undirected)
}

// loadWeighted is loadGraph for weighted edge lists.
func loadWeighted(cmd *cobra.Command, ctx *sparse.Context, path string, undirected bool) (*sparse.Matrix[float64], error) {
	l, vertices, err := readGraph(cmd, path)
	if err != nil {
		return nil, err
	}
	return l.weighted(ctx, vertices, undirected)
}

func readGraph(cmd *cobra.Command, path string) (*edgeList, int, error) {
	vertices, err := cmd.Flags().GetInt(flagVertices)
	if err != nil {
		return nil, 0, err
	}
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, 0, errors.Wrap(err, "open edge list")
		}
		defer f.Close()
		r = f
	}
	l, err := readEdgeList(r)
	if err != nil {
		return nil, 0, errors.Wrap(err, path)
	}
	return l, vertices, nil
}
