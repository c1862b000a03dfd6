// Package centrality estimates betweenness-style centrality by sampling
// pivot nodes. Exact betweenness needs a shortest-path tree rooted at
// every node, which is infeasible for large networks; averaging the
// per-pivot dependency accumulation over uniformly sampled pivots gives
// an unbiased estimate of the same ranking.
package centrality

import (
	"github.com/bionetops/pathnet/lib/graph"
)

// An Estimator accumulates Brandes-style pair dependencies over a series
// of pivots. It reuses its scratch buffers between pivots and is not safe
// for concurrent use; each worker partition owns its own Estimator.
type Estimator struct {
	g      *graph.Graph
	scores []float64
	pivots int

	// scratch, reset per pivot
	dist  []int32
	sigma []float64
	delta []float64
	preds [][]int32
	stack []int32
	queue []int32
}

func NewEstimator(g *graph.Graph) *Estimator {
	n := g.NodeCount()
	return &Estimator{
		g:      g,
		scores: make([]float64, n),
		dist:   make([]int32, n),
		sigma:  make([]float64, n),
		delta:  make([]float64, n),
		preds:  make([][]int32, n),
		stack:  make([]int32, 0, n),
		queue:  make([]int32, 0, n),
	}
}

// AddPivot runs one round of Brandes' algorithm rooted at pivot: a
// breadth-first shortest-path phase counting path multiplicities, then a
// backward pass accumulating each node's dependency share. Every shortest
// path through a node contributes its fractional count, so tie-breaking
// among equal-length paths does not affect the result. The pivot itself
// receives no credit.
func (e *Estimator) AddPivot(pivot int32) {
	e.bfs(pivot)
	e.accumulate(pivot)
	e.pivots++
}

func (e *Estimator) bfs(pivot int32) {
	for i := range e.dist {
		e.dist[i] = -1
		e.sigma[i] = 0
		e.delta[i] = 0
		e.preds[i] = e.preds[i][:0]
	}
	e.stack = e.stack[:0]
	e.queue = e.queue[:0]

	e.dist[pivot] = 0
	e.sigma[pivot] = 1
	e.queue = append(e.queue, pivot)
	for len(e.queue) > 0 {
		v := e.queue[0]
		e.queue = e.queue[1:]
		e.stack = append(e.stack, v)
		for _, w := range e.g.Neighbors(v) {
			if e.dist[w] < 0 {
				e.dist[w] = e.dist[v] + 1
				e.queue = append(e.queue, w)
			}
			if e.dist[w] == e.dist[v]+1 {
				e.sigma[w] += e.sigma[v]
				e.preds[w] = append(e.preds[w], v)
			}
		}
	}
}

func (e *Estimator) accumulate(pivot int32) {
	for i := len(e.stack) - 1; i >= 0; i-- {
		w := e.stack[i]
		for _, v := range e.preds[w] {
			e.delta[v] += (e.sigma[v] / e.sigma[w]) * (1 + e.delta[w])
		}
		if w != pivot {
			e.scores[w] += e.delta[w]
		}
	}
}

// Scores returns the accumulated, unnormalized dependency scores indexed
// by node. Divide by Pivots for the centrality estimate.
func (e *Estimator) Scores() []float64 { return e.scores }

// Pivots returns the number of pivots processed so far.
func (e *Estimator) Pivots() int { return e.pivots }
