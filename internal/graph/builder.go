// Package graph builds a file-level import graph from scan results.
package graph

import (
	"errors"
	"fmt"
	"io"
	"path"
	"sort"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/mvp-joe/project-atlas/internal/indexer"
	"github.com/mvp-joe/project-atlas/internal/indexer/extraction"
)

// ImportGraph is a directed graph of parsed files linked by resolved imports.
type ImportGraph struct {
	graph graph.Graph[string, *Node]

	nodes []*Node
	edges []Edge

	// Reverse indexes for O(1) lookups
	dependencies map[string][]string // file -> [imported files]
	dependents   map[string][]string // file -> [importing files]

	unresolved int
}

// Build creates the import graph for every successfully parsed file.
// Imports that do not map to a parsed file are counted but get no edge.
func Build(folders []indexer.FolderResult) (*ImportGraph, error) {
	g := &ImportGraph{
		graph:        graph.New(func(n *Node) string { return n.ID }, graph.Directed()),
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
	}

	type pending struct {
		node    *Node
		imports []string
	}
	var work []pending
	var ids []string

	for _, f := range folders {
		for _, d := range f.Details {
			if d.Err != nil {
				continue
			}
			node := &Node{ID: d.Path, Folder: path.Dir(d.Path), Language: d.Language}
			if err := g.graph.AddVertex(node); err != nil {
				return nil, fmt.Errorf("failed to add node %s: %w", node.ID, err)
			}
			g.nodes = append(g.nodes, node)
			ids = append(ids, node.ID)
			work = append(work, pending{node: node, imports: importsOf(d.Elements)})
		}
	}

	idx := newFileIndex(ids)
	for _, w := range work {
		for _, imp := range w.imports {
			to, ok := idx.resolve(w.node.Language, w.node.Folder, imp)
			if !ok {
				g.unresolved++
				continue
			}
			if to == w.node.ID {
				continue
			}
			err := g.graph.AddEdge(w.node.ID, to, graph.EdgeAttribute("label", imp))
			if errors.Is(err, graph.ErrEdgeAlreadyExists) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to add edge %s -> %s: %w", w.node.ID, to, err)
			}
			g.edges = append(g.edges, Edge{From: w.node.ID, To: to, Import: imp})
			g.dependencies[w.node.ID] = append(g.dependencies[w.node.ID], to)
			g.dependents[to] = append(g.dependents[to], w.node.ID)
		}
	}

	return g, nil
}

func importsOf(elements []extraction.Element) []string {
	var out []string
	for _, el := range elements {
		switch e := el.(type) {
		case extraction.FileImports:
			out = append(out, e.Imports...)
		case extraction.MarkupFile:
			out = append(out, e.Imports...)
		}
	}
	return out
}

// Nodes returns the files in the graph in scan order.
func (g *ImportGraph) Nodes() []*Node {
	return g.nodes
}

// Edges returns the resolved imports in the order they were added.
func (g *ImportGraph) Edges() []Edge {
	return g.edges
}

// Dependencies returns the files imported by id, sorted.
func (g *ImportGraph) Dependencies(id string) []string {
	return sortedCopy(g.dependencies[id])
}

// Dependents returns the files importing id, sorted.
func (g *ImportGraph) Dependents(id string) []string {
	return sortedCopy(g.dependents[id])
}

// Summary reports graph size, the top most-imported files and import cycles.
func (g *ImportGraph) Summary(top int) (*Summary, error) {
	s := &Summary{
		Files:      len(g.nodes),
		Edges:      len(g.edges),
		Unresolved: g.unresolved,
	}

	for id, from := range g.dependents {
		s.MostUsed = append(s.MostUsed, Ranked{ID: id, Count: len(from)})
	}
	sort.Slice(s.MostUsed, func(i, j int) bool {
		if s.MostUsed[i].Count != s.MostUsed[j].Count {
			return s.MostUsed[i].Count > s.MostUsed[j].Count
		}
		return s.MostUsed[i].ID < s.MostUsed[j].ID
	})
	if top > 0 && len(s.MostUsed) > top {
		s.MostUsed = s.MostUsed[:top]
	}

	components, err := graph.StronglyConnectedComponents(g.graph)
	if err != nil {
		return nil, fmt.Errorf("failed to find cycles: %w", err)
	}
	for _, c := range components {
		if len(c) < 2 {
			continue
		}
		sort.Strings(c)
		s.Cycles = append(s.Cycles, c)
	}
	sort.Slice(s.Cycles, func(i, j int) bool { return s.Cycles[i][0] < s.Cycles[j][0] })

	return s, nil
}

// WriteDOT writes the graph in Graphviz DOT format.
func (g *ImportGraph) WriteDOT(w io.Writer) error {
	if err := draw.DOT(g.graph, w); err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}
	return nil
}

func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
