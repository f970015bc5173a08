package watset

import (
	"fmt"
	"sync"

	"github.com/senseweave/watset/cluster"
	"github.com/senseweave/watset/induction"
	"github.com/senseweave/watset/sense"
	"github.com/senseweave/watset/wgraph"
)

// Watset runs the meta-clustering algorithm of spec.md §4.7 over a single
// graph. It satisfies cluster.Clusterer[V]; construct one instance with
// New, call Fit(g) once, then read Clusters() or the derived read-only
// views (Inventory, Contexts, SenseGraph) exposed after a successful run.
//
// Re-fitting an instance discards and recomputes all derived state
// (spec.md §3's "recompute from scratch" lifecycle for I, C, H).
type Watset[V comparable] struct {
	opts Options[V]

	fitted     bool
	inventory  sense.Inventory[V]
	contexts   sense.Contexts[V]
	senseGraph *wgraph.Graph[sense.ID[V]]
	clusters   []map[V]struct{}
}

var _ cluster.Clusterer[string] = (*Watset[string])(nil)

// New constructs an unfitted Watset instance from the given options.
// Returns an error immediately if LocalFactory, GlobalFactory, or
// Similarity is nil. The two factories have no default for a generic
// vertex type, so a caller must supply them via options; Similarity
// defaults to simil.Cosine and is nil only when set so explicitly.
func New[V comparable](opts ...Option[V]) (*Watset[V], error) {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.LocalFactory == nil || o.GlobalFactory == nil {
		return nil, ErrNilFactory
	}
	if o.Similarity == nil {
		return nil, ErrNilSimilarity
	}

	return &Watset[V]{opts: o}, nil
}

// senseResult is one vertex's worth of phase-1 output; kept in an
// index-addressed slice (not a map) during the fan-out so goroutines never
// need to serialize writes against each other.
type senseResult[V comparable] struct {
	item     V
	contexts []map[V]float64
	err      error
}

// disambiguateResult is one sense's worth of phase-2 output.
type disambiguateResult[V comparable] struct {
	id      sense.ID[V]
	context map[sense.ID[V]]float64
	err     error
}

// Fit runs Watset's five stages over g (spec.md §4.7):
//
//  1. Sense inventory construction: induce senses for every vertex of g in
//     parallel (one goroutine per vertex), joined by a WaitGroup before any
//     result is read — the happens-before barrier spec.md §5 requires.
//  2. Context disambiguation: for every induced sense, disambiguate its
//     context against the now-complete inventory, again fanned out across
//     one goroutine per sense and joined before assembly.
//  3. Sense graph assembly: build an undirected weighted graph over every
//     sense, with edges from each sense's disambiguated context
//     (last-write-wins on a repeated edge, matching wgraph.Graph.AddEdge).
//  4. Invariant check: the sense graph must have at least as many edges as
//     g, or ErrCorruptSenseGraph is returned.
//  5. Global clustering + projection: fit the global clusterer on the sense
//     graph and map each sense cluster back to a set of items.
//
// Complexity: O(Σ_x Σ_{y∈N(x)} deg(y)) to build the ego networks for
// induction plus the local clusterer's cost on each, O(Σ_s |context(s)|) for
// disambiguation, O(|senses|+|edges(H)|) for assembly, plus the global
// clusterer's own cost on H.
func (w *Watset[V]) Fit(g *wgraph.Graph[V]) error {
	inventory, err := w.induceInventory(g)
	if err != nil {
		return fmt.Errorf("watset: sense induction: %w", err)
	}
	w.opts.Logger.Debug().Int("items", len(inventory)).Msg("sense inventory built")

	contexts, err := w.disambiguateContexts(inventory)
	if err != nil {
		return fmt.Errorf("watset: disambiguation: %w", err)
	}
	w.opts.Logger.Debug().Int("senses", len(contexts)).Msg("context disambiguation complete")

	senseGraph := assembleSenseGraph(contexts)
	if senseGraph.Size() < g.Size() {
		return fmt.Errorf("watset: %w (%d < %d)", ErrCorruptSenseGraph, senseGraph.Size(), g.Size())
	}
	w.opts.Logger.Debug().Int("vertices", senseGraph.Order()).Int("edges", senseGraph.Size()).Msg("sense graph assembled")

	global := w.opts.GlobalFactory()
	if err := global.Fit(senseGraph); err != nil {
		return fmt.Errorf("watset: global clustering: %w", err)
	}
	senseClusters, err := global.Clusters()
	if err != nil {
		return fmt.Errorf("watset: global clustering: %w", err)
	}

	w.inventory = inventory
	w.contexts = contexts
	w.senseGraph = senseGraph
	w.clusters = projectClusters(senseClusters)
	w.fitted = true

	return nil
}

// induceInventory implements spec.md §4.7 step 1: parallel sense induction
// across every vertex of g, assembled into a dense, per-item sense
// inventory after the fan-out barrier. An item with zero induced senses
// (no neighbors, or a local clusterer that produced no clusters) still gets
// exactly one synthesized sense, (x,0), with an empty context — every item
// of g must appear in the inventory so it can be disambiguated and
// projected back to in step 6.
func (w *Watset[V]) induceInventory(g *wgraph.Graph[V]) (sense.Inventory[V], error) {
	vertices := g.VertexOrder()
	results := make([]senseResult[V], len(vertices))

	var wg sync.WaitGroup
	wg.Add(len(vertices))
	for i, x := range vertices {
		go func(i int, x V) {
			defer wg.Done()
			contexts, err := induction.Induce(g, x, w.opts.LocalFactory)
			results[i] = senseResult[V]{item: x, contexts: contexts, err: err}
		}(i, x)
	}
	wg.Wait()

	inventory := make(sense.Inventory[V], len(vertices))
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		if len(r.contexts) == 0 {
			inventory[r.item] = map[sense.ID[V]]map[V]float64{
				sense.New(r.item, 0): {},
			}
			continue
		}

		senses := make(map[sense.ID[V]]map[V]float64, len(r.contexts))
		for i, ctx := range r.contexts {
			senses[sense.New(r.item, i)] = ctx
		}
		inventory[r.item] = senses
	}

	return inventory, nil
}

// disambiguateContexts implements spec.md §4.7 step 2: parallel
// disambiguation across every sense in inventory, including the
// zero-neighbor synthesized senses induceInventory already inserted.
func (w *Watset[V]) disambiguateContexts(inventory sense.Inventory[V]) (sense.Contexts[V], error) {
	type job struct {
		id      sense.ID[V]
		context map[V]float64
	}

	jobs := make([]job, 0)
	for _, senses := range inventory {
		for s, ctx := range senses {
			jobs = append(jobs, job{id: s, context: ctx})
		}
	}

	results := make([]disambiguateResult[V], len(jobs))
	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for i, j := range jobs {
		go func(i int, j job) {
			defer wg.Done()

			ctx := make(map[V]float64, len(j.context)+1)
			for k, v := range j.context {
				ctx[k] = v
			}
			ctx[j.id.Item()] = w.opts.SelfWeight

			disambiguated, err := sense.Disambiguate(inventory, w.opts.Similarity, ctx, map[V]struct{}{j.id.Item(): {}})
			results[i] = disambiguateResult[V]{id: j.id, context: disambiguated, err: err}
		}(i, j)
	}
	wg.Wait()

	contexts := make(sense.Contexts[V], len(jobs))
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		contexts[r.id] = r.context
	}

	return contexts, nil
}

// assembleSenseGraph implements spec.md §4.7 step 3: every sense in
// domain(C) is a vertex, and every (s,t,w) in C is an undirected edge,
// last-write-wins on a repeated pair (builder semantics, spec.md §3/§9).
func assembleSenseGraph[V comparable](contexts sense.Contexts[V]) *wgraph.Graph[sense.ID[V]] {
	b := wgraph.NewBuilder[sense.ID[V]]()
	for s := range contexts {
		b.Vertex(s)
	}
	for s, ctx := range contexts {
		for t, w := range ctx {
			// AddEdge errors only on self-loops or invalid weights; neither
			// occurs here (t != s since exclude removed s's own item, and w
			// came from a validated input graph edge weight).
			_ = b.Edge(s, t, w)
		}
	}

	return b.Build()
}

// projectClusters implements spec.md §4.7 step 6: each sense cluster maps
// to the set of items its senses belong to.
func projectClusters[V comparable](senseClusters []map[sense.ID[V]]struct{}) []map[V]struct{} {
	out := make([]map[V]struct{}, 0, len(senseClusters))
	for _, sc := range senseClusters {
		items := make(map[V]struct{}, len(sc))
		for s := range sc {
			items[s.Item()] = struct{}{}
		}
		out = append(out, items)
	}

	return out
}

// Clusters returns the projected item clusters from the most recent Fit, or
// ErrNotFitted if Fit has not yet run.
func (w *Watset[V]) Clusters() ([]map[V]struct{}, error) {
	if !w.fitted {
		return nil, ErrNotFitted
	}

	return w.clusters, nil
}

// Inventory returns a read-only view of the sense inventory built by the
// most recent Fit. Returns ErrNotFitted if Fit has not yet run.
func (w *Watset[V]) Inventory() (sense.Inventory[V], error) {
	if !w.fitted {
		return nil, ErrNotFitted
	}

	return w.inventory, nil
}

// Contexts returns a read-only view of the disambiguated contexts built by
// the most recent Fit. Returns ErrNotFitted if Fit has not yet run.
func (w *Watset[V]) Contexts() (sense.Contexts[V], error) {
	if !w.fitted {
		return nil, ErrNotFitted
	}

	return w.contexts, nil
}

// SenseGraph returns the sense graph assembled by the most recent Fit.
// Returns ErrNotFitted if Fit has not yet run.
func (w *Watset[V]) SenseGraph() (*wgraph.Graph[sense.ID[V]], error) {
	if !w.fitted {
		return nil, ErrNotFitted
	}

	return w.senseGraph, nil
}
