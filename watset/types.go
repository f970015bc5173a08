package watset

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/senseweave/watset/cluster"
	"github.com/senseweave/watset/simil"
)

// defaultSelfWeight is the default weight assigned to a sense's own item
// when disambiguating its context (spec.md §9, "Open question — self-weight
// constant"). Preserved as the default and exposed via WithSelfWeight.
const defaultSelfWeight = 1.0

// Sentinel errors for the Watset orchestrator (spec.md §7).
var (
	// ErrNotFitted is returned by Clusters and the read-only views when
	// called before Fit has completed successfully.
	ErrNotFitted = errors.New("watset: called before a successful Fit")

	// ErrCorruptSenseGraph indicates the assembled sense graph has fewer
	// edges than the input graph — a bug in the local/global clusterer or
	// similarity function, since every input edge must yield at least one
	// sense-level edge (spec.md §3/§4.7 step 4). Fatal.
	ErrCorruptSenseGraph = errors.New("watset: sense graph has fewer edges than the input graph")

	// ErrNilFactory indicates a nil local or global clusterer factory was
	// supplied, either as an explicit Option or left at the zero value.
	ErrNilFactory = errors.New("watset: local and global clusterer factories must be non-nil")

	// ErrNilSimilarity indicates a nil similarity function was supplied.
	ErrNilSimilarity = errors.New("watset: similarity function must be non-nil")
)

// Option configures a Watset instance via functional arguments, mirroring
// the lvlath packages' Option pattern (e.g. bfs.Option, dijkstra.Option).
type Option[V comparable] func(*Options[V])

// Options holds the tunable parameters of a Watset run.
type Options[V comparable] struct {
	// LocalFactory constructs the per-node local clusterer applied to each
	// vertex's ego network during sense induction (spec.md §4.6).
	LocalFactory cluster.Factory[V]

	// GlobalFactory constructs the clusterer applied to the assembled sense
	// graph (spec.md §4.7 step 5).
	GlobalFactory cluster.Factory[V]

	// Similarity scores two sparse context maps during disambiguation
	// (spec.md §4.3). Defaults to simil.Cosine.
	Similarity simil.Func[V]

	// SelfWeight is the weight given to the item x itself in a copy of the
	// context of a sense of x before that context is disambiguated
	// (spec.md §9). Defaults to 1.0.
	SelfWeight float64

	// Logger receives phase-boundary debug events (inventory built,
	// disambiguation complete, sense graph assembled). Defaults to a no-op
	// logger; the core algorithm does not otherwise log.
	Logger zerolog.Logger
}

// DefaultOptions returns an Options with cosine similarity, the self-weight
// default and a no-op logger; LocalFactory and GlobalFactory are left for
// the caller (or the With* options) to fill in, since there is no sensible
// default clusterer for a domain this generic.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Similarity: simil.Cosine[V],
		SelfWeight: defaultSelfWeight,
		Logger:     zerolog.Nop(),
	}
}

// WithLocalClusterer sets the local clusterer factory used for sense
// induction.
func WithLocalClusterer[V comparable](f cluster.Factory[V]) Option[V] {
	return func(o *Options[V]) { o.LocalFactory = f }
}

// WithGlobalClusterer sets the global clusterer factory used over the
// assembled sense graph.
func WithGlobalClusterer[V comparable](f cluster.Factory[V]) Option[V] {
	return func(o *Options[V]) { o.GlobalFactory = f }
}

// WithSimilarity overrides the default cosine context similarity.
func WithSimilarity[V comparable](f simil.Func[V]) Option[V] {
	return func(o *Options[V]) { o.Similarity = f }
}

// WithSelfWeight overrides the default self-weight constant (spec.md §9).
func WithSelfWeight[V comparable](w float64) Option[V] {
	return func(o *Options[V]) { o.SelfWeight = w }
}

// WithLogger attaches a zerolog.Logger for phase-boundary debug events.
func WithLogger[V comparable](l zerolog.Logger) Option[V] {
	return func(o *Options[V]) { o.Logger = l }
}
