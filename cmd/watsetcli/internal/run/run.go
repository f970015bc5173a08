// Package run wires a parsed edge list through Watset and produces the
// report the CLI prints.
package run

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/senseweave/watset/cluster"
	"github.com/senseweave/watset/cluster/together"
	"github.com/senseweave/watset/cmd/watsetcli/internal/config"
	"github.com/senseweave/watset/cmd/watsetcli/internal/report"
	"github.com/senseweave/watset/maxmax"
	"github.com/senseweave/watset/watset"
	"github.com/senseweave/watset/wgraph"
)

// Cluster reads the CSV edge list at path (from,to,weight, no header),
// builds a graph from it, runs Watset with the algorithms named in opts,
// and returns the projected item clusters as a report.Result.
func Cluster(ctx context.Context, path string, opts config.Options, logger zerolog.Logger) (report.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return report.Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := parseEdgeList(f)
	if err != nil {
		return report.Result{}, fmt.Errorf("parse %s: %w", path, err)
	}
	logger.Info().Int("vertices", g.Order()).Int("edges", g.Size()).Msg("graph loaded")

	local, err := factory(opts.LocalAlgorithm)
	if err != nil {
		return report.Result{}, err
	}
	global, err := factory(opts.GlobalAlgorithm)
	if err != nil {
		return report.Result{}, err
	}

	w, err := watset.New[string](
		watset.WithLocalClusterer(local),
		watset.WithGlobalClusterer(global),
		watset.WithSelfWeight[string](opts.SelfWeight),
		watset.WithLogger[string](logger),
	)
	if err != nil {
		return report.Result{}, fmt.Errorf("configure watset: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return report.Result{}, err
	}
	if err := w.Fit(g); err != nil {
		return report.Result{}, fmt.Errorf("fit: %w", err)
	}

	clusters, err := w.Clusters()
	if err != nil {
		return report.Result{}, fmt.Errorf("clusters: %w", err)
	}

	return report.FromItemClusters(g.Order(), clusters), nil
}

// parseEdgeList reads CSV rows of the form "from,to,weight" into a
// wgraph.Graph[string], building it through a Builder so a repeated edge
// last-write-wins like the rest of the module's graph construction.
func parseEdgeList(r io.Reader) (*wgraph.Graph[string], error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	b := wgraph.NewBuilder[string]()
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}

		weight, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("weight %q: %w", record[2], err)
		}
		if err := b.Edge(record[0], record[1], weight); err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", record[0], record[1], err)
		}
	}

	return b.Build(), nil
}

func factory(name string) (cluster.Factory[string], error) {
	switch name {
	case "together":
		return together.New[string], nil
	case "maxmax":
		return func() cluster.Clusterer[string] { return maxmax.New[string]() }, nil
	default:
		return nil, fmt.Errorf("factory: unknown algorithm %q", name)
	}
}
