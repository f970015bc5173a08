// Package report renders a clustering result as YAML.
package report

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Cluster is one fuzzy cluster in the output document: a sorted member
// list, kept as a slice (rather than a set) purely for stable YAML output.
type Cluster struct {
	Members []string `yaml:"members"`
}

// Result is the top-level YAML document watsetcli prints.
type Result struct {
	Items    int       `yaml:"items"`
	Clusters []Cluster `yaml:"clusters"`
}

// FromItemClusters converts Watset's projected item clusters into a Result,
// sorting both the member list within each cluster and the clusters
// themselves (by first member) for deterministic output across runs.
func FromItemClusters(items int, clusters []map[string]struct{}) Result {
	out := make([]Cluster, 0, len(clusters))
	for _, c := range clusters {
		members := make([]string, 0, len(c))
		for m := range c {
			members = append(members, m)
		}
		sort.Strings(members)
		out = append(out, Cluster{Members: members})
	}

	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Members) == 0 || len(out[j].Members) == 0 {
			return len(out[i].Members) < len(out[j].Members)
		}
		return out[i].Members[0] < out[j].Members[0]
	})

	return Result{Items: items, Clusters: out}
}

// WriteYAML encodes result as YAML to w.
func WriteYAML(w io.Writer, result Result) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}

	return nil
}
