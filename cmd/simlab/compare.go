package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/simlab"
)

type compareFlags struct {
	docsPath string
	methods  []string
	top      int
	fusion   string
	segment  bool
	workers  int
	json     bool
}

func newCompareCmd(c *cli) *cobra.Command {
	var f compareFlags

	cmd := &cobra.Command{
		Use:   "compare <query...>",
		Short: "Rank documents against a query under every method",
		Long: `Rank documents against a query under every method.

Without --docs the built-in ten sample sentences are used. A docs file ending
in .yaml, .yml or .json holds either a list of strings or a "documents" list;
any other file holds one document per non-blank line (lines starting with #
are skipped).`,
		Example: `  simlab compare brown fox
  simlab compare --docs corpus.yaml --methods jaccard,tfidf --top 3 "neural networks"
  simlab compare --fusion reciprocal_rank --json the weather`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, c, f, strings.Join(args, " "))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.docsPath, "docs", "", "file with the documents to compare against")
	flags.StringSliceVar(&f.methods, "methods", nil, "comma-separated methods to run (default all)")
	flags.IntVar(&f.top, "top", 0, "show only the best N results per method (0 shows all)")
	flags.StringVar(&f.fusion, "fusion", "", "also print a consensus ranking: weighted_sum, reciprocal_rank, max or min")
	flags.BoolVar(&f.segment, "segment", false, "tokenize with NFKC normalization and UAX#29 word segmentation")
	flags.IntVar(&f.workers, "workers", 0, "parallel scoring workers (0 uses GOMAXPROCS)")
	flags.BoolVar(&f.json, "json", false, "print the comparison as JSON")

	return cmd
}

func runCompare(cmd *cobra.Command, c *cli, f compareFlags, query string) error {
	opts := []simlab.ComparerOption{simlab.WithWorkers(f.workers)}

	if len(f.methods) > 0 {
		kinds := make([]simlab.MethodKind, 0, len(f.methods))
		for _, m := range f.methods {
			kind, err := simlab.ParseMethodKind(strings.TrimSpace(m))
			if err != nil {
				return err
			}
			kinds = append(kinds, kind)
		}
		opts = append(opts, simlab.WithMethods(kinds...))
	}
	if f.segment {
		opts = append(opts, simlab.WithTokenizer(simlab.SegmentingTokenizer{}))
	}

	var fusion simlab.Fusion
	if f.fusion != "" {
		var err error
		if fusion, err = simlab.NewFusion(simlab.FusionKind(f.fusion), nil); err != nil {
			return err
		}
	}

	var docs []string
	if f.docsPath != "" {
		var err error
		if docs, err = loadDocuments(f.docsPath); err != nil {
			return err
		}
		c.logger.Debug("loaded documents", "path", f.docsPath, "count", len(docs))
	}

	cmp, err := simlab.NewComparer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create comparer: %w", err)
	}

	start := time.Now()
	res, err := cmp.Compare(query, docs)
	if err != nil {
		return fmt.Errorf("failed to compare: %w", err)
	}
	c.logger.Debug("comparison finished",
		"query", query,
		"documents", len(res.Documents),
		"methods", len(res.Rankings),
		"elapsed", time.Since(start))

	for _, r := range res.Rankings {
		if r.Err != nil {
			c.logger.Warn("method failed", "method", r.Kind, "err", r.Err)
		}
	}

	var consensus []simlab.Result
	if fusion != nil {
		consensus = res.Consensus(fusion)
	}

	out := cmd.OutOrStdout()
	if f.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if fusion == nil {
			return enc.Encode(res)
		}
		return enc.Encode(struct {
			Comparison *simlab.Comparison `json:"comparison"`
			Fusion     simlab.FusionKind  `json:"fusion"`
			Consensus  []simlab.Result    `json:"consensus"`
		}{res, fusion.Kind(), consensus})
	}

	p := newPrinter(out)
	p.comparison(res, f.top)
	if fusion != nil {
		p.consensus(fusion.Kind(), consensus, f.top)
	}
	return nil
}
