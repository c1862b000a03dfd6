package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/pkg/browser"

	"github.com/bionetops/pathnet/lib"
	"github.com/bionetops/pathnet/lib/graphml"
	"github.com/bionetops/pathnet/lib/reporter"
	"github.com/bionetops/pathnet/lib/settings"
)

func main() {
	file := flag.String("file", "", "Path to the GraphML network file")
	output := flag.String("output", "./network_analysis.html", "Output file path")
	format := flag.String("format", settings.FormatHTML, "Output report format (html or txt)")
	noOpen := flag.Bool("no-open", false, "Don't automatically open the report")
	iterations := flag.Int("iterations", 100, "Number of path sampling iterations")
	centralitySamples := flag.Int("centrality-samples", 100, "Number of centrality pivots")
	threshold := flag.Float64("threshold", 0.9, "Ubiquity cutoff on normalized frequency or centrality")
	randomNodes := flag.Int("random-nodes", 0, "Number of nodes to select randomly")
	nodeList := flag.String("node-list", "", "Comma-separated list of specific nodes to analyze")
	nodeType := flag.String("node-type", "", "Restrict random or full selection to nodes of this type")
	disableBlacklist := flag.Bool("disable-blacklist", false, "Disable the default metabolite blacklist")
	seed := flag.Int64("seed", 0, "Random seed; 0 derives one from the clock")
	workers := flag.Int("workers", 0, "Number of parallel workers; 0 means one per CPU")
	flag.Parse()

	if *file == "" {
		log.Fatal("the -file flag is required")
	}

	cfg := settings.AnalysisSettings{
		Iterations:        *iterations,
		CentralitySamples: *centralitySamples,
		Threshold:         *threshold,
		RandomNodes:       *randomNodes,
		NodeType:          *nodeType,
		DisableBlacklist:  *disableBlacklist,
		Seed:              *seed,
		Workers:           *workers,
	}
	if *nodeList != "" {
		for _, id := range strings.Split(*nodeList, ",") {
			id = strings.TrimSpace(id)
			if id != "" {
				cfg.NodeList = append(cfg.NodeList, id)
			}
		}
	}

	rep, err := reporter.ForFormat(*format)
	if err != nil {
		log.Fatal(err)
	}

	g, err := graphml.Load(*file)
	if err != nil {
		log.Fatalf("error loading network: %v", err)
	}
	log.Printf("loaded network with %d nodes and %d edges from %s", g.NodeCount(), g.EdgeCount(), *file)

	result, err := lib.Analyze(g, cfg)
	if err != nil {
		var notFound *lib.NotFoundError
		var confErr *settings.ConfigurationError
		switch {
		case errors.As(err, &notFound):
			log.Fatalf("node selection failed: %v", err)
		case errors.As(err, &confErr):
			log.Fatalf("invalid configuration: %v", err)
		default:
			log.Fatalf("analysis failed: %v", err)
		}
	}

	written, err := reporter.WriteFile(rep, result, *output)
	if err != nil {
		log.Fatalf("error saving report: %v", err)
	}
	log.Printf("report saved to %s", written)

	if !*noOpen {
		if err := browser.OpenFile(written); err != nil {
			log.Printf("could not open report automatically (%v), please open %s manually", err, written)
		}
	}
}
