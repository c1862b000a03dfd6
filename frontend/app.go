// The pathnet frontend runs one analysis at startup and serves the
// rendered report, the raw result and process metrics over HTTP until
// interrupted.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bionetops/pathnet/lib"
	"github.com/bionetops/pathnet/lib/graphml"
	"github.com/bionetops/pathnet/lib/reporter"
	"github.com/bionetops/pathnet/lib/settings"
)

type app struct {
	result *lib.AnalysisResult
	report []byte
}

func (a *app) serveReport(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(a.report)
}

func (a *app) serveResult(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.result); err != nil {
		log.Printf("failed to encode result: %v", err)
	}
}

func (a *app) serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (a *app) router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/", a.serveReport).Methods("GET")
	router.HandleFunc("/result", a.serveResult).Methods("GET")
	router.HandleFunc("/healthz", a.serveHealth).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())
	return router
}

func main() {
	var file string
	var listenAddr string
	var iterations int
	var centralitySamples int
	var threshold float64
	var randomNodes int
	var nodeType string
	var disableBlacklist bool
	var seed int64
	var workers int

	flag.StringVar(&file, "file", "", "Path to the GraphML network file")
	flag.StringVar(&listenAddr, "listen-address", ":9210", "The address the report endpoint binds to.")
	flag.IntVar(&iterations, "iterations", 100, "Number of path sampling iterations")
	flag.IntVar(&centralitySamples, "centrality-samples", 100, "Number of centrality pivots")
	flag.Float64Var(&threshold, "threshold", 0.9, "Ubiquity cutoff on normalized frequency or centrality")
	flag.IntVar(&randomNodes, "random-nodes", 0, "Number of nodes to select randomly")
	flag.StringVar(&nodeType, "node-type", "", "Restrict selection to nodes of this type")
	flag.BoolVar(&disableBlacklist, "disable-blacklist", false, "Disable the default metabolite blacklist")
	flag.Int64Var(&seed, "seed", 0, "Random seed; 0 derives one from the clock")
	flag.IntVar(&workers, "workers", 0, "Number of parallel workers; 0 means one per CPU")
	flag.Parse()

	if file == "" {
		log.Fatal("the -file flag is required")
	}

	g, err := graphml.Load(file)
	if err != nil {
		log.Fatalf("error loading network: %v", err)
	}

	result, err := lib.Analyze(g, settings.AnalysisSettings{
		Iterations:        iterations,
		CentralitySamples: centralitySamples,
		Threshold:         threshold,
		RandomNodes:       randomNodes,
		NodeType:          nodeType,
		DisableBlacklist:  disableBlacklist,
		Seed:              seed,
		Workers:           workers,
	})
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}

	var report bytes.Buffer
	if err := reporter.NewHTMLReporter().Render(result, &report); err != nil {
		log.Fatalf("failed to render report: %v", err)
	}

	a := &app{result: result, report: report.Bytes()}
	server := &http.Server{
		Addr:    listenAddr,
		Handler: a.router(),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	go func() {
		log.Printf("report service listening on %s", listenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-stop
	log.Println("report service shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
