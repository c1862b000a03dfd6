package reporter

import (
	"html/template"
	"io"
	"strings"

	"github.com/bionetops/pathnet/lib"
)

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Network Analysis Report</title>
<style>
  body { font-family: Arial, sans-serif; margin: 2rem; color: #333; line-height: 1.6; }
  .container { max-width: 1200px; margin: 0 auto; }
  table { width: 100%; border-collapse: collapse; margin: 1rem 0; }
  th, td { padding: 0.5rem; border: 1px solid #ddd; text-align: left; }
  th { background-color: #f5f5f5; }
  tr:nth-child(even) { background-color: #f9f9f9; }
  .section { margin: 2rem 0; padding: 1rem; border-radius: 5px; background-color: #fff;
             box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
  .warning { color: #a94442; background-color: #f2dede; padding: 0.5rem 1rem; border-radius: 3px; }
  h1, h2 { color: #2c3e50; margin-top: 0; }
  .meta-info { color: #666; font-size: 0.9rem; }
</style>
</head>
<body>
<div class="container">
  <h1>Network Analysis Report</h1>
  <div class="meta-info">
    <p>Run: {{.Result.RunID}}</p>
    <p>Generated on: {{.Result.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>
    <p>Execution time: {{printf "%.2f" .Result.Duration.Seconds}} seconds</p>
  </div>
{{if .Result.Degraded}}
  <div class="warning">
    <p>This run completed in a degraded state; results were built from a reduced sample.</p>
    <ul>{{range .Result.Warnings}}<li>{{.}}</li>{{end}}</ul>
  </div>
{{end}}
  <div class="section">
    <h2>Network Overview</h2>
    <p>Total nodes in network: {{.Result.NodeCount}} ({{.Result.EdgeCount}} edges)</p>
    <p>Nodes after blacklist filtering: {{.Result.FilteredNodeCount}} ({{.Result.FilteredEdgeCount}} edges)</p>
    <p>Selected nodes: {{len .Result.SelectedNodes}}</p>
    <p>Pairs sampled: {{.Result.PairsSampled}}, paths found: {{.Result.PathsFound}},
       unreachable pairs: {{.Result.UnreachablePairs}}</p>
    {{if .Result.PathsFound}}
    <p>Path length: mean {{printf "%.2f" .Result.PathLengths.Mean}},
       median {{printf "%.1f" .Result.PathLengths.Median}},
       min {{.Result.PathLengths.Min}}, max {{.Result.PathLengths.Max}}</p>
    {{end}}
  </div>
  <div class="section">
    <h2>Shortest Paths</h2>
    {{if not .Result.Paths}}<p>No paths found.</p>{{end}}
    {{range $length := .PathLengthOrder}}
    <h3>Paths of length {{$length}} ({{len (index $.PathsByLength $length)}} paths found)</h3>
    <table>
      <tr><th>Start</th><th>End</th><th>Path</th></tr>
      {{range index $.PathsByLength $length}}
      <tr><td>{{.Source}}</td><td>{{.Target}}</td><td>{{joinPath .Nodes}}</td></tr>
      {{end}}
    </table>
    {{end}}
  </div>
  <div class="section">
    <h2>Node Frequencies</h2>
    <p>How often each node appears on the sampled shortest paths, endpoints included.</p>
    {{range $type := .FrequencyTypes}}
    <h3>Type: {{$type}}</h3>
    <table>
      <tr><th>Node</th><th>Occurrences</th></tr>
      {{range index $.Frequencies $type}}
      <tr><td>{{.ID}}</td><td>{{printf "%.0f" .Score}}</td></tr>
      {{end}}
    </table>
    {{end}}
  </div>
  <div class="section">
    <h2>Centrality Analysis</h2>
    {{if not .CentralityTypes}}<p>No centrality scores available.</p>{{end}}
    {{range $type := .CentralityTypes}}
    <h3>Top {{$type}} Nodes</h3>
    <table>
      <tr><th>Node</th><th>Centrality Score</th></tr>
      {{range index $.Centrality $type}}
      <tr><td>{{.ID}}</td><td>{{printf "%.6f" .Score}}</td></tr>
      {{end}}
    </table>
    {{end}}
  </div>
  <div class="section">
    <h2>Ubiquitous Nodes</h2>
    {{if not .Result.Ubiquitous}}<p>No ubiquitous nodes detected.</p>{{else}}
    <p>Nodes whose normalized frequency or centrality reached the threshold.</p>
    <ul>{{range .Result.Ubiquitous}}<li>{{.}}</li>{{end}}</ul>
    {{end}}
  </div>
</div>
</body>
</html>
`

type HTMLReporter struct {
	tmpl *template.Template
}

func NewHTMLReporter() *HTMLReporter {
	tmpl := template.Must(template.New("report").Funcs(template.FuncMap{
		"joinPath": func(nodes []string) string { return strings.Join(nodes, " → ") },
	}).Parse(htmlTemplate))
	return &HTMLReporter{tmpl: tmpl}
}

func (h *HTMLReporter) Extension() string { return ".html" }

type htmlData struct {
	Result          *lib.AnalysisResult
	PathLengthOrder []int
	PathsByLength   map[int][]lib.PathResult
	FrequencyTypes  []string
	Frequencies     map[string][]scoredNode
	CentralityTypes []string
	Centrality      map[string][]scoredNode
}

func (h *HTMLReporter) Render(result *lib.AnalysisResult, w io.Writer) error {
	lengths, grouped := pathsByLength(result.Paths)
	frequencies := groupByType(frequencyScores(result.Frequencies), result.NodeTypes, 0)
	// Top 10 per type, like the frequency tables people actually read.
	centrality := groupByType(result.Centrality, result.NodeTypes, 10)
	return h.tmpl.Execute(w, &htmlData{
		Result:          result,
		PathLengthOrder: lengths,
		PathsByLength:   grouped,
		FrequencyTypes:  sortedTypes(frequencies),
		Frequencies:     frequencies,
		CentralityTypes: sortedTypes(centrality),
		Centrality:      centrality,
	})
}
