// Package stats aggregates GIN sampler result files across runs.
//
// # Reading Guide
//
//   - row.go: ResultRow and ReadResultFile (one CSV per run)
//   - extract.go: ExtractMetrics, the per-file best fitness and rank-2 memory values
//   - aggregate.go: Config and Aggregate, the sequential driver over N files
//   - variance.go: sample variance and summaries over the collected values
//   - report.go: text, table and JSON renderings of an AggregateReport
//
// Each file is processed in isolation; the only state carried between files is
// the append-only sample slices on AggregateReport.
package stats
