// Package pipeline runs one reconciliation of the OpenFlights feeds end to end:
// download, decode, gap analysis, backfill, merge, route resolution and output.
//
// Every run gets a run id that tags its log entries. The Report returned by Run
// is logged through zap and mirrored into the Prometheus registry so a build can
// be dumped to a textfile or scraped by the catalog server.
package pipeline
