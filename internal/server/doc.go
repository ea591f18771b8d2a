// Package server exposes numgroup over HTTP.
//
// Endpoints:
//
//	GET  /format?value=30000000[&value=...][&mode=inplace]
//	POST /format   {"values": ["30000000"], "mode": "inplace"}
//	GET  /health
//	GET  /metrics  (Prometheus exposition format)
//
// Every response carries the security headers of SecurityMiddleware, and
// every request is counted and timed by Metrics.
package server
