// Package server carries the MCP tool catalog and its handlers.
//
// Handlers translate flat tool parameters into calls on the deck adapter and
// the supporting packages, validate and clamp inputs, and report results as
// JSON text content. Every domain failure becomes a tool error result; the
// server process never exits on a bad call.
package server
