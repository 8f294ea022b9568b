// Package mcp implements the Model Context Protocol (MCP) server that
// exposes the standards documents to AI coding assistants using the mcp-go
// library.
//
// The server speaks JSON-RPC 2.0 over stdin/stdout and registers five tools:
//
//   - get_core_standard: fetch one core standard by key
//   - get_workflow_pattern: fetch one workflow pattern by key
//   - get_integration_guide: fetch one integration guide by key
//   - search_standards: keyword search with context across all documents
//   - list_available_standards: enumerate every registered key
//
// Every call returns a single text payload. Failures come back as
// error-flagged tool results with self-explanatory messages (unknown keys
// enumerate the valid alternatives), never as transport errors; a tool
// invocation can fail but the server never crashes on caller input.
//
// The server holds no mutable state: each invocation re-reads the documents
// from disk, and no invocation depends on a prior one.
//
// # Usage
//
// The server is typically started as a subprocess by an MCP-capable AI
// assistant:
//
//	agentstd mcp
//
// It reads requests from stdin and writes responses to stdout until EOF.
package mcp
