// Package cli implements the command-line interface for zoomcp.
//
// The cli package provides:
// - The root command and version information
// - Agent subcommands for listing and calling tools on an MCP server
// - Identity-token wiring for IAM-protected deployments
// - Terminal output rendering and paging
package cli
