// Package main hosts the myepg CLI entrypoint and command graph.
//
// The Cobra-based command tree wires terminal invocations to the guide
// aggregation pipeline: `run` executes a full fetch/parse/merge/publish
// cycle, `sources list` previews the configured source list, and the
// `config` subcommands create and validate the TOML configuration.
package main
