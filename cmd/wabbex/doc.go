// Package main hosts the wabbex CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into runs of the
// extraction pipeline: opening a Wabbajack modlist archive, parsing the
// embedded manifest, validating Nexus downloader entries, and rendering the
// URL report. It centralizes configuration resolution and structured logging
// setup so subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
