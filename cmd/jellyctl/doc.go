// Package main hosts the jellyctl CLI entrypoint and command graph.
//
// The Cobra-based command tree authenticates against a Jellyfin server,
// persists the resulting session on disk, and surfaces server, user, and
// session queries on top of the jellyfin client package. It centralizes
// configuration resolution, session storage, and logger setup so subcommands
// can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality to the jellyfin package or
// the internal packages first, then surface it through dedicated commands or
// flags here.
package main
