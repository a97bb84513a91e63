// Package main hosts the takeout CLI entrypoint and command graph.
//
// The root command runs an export for the bearer token given as its only
// argument. Subcommands inspect an existing export and scaffold or check the
// configuration file. Configuration resolution and logger setup live here so
// the internal packages stay free of flag handling.
package main
