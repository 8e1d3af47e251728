// Package cmd implements the command-line interface for the tinydb document
// database. It provides a hierarchical command structure for operating on a
// database through a configurable storage middleware chain.
//
// The package is organized into several subpackages:
//
//   - doc: Commands for document operations (get, set, del, tables, purge)
//   - util: Shared utilities for command-line processing, configuration and
//     middleware chain assembly (internal use)
//
// See tinydb -help for a list of all commands.
package cmd
