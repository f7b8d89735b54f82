// Package app wires application dependencies for the CLI.
//
// LoadConfig reads the JSON configuration and New turns it into a running
// App: a validated parameter set, an initialised crypto library, the logger
// and the optional report store. NewWire then builds the three suites and
// the menu loop on top of an App. Close releases the library.
package app
