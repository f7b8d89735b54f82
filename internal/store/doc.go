// Package store provides file-based persistence for suite reports.
//
// Each report is serialised as JSON into its own file under the configured
// report directory and written atomically (temp file, then rename). All
// methods are concurrency-safe via internal locking.
package store
