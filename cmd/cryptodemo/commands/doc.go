// Package commands defines the cryptodemo CLI and wires dependencies for subcommands.
//
// Commands
//
//   - menu     Interactive single-keypress menu (default)
//   - run      Run the algorithm pipeline once
//   - test     Run the conformance suite
//   - bench    Run the benchmark suite
//   - keys     Print the compiled-in key pair and its fingerprint
//   - history  List saved reports
//
// # Implementation
//
// The root command loads the JSON config (--config or $CRYPTODEMO_CONFIG),
// applies flag overrides and builds the app before any subcommand runs. The
// library is released after the subcommand returns.
package commands
