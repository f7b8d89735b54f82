// Package serial provides the console the menu talks to: a byte stream read
// one keypress at a time, backed by the process's terminal, a tty device
// file or any reader/writer pair.
//
// Terminals are switched to raw mode so a selection needs no Enter key;
// Close restores the previous mode. Writes never fail from the caller's
// point of view; errors are handed to the communication-error callback.
package serial
