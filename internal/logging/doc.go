// Package logging builds the log15 handler tree used by every service: a
// console stream on stderr, which switches to CRLF endings while a raw
// terminal shares it, and an optional rotating file.
package logging
