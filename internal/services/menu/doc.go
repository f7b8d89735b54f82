// Package menu implements the single-keypress selection loop shown on the
// serial console.
//
// The loop prints a banner, waits for one selection byte and dispatches it
// to the matching suite. Unknown bytes print "Selection out of range". A
// suite failure is reported with its return code and never ends the loop;
// only end of input or context cancellation does.
package menu
