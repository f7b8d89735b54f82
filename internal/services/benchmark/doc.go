// Package benchmark is the timing suite behind menu option 'b'. Each
// primitive runs in a loop for a fixed duration and one line of throughput
// is printed per primitive.
package benchmark
