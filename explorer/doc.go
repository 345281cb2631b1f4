// Package explorer turns a stream of node selections into a live,
// highlighted path.
//
// The explorer remembers the two most recently selected nodes. On every
// selection it clears the highlights of the previous path, shifts the
// selection, asks its Pathfinder for a route from the older to the newer
// node and highlights the result: endpoints with one color, interior nodes
// with another. A trivial one-node path (the same node selected twice) is
// stored but not highlighted.
//
// State machine:
//
//	NoneSelected ──select──▶ OneSelected ──select──▶ PathComputed ──select──┐
//	                                                      ▲                 │
//	                                                      └─────────────────┘
//
// Concurrency: all methods are serialized by a mutex, so the
// unhighlight → search → highlight sequence is atomic for observers.
// Snapshot and Select return selection, path and state read under that
// same lock.
package explorer
