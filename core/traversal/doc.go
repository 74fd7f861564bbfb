// Package traversal walks the implicit de Bruijn graph defined by a k-mer
// count oracle.
//
// A Traverser extends k-mers by one base on either side, enumerates
// neighbors and counts degree. A Cursor walks one direction a base at a
// time, stopping at branches and dead ends; a NonLoopingCursor additionally
// shares a VisitedSet with other cursors of the same assembly so that two
// half-walks never re-cross each other.
//
// Nothing in this package is safe for concurrent mutation. A VisitedSet
// shared by two cursors must be stepped from one goroutine.
package traversal
