// Package network builds the weighted, undirected similarity graph over a
// cardinal population.
//
// Nodes keep the store's input order, so node indices are stable across
// runs. Edges are stored once per unordered pair with Source < Target and
// sorted by (Source, Target); adjacency lists hold both directions. A Graph
// is read-only after construction and safe for concurrent readers.
package network
