// Package ir provides the in-memory representation of a property list.
//
// A document is a tree of [*Node] values. Each node is one of five types:
// a Dictionary mapping string keys to nodes, an ordered Array of nodes, a
// String, a 64 bit signed Integer or a 64 bit Float.
//
// Nodes carry no parent links; a tree is owned by whoever produced it and
// the mapping layers treat it as read only.
package ir
