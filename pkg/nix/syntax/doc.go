// Package syntax implements a lossless parser for the Nix language.
//
// [Parse] produces a concrete syntax tree in which every byte of the input,
// including whitespace and comments, is owned by exactly one [Token]. Nodes
// record the byte range they cover, so callers can locate an element
// structurally and then edit the original text at a precise offset without
// reprinting anything else. Trees are immutable once built.
//
// Parsing never fails. Malformed input yields [NodeError] nodes and entries
// in [Tree.Errors], and the tree still reproduces the input exactly.
package syntax
