// Package flakeedit makes small, format-preserving edits to flake.nix files.
//
// Edits are planned against a lossless syntax tree (see
// [github.com/macropower/nixshellgen/pkg/nix/syntax]) and applied as a single
// splice into the original text, so every byte outside the inserted entry is
// kept as written, comments and blank lines included.
//
// Adding an input that is already bound leaves the text unchanged, so running
// the same edit twice is safe.
package flakeedit
