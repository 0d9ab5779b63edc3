package flakeedit

import "errors"

var (
	// ErrIO indicates the flake file could not be read or written.
	ErrIO = errors.New("flake file i/o")

	// ErrParseUnusable indicates the source has no top-level expression to
	// search, e.g. it is empty, only comments, or not valid UTF-8.
	ErrParseUnusable = errors.New("source has no usable structure")

	// ErrSectionNotFound indicates no binding of the target section to an
	// attribute set exists in the source.
	ErrSectionNotFound = errors.New("section not found")

	// ErrMalformedSection indicates the target section was found but has no
	// closing brace.
	ErrMalformedSection = errors.New("malformed section")

	// ErrInvalidArgument indicates an empty name or value was requested.
	ErrInvalidArgument = errors.New("invalid argument")
)
