// Package flakeref derives input names and package references from flake
// URLs.
package flakeref

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidURL indicates no input name could be derived from a URL.
var ErrInvalidURL = errors.New("invalid flake url")

// Input is a flake input: the attribute name it is bound to in flake.nix and
// the URL it points at.
type Input struct {
	Key string
	URL string
}

// Parse derives an [Input] from a flake URL. The key is the final path
// segment, cut at the first '~', so "github:owner/repo~branch" gives "repo".
// A trailing slash and any query are ignored. URLs without a path use the
// part after the scheme, so "flake:nixpkgs" gives "nixpkgs". The URL itself
// is kept verbatim.
func Parse(url string) (Input, error) {
	raw := strings.TrimSpace(url)

	s, _, _ := strings.Cut(raw, "?")
	s = strings.TrimRight(s, "/")

	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	} else if i := strings.LastIndexByte(s, ':'); i >= 0 {
		s = s[i+1:]
	}

	key, _, _ := strings.Cut(s, "~")
	if key == "" {
		return Input{}, fmt.Errorf("%w: %q", ErrInvalidURL, url)
	}

	return Input{Key: key, URL: raw}, nil
}

// ParseAll parses every URL, stopping at the first error.
func ParseAll(urls []string) ([]Input, error) {
	inputs := make([]Input, 0, len(urls))

	for _, u := range urls {
		in, err := Parse(u)
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, in)
	}

	return inputs, nil
}

// PackageRef returns the conventional reference to the input's default
// package, e.g. "repo.packages.${system}.default".
func (in Input) PackageRef() string {
	return in.Key + ".packages.${system}.default"
}

// Remediation returns the line a user would add to flake.nix by hand.
func (in Input) Remediation() string {
	return fmt.Sprintf("inputs.%s.url = %q;", in.Key, in.URL)
}
