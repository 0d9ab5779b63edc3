package devshell

import (
	"maps"
	"slices"
	"strings"
)

var languagePackages = map[string][]string{
	"cpp":    {"clang", "cmake", "gdb"},
	"c++":    {"clang", "cmake", "gdb"},
	"rust":   {"rustc", "cargo", "rust-analyzer"},
	"python": {"python3"},
}

// LanguagePackages returns the toolchain packages for a language preset.
func LanguagePackages(lang string) ([]string, bool) {
	pkgs, ok := languagePackages[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return nil, false
	}

	return slices.Clone(pkgs), true
}

// Languages returns the known language presets, sorted.
func Languages() []string {
	return slices.Sorted(maps.Keys(languagePackages))
}
