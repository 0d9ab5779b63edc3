// Package shelltui provides a terminal UI for the nix-shell-gen commands.
//
// [ShellTUI] wraps a [Commander], runs it in the background, and renders its
// events with bubbletea. Log records written while a command runs are printed
// above the live view.
package shelltui
