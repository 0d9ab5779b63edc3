// Package shellcmd implements the nix-shell-gen commands.
//
// A [Project] is a directory holding a flake.nix and a devshell.toml. [Project.Init]
// scaffolds both files, and [Project.Add] edits them in place, adding flake
// inputs without disturbing the rest of flake.nix.
package shellcmd
