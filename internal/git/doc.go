// Package git locates the enclosing git worktree so rslenv can be run from
// any subdirectory of the RemoteSwingLibrary checkout.
package git
