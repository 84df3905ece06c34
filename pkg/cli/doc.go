// Package cli implements the dx command tree.
//
// Commands are plain cobra commands that attach themselves to the root
// in their init functions. The root's PersistentPreRunE loads the
// layered configuration (flags > env > local file > global file >
// defaults) and builds the shared logger before any RunE executes.
package cli
