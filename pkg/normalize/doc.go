// Package normalize rewrites a freshly generated project tree so it matches
// the requested organization and package.
//
// A run has three steps, always in this order:
//
//  1. Relocate moves every file under the placeholder package directory of
//     each source root to the target package directory and removes the
//     emptied placeholder directories.
//  2. Rewrite replaces placeholder package and import references in source
//     files with the target package.
//  3. Prune deletes the paths owned by each disabled feature.
//
// Each step can be run on its own and does nothing when its precondition
// does not hold, so running a step twice is harmless. Filesystem errors abort
// the run and leave the tree as it was at the point of failure.
package normalize
