// Package cache provides a small LRU used to memoize shader compilation.
//
// Compiling WGSL to SPIR-V is by far the most expensive part of program
// creation, and callers routinely recreate programs from identical
// source. The cache keys compiled blobs by source text so repeated
// creations skip the compiler, while every program still gets its own
// backend module.
package cache
