// Package runner drives generation for a descriptor file: it loads the
// file, runs the requested generators for every type in parallel, renders
// the results and writes them out. A failure in any type means no file is
// written at all.
package runner
