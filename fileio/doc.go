// Package fileio implements the plain-text file formats of the CLI surface:
// circuit files, move files, stabiliser files, and solution output, plus
// the pre-write replay-verify check. None of this is part of the search
// core; it is pure I/O plumbing kept deliberately stdlib-only.
package fileio
