//go:build !sopdebug

package sop

// debugChecks enables contract assertions; build with -tags sopdebug.
const debugChecks = false
