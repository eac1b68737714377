/*
Package iterepl/main provides an interactive command line tool for
experimenting with the wrapping set. Users insert and remove elements and
step through iteration passes, watching how the cursor survives across
iterators, wraps around at the end, and recovers from removals. It serves
as a sandbox during development of round-robin consumption logic.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'iteratable.repl'
func tracer() tracing.Trace {
	return tracing.Select("iteratable.repl")
}
