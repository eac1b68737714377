/*
Package pool implements a round-robin pool of member objects.

A Pool holds a collection of members, addressed by a fingerprint of their
content, and deals them out fairly: repeated calls to Next cycle through
all current members, pass after pass, resuming after additions and
removals instead of restarting at the front. The cycling is done by a
wrapping iteratable.Set of fingerprint keys.

A typical use is a pool of worker or backend descriptors which should
each get their fair share of requests across repeated passes.

Pools are not safe for concurrent access; clients needing concurrency
have to wrap them in a mutex of their own.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pool

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'iteratable.pool'.
func tracer() tracing.Trace {
	return tracing.Select("iteratable.pool")
}
