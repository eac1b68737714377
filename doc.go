/*
Package iteratable implements an iteratable container data structure.

Set is a special purpose set type: a set of unique elements, paired with
an iteration cursor which survives across iterators. A plain set iterator
restarts at an arbitrary position every time it is created; an iterator
over this Set instead resumes where the previous one left off, wrapping
around to the beginning once the end is reached. Each iterator will
return every element currently held at most once, regardless of where
the cursor starts. This is useful for round-robin consumption patterns,
e.g. cycling through a pool of keys fairly across repeated passes.

Package structure is as follows:

■ iteratable: the base package contains the Set and its Iterator.

■ pool: Package pool implements a round-robin pool of member objects,
cycled fairly by a wrapping Set of fingerprint keys.

Set makes no promise about the enumeration order of its elements, and it
is not safe for concurrent access. Clients needing concurrency have to
wrap it in a mutex of their own.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
