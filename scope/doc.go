/*
Package scope partitions a text into regions which are either in scope for
processing or out of scope.

Scopes are built from byte ranges over an immutable source string. Every scope
holds a payload; out-of-scope payloads are always a [View] onto the source,
in-scope payloads are either a [View] (read-only scopes, [ROScope]) or a
copy-on-write string ([RWScope]). Concatenating the payloads of a scope
sequence in order reproduces the source byte for byte, as long as nobody
edits an in-scope payload.

Clients usually

▪︎ call [FromRawRanges] to get read-only scopes,

▪︎ optionally [ROScopes.Invert] them,

▪︎ [ROScopes.Materialize] them into read-write scopes and edit the in-scope
payloads.

There is no way to edit an out-of-scope payload; it stays a view until the
scopes are discarded.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package scope

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'eszett.scope'
func tracer() tracing.Trace {
	return tracing.Select("eszett.scope")
}
