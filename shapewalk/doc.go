// Package shapewalk implements the generator's recursive-descent shape
// visitor (spec §4.4, component C4): four pure functions, keyed by the
// current shape, that each produce one statement or expression fragment of
// emitted code.
//
// Every function is shallow: given a member, it resolves that member's
// shape exactly one level deep and, for structure members, delegates to the
// nested type's own generated methods (e.g. `Node::create(...)`,
// `Node::parseXmlRoot(...)`) rather than inlining the nested type's body.
// This is what keeps shapewalk itself non-recursive even over a cyclic
// shape graph (spec §3.1's Node → Child → Node case) — the termination
// guarantee for *emitting one class per shape* lives in gen's per-run
// memoization (spec §3.2, §5), not here.
package shapewalk
