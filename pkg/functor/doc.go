// Package functor applies a function through several layers of nested
// containers in one call, instead of composing one map per layer by hand.
//
// Go has no higher-kinded types, so the "mappable container" capability is
// passed explicitly as a layer Map. Depth N operations take N layer maps,
// outermost first, and are defined as one more application of the outer map
// around the depth N-1 operation. Layer maps that obey the identity and
// composition laws therefore yield depth-N operations that obey them too.
//
// Operations per depth (N = 2..5; depth 1 has no suffix):
// - FmapN: transform every innermost value (operator <$$>, tight, left)
// - FconstN: replace every innermost value with a constant (<$$, tight, left)
// - FconstFlipN: FconstN with the container first ($$>, tight, left)
// - FforN: FmapN with the container first (<&&>, loose, left), meant for
// pipeline style calls where the function literal is long
// - VoidN: replace every innermost value with Unit
// - NestN: fuse N layer maps into a single Map over the composite container
//
// Every function is pure and safe for concurrent use.
package functor
