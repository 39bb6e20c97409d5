// Package result provides a railway-style Result[T] that is either a
// success carrying a value, a failure carrying an error, or a cancellation.
//
// Highlights:
// - Success/Fail/Cancel: construct Result[T]
// - Map: the layer map, transforms successes only
// - Try: call a function (Out, error) and convert error to failure
// - Finally: reduce to a concrete value via success/error/cancel handlers
//
// Every Result carries an id and a UTC creation time. Map keeps both, so a
// mapped Result is still recognisable as the same outcome.
package result
