// Package async treats a receive-only channel as a container layer: a
// stream of values produced by an asynchronous operation.
//
// Map and WithContext forward every element transformed, in order, and
// close the output when the input closes, so the stream keeps its length
// and order. From, Collect and First move values between slices and
// channels.
package async
