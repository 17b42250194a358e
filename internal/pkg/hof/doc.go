// Package hof holds small factory exercises. Each constructor returns a
// handle whose state is private and reachable only through its methods.
//
// Handles are independent of each other and are not safe for concurrent
// use.
package hof
