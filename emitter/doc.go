// Package emitter provides a minimal synchronous publish/subscribe
// primitive keyed by event name.
//
// An Emitter delivers published payloads to every live subscriber of the
// exact name, in subscription order, on the publisher's goroutine. It
// performs no pattern matching of its own; callers that need wildcard
// routing resolve names before publishing.
//
// # Usage
//
//	e := emitter.New[string]()
//
//	sub := e.Subscribe("greeting", func(msg string) {
//	    fmt.Println(msg)
//	})
//	defer sub.Unsubscribe()
//
//	e.Publish("greeting", "hello")
//
// Subscriptions can be paused, resumed, cancelled, or registered with
// Once to auto-cancel after the first delivery.
//
// Subscribe, Publish, and Unsubscribe are safe for concurrent use.
// Handlers run outside the emitter's locks, so a handler may subscribe,
// unsubscribe, or publish re-entrantly. Handler panics are not recovered;
// they propagate to the publisher and abort delivery to the remaining
// subscribers of that publish call.
package emitter
