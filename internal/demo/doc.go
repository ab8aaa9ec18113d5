// Package demo wires the example application: three views demonstrating
// route-level code splitting.
//
//   - "/" renders View A eagerly under the shared layout.
//   - "/b" is a lazy parent (View B) with a lazy child page that
//     fetches a todo from the upstream API; the fetch and both module
//     loads start in the same turn.
//   - "/c" is a lazy page listing comments. Decoding the payload uses a
//     deserializer that is itself a lazily loaded module, so only
//     visitors of "/c" pay for it.
package demo
