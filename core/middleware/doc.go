// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Assigns a Request ID (RayID) to every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RequestLog: Logs each request through Zap, tagged with its RayID.
//
// These middleware components are registered globally in the greeting
// application setup, RayID first so every later log line is traceable.
package middleware
