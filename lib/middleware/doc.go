// Package middleware implements the decoration layer in front of a storage
// backend. Middlewares wrap an IStorage implementation and hook into the
// read/write/close path, extending the behavior with caching, logging or
// metrics while forwarding everything they do not override.
//
// The package focuses on:
//   - A generic delegation primitive (Middleware) with deferred, single-shot
//     construction of the wrapped backend
//   - Transparent forwarding: operations a middleware does not override reach
//     the wrapped instance unchanged, including named operations dispatched
//     through the IInvoker escape hatch
//   - Concrete middlewares for write buffering, operation logging and
//     operation counting
//
// Key Components:
//
//   - Middleware: The base delegating decorator. It stores a storage.Factory
//     at creation without invoking it; Activate constructs the wrapped
//     backend exactly once. Factory exposes the middleware itself as a
//     deferred constructor, which is what makes nesting work: activating the
//     outer middleware activates the next link, down to the real backend.
//
//   - CachingMiddleware: Buffers writes in a single whole-document snapshot
//     and flushes to the underlying storage when a configurable number of
//     writes has accumulated (default 1000), on an explicit Flush, or on
//     Close. Reads are served from the snapshot after the first cold read.
//
//   - LoggingMiddleware: Appends a timestamped line per read/write to a log
//     file before forwarding. The file handle is acquired and released per
//     call. Close logging is opt-in.
//
//   - MetricsMiddleware: Counts reads, writes and closes per instance using
//     VictoriaMetrics counters and can dump them in Prometheus text format.
//
// Usage:
//
//	Middlewares are assembled around an engine factory and activated through
//	the outermost Factory:
//
//	  caching, err := middleware.NewCaching(engineFactory, nil)
//	  if err != nil { ... }
//	  logging := middleware.NewLogging(caching.Factory(), nil)
//
//	  db, err := logging.Factory()() // activates the whole chain
//	  if err != nil { ... }
//	  defer db.Close()
//
// Concurrency: middlewares hold no locks. A decorated chain must be driven
// by a single goroutine or serialized externally.
package middleware
