package middleware

import (
	"fmt"

	"github.com/AminahAkhtar/tinydb-withdp/lib/storage"
)

// --------------------------------------------------------------------------
// Options
// --------------------------------------------------------------------------

// DefaultWriteCacheSize is the number of buffered writes after which the
// caching middleware flushes the snapshot to the underlying storage.
const DefaultWriteCacheSize = 1000

// CachingOptions configures the CachingMiddleware behavior during creation
type CachingOptions struct {
	// WriteCacheSize is the flush threshold. Must be positive.
	WriteCacheSize int
}

// DefaultCachingOptions returns the default CachingMiddleware options
func DefaultCachingOptions() *CachingOptions {
	return &CachingOptions{
		WriteCacheSize: DefaultWriteCacheSize,
	}
}

// --------------------------------------------------------------------------
// Caching Middleware
// --------------------------------------------------------------------------

// CachingMiddleware buffers writes to reduce the number of expensive
// persistence calls. It holds at most one whole-document snapshot, serves
// reads from it, counts writes and forwards the snapshot to the underlying
// storage once the threshold is reached, on an explicit Flush, or on Close.
//
// There is no history and no partial-document merging: a write replaces the
// buffered snapshot (last writer wins) and the snapshot is flushed as a
// unit.
type CachingMiddleware struct {
	Middleware

	cache          storage.Document
	cached         bool
	modifiedCount  int
	writeCacheSize int
}

// NewCaching creates a caching middleware over the given factory. A nil opts
// selects the defaults. A non-positive WriteCacheSize is rejected: it would
// silently mean either "flush every write" or "never flush", both of which
// are configuration mistakes rather than useful behavior.
func NewCaching(factory storage.Factory, opts *CachingOptions) (*CachingMiddleware, error) {
	if opts == nil {
		opts = DefaultCachingOptions()
	}
	if opts.WriteCacheSize <= 0 {
		return nil, storage.NewError(storage.RetCInvalidConfig, fmt.Sprintf("write cache size must be positive, got %d", opts.WriteCacheSize))
	}

	c := &CachingMiddleware{
		Middleware:     *New(factory),
		writeCacheSize: opts.WriteCacheSize,
	}
	c.self = c
	return c, nil
}

// ModifiedCount returns the number of writes buffered since the last flush.
func (c *CachingMiddleware) ModifiedCount() int {
	return c.modifiedCount
}

// --------------------------------------------------------------------------
// Interface Methods (docu see storage/interface.go)
// --------------------------------------------------------------------------

// Read serves the buffered snapshot. Only the first (cold) read touches the
// underlying storage; its result is buffered even when the backend reports
// an empty database, so later reads stay in memory.
func (c *CachingMiddleware) Read() (storage.Document, error) {
	if !c.cached {
		s, err := c.live(storage.OpRead)
		if err != nil {
			return nil, err
		}
		doc, err := s.Read()
		if err != nil {
			return nil, err
		}
		c.cache = doc
		c.cached = true
	}
	return c.cache, nil
}

// Write replaces the buffered snapshot and increments the modification
// counter. Reaching the threshold triggers an immediate flush, whose failure
// surfaces from this call.
func (c *CachingMiddleware) Write(doc storage.Document) error {
	c.cache = doc
	c.cached = true
	c.modifiedCount++

	if c.modifiedCount >= c.writeCacheSize {
		return c.Flush()
	}
	return nil
}

// Flush forwards the buffered snapshot to the underlying storage and resets
// the modification counter. It is a no-op when nothing is buffered. On
// failure neither the counter nor the snapshot is touched, so the flush can
// be retried by calling Flush again.
func (c *CachingMiddleware) Flush() error {
	if c.modifiedCount == 0 {
		return nil
	}

	s, err := c.live(storage.OpFlush)
	if err != nil {
		return err
	}
	if err := s.Write(c.cache); err != nil {
		return err
	}
	c.modifiedCount = 0
	return nil
}

// Close flushes any buffered writes and then closes the underlying storage.
// A failing flush aborts the close so the snapshot stays reachable for a
// retry instead of being silently lost.
func (c *CachingMiddleware) Close() error {
	if err := c.Flush(); err != nil {
		return err
	}

	s, err := c.live(storage.OpClose)
	if err != nil {
		return err
	}
	return s.Close()
}

// Invoke dispatches the core operations to the caching overrides, exposes
// "flush" as a named operation for decorators stacked on top, and forwards
// everything else down the chain.
func (c *CachingMiddleware) Invoke(op string, args ...interface{}) (interface{}, error) {
	switch op {
	case storage.OpRead:
		return c.Read()
	case storage.OpWrite:
		doc, err := writeArg(args)
		if err != nil {
			return nil, err
		}
		return nil, c.Write(doc)
	case storage.OpClose:
		return nil, c.Close()
	case storage.OpFlush:
		return nil, c.Flush()
	default:
		return c.Middleware.Invoke(op, args...)
	}
}
