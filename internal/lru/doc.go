// Package lru provides a generic, size-bounded least-recently-used cache.
//
//	c := lru.New[string, float64](512)
//	c.Add("Main St", 63.5)
//	width, ok := c.Get("Main St")
//
// Cache is safe for concurrent use.
package lru
