// Package cache provides the small LRU cache glyphcell keeps parsed fonts in.
//
//	fonts := cache.New[*text.FontSource, *font.Font](64)
//	f, err := fonts.GetOrLoad(src, parse)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
