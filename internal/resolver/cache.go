// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/modseek/modseek/pkg/modid"
	"github.com/modseek/modseek/pkg/modload"
)

// resultCache remembers which candidate path served an identity, so repeat
// resolutions skip the directory walk. Entries expire after the configured
// TTL and are re-verified against the filesystem before use, so a deleted
// file falls back to the full walk instead of a stale load attempt.
type resultCache struct {
	c *gocache.Cache
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{c: gocache.New(ttl, 2*ttl)}
}

func (rc *resultCache) get(key string) (string, bool) {
	v, ok := rc.c.Get(key)
	if !ok {
		return "", false
	}
	path, ok := v.(string)
	return path, ok
}

func (rc *resultCache) put(key, path string) {
	rc.c.SetDefault(key, path)
}

func (rc *resultCache) evict(key string) {
	rc.c.Delete(key)
}

// cacheKey is the full trimmed identity; two identities differing only in
// metadata may resolve differently (culture), so the whole request is keyed.
func cacheKey(req modid.Request) string {
	key := req.SimpleName
	for _, f := range req.Fields[1:] {
		key += "|" + f
	}
	return key
}

// loadCached loads the previously resolved candidate for req, if the cache
// is enabled, holds an entry, and the file still exists. The boolean reports
// whether the cache satisfied the request.
func (r *Resolver) loadCached(req modid.Request) (*modload.Module, bool, error) {
	if r.cache == nil {
		return nil, false, nil
	}
	key := cacheKey(req)
	path, ok := r.cache.get(key)
	if !ok {
		return nil, false, nil
	}
	if !isRegularFile(path) {
		r.cache.evict(key)
		return nil, false, nil
	}
	mod, err := r.loader.Load(path)
	return mod, true, err
}

// cachePut records the candidate chosen for req when caching is enabled.
func (r *Resolver) cachePut(req modid.Request, path string) {
	if r.cache == nil {
		return
	}
	r.cache.put(cacheKey(req), path)
}
