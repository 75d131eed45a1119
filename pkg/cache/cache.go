// Package cache stores rendered scenes and artifacts so repeated builds of the
// same dataset with the same options are served without recomputation.
//
// Three backends satisfy [Cache]: [FileCache] for the CLI, [RedisCache] for
// the HTTP server and [NullCache] when caching is disabled. Keys are produced
// by a [Keyer] so that callers never assemble key strings by hand.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by helpers that treat a miss as an error.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte-oriented key/value store with optional expiry.
//
// Get reports a miss as (nil, false, nil). A zero ttl in Set means the entry
// never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer generates cache keys for the pipeline.
type Keyer interface {
	// SourceKey addresses the raw bytes fetched from a remote dataset URL.
	SourceKey(url string) string
	// SceneKey addresses a fitted scene document built from a dataset.
	SceneKey(datasetHash string, opts SceneKeyOpts) string
	// ArtifactKey addresses one rendered output of a scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// SceneKeyOpts are the inputs besides the dataset that change a scene.
type SceneKeyOpts struct {
	ConfigHash string `json:"config"`
	Backdrop   bool   `json:"backdrop"`
}

// ArtifactKeyOpts are the inputs that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format      string `json:"format"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample,omitempty"`
	Legend      bool   `json:"legend,omitempty"`
	LabelImages bool   `json:"label_images,omitempty"`
	Indent      bool   `json:"indent,omitempty"`
}

// DefaultKeyer hashes key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SourceKey returns "source:<url>". URLs are kept readable for `cache` listings.
func (DefaultKeyer) SourceKey(url string) string {
	return "source:" + url
}

// SceneKey returns "scene:<sha256>".
func (DefaultKeyer) SceneKey(datasetHash string, opts SceneKeyOpts) string {
	return hashKey("scene", datasetHash, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}

// GetOrCompute returns the cached value at key or stores the result of fn.
// A failing cache read falls through to fn; a failing write is returned along
// with the computed data.
func GetOrCompute(ctx context.Context, c Cache, key string, ttl time.Duration, fn func() ([]byte, error)) ([]byte, bool, error) {
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		return data, true, nil
	}
	data, err := fn()
	if err != nil {
		return nil, false, err
	}
	return data, false, c.Set(ctx, key, data, ttl)
}
