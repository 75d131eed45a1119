package cache

// ScopedKeyer prefixes every key of an inner Keyer, so that several datasets
// or server instances can share one Redis database.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "demo:")
//	k.SceneKey(hash, opts) // "demo:scene:..."
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner; a nil inner uses DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) SourceKey(url string) string {
	return k.prefix + k.inner.SourceKey(url)
}

func (k *ScopedKeyer) SceneKey(datasetHash string, opts SceneKeyOpts) string {
	return k.prefix + k.inner.SceneKey(datasetHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneHash, opts)
}
