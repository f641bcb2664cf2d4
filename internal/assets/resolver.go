package assets

// Resolver answers asset hrefs for view templates. With a manifest it returns
// the content-hashed href; without one (development before a first build) it
// falls back to the unhashed path.
type Resolver struct {
	manifest *Manifest
}

// NewResolver wraps a manifest, which may be nil.
func NewResolver(manifest *Manifest) *Resolver {
	return &Resolver{manifest: manifest}
}

// Href resolves a logical asset name to the href views should link.
func (r *Resolver) Href(name string) string {
	if r != nil && r.manifest != nil {
		if href, ok := r.manifest.Entries[name]; ok && href != "" {
			return href
		}
	}
	return "/dist/" + name
}
