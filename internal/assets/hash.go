package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"path"
	"strings"
)

// HashedName derives the content-addressed file name for an asset, inserting
// the first eight hex characters of the SHA-256 digest before the extension:
// app.css with content X becomes app-4f9c21ab.css.
func HashedName(name string, content []byte) string {
	sum := sha256.Sum256(content)
	digest := hex.EncodeToString(sum[:])[:8]

	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return base + "-" + digest + ext
}
