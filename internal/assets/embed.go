package assets

import "embed"

// distFS carries the compiled stylesheet and manifest into the binary so
// production deployments are a single artifact.
//
//go:embed dist
var distFS embed.FS
