package assets

import "embed"

// AssetsFS holds the stylesheet and images served under /assets/.
//
//go:embed css images
var AssetsFS embed.FS
