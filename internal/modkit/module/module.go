// Package module holds the module contract and the port registry the web page reads from
package module

import (
	phttp "pcaobdash/internal/platform/net/http"
)

// Module mounts its routes and exposes a port set other surfaces can reuse
// it lives apart from modkit so a module's ports type never imports the builder
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
