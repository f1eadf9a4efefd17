package module

import (
	dashdomain "pcaobdash/internal/services/api/dashboard/domain"
)

// Ports declares what the charts module needs injected
type Ports struct {
	Views dashdomain.Recomputer
	// image size in pixels, zero means the renderer default
	Width  int
	Height int
}

// Ports returns the chart service so the web page can reuse it
func (m *Module) Ports() any { return m.svc }
