package module

import (
	dashdomain "pcaobdash/internal/services/api/dashboard/domain"
)

// Ports declares what the export module needs injected
type Ports struct {
	Views dashdomain.Recomputer
}

// Ports returns the export service so the web page can offer downloads
func (m *Module) Ports() any { return m.svc }
