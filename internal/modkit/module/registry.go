package module

import "sync"

// port sets by module name, filled by api.Mount and read by the web page
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores ports under name, replacing any earlier set
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	reg[name] = ports
}

// PortsAs returns the port set registered under name when it is a T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	defer mu.RUnlock()
	out, ok := reg[name].(T)
	return out, ok
}

// Reset clears the registry between tests
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(reg)
}
