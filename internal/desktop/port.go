package desktop

import (
	"fmt"
	"net"
)

// FindFreePort bind-probes 127.0.0.1 ports in [start, end] and returns the
// first one that accepts a listener. The listener is closed again; the small
// window before the server binds it is acceptable for a local launcher.
func FindFreePort(start, end int) (int, error) {
	for p := start; p <= end; p++ {
		ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", p))
		if err != nil {
			continue
		}
		ln.Close()
		return p, nil
	}
	return 0, fmt.Errorf("no free port in %d-%d", start, end)
}
