package testsupport

import "net"

// GetFreePort asks the kernel for a currently unused TCP port.
func GetFreePort() (int, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}

	defer listener.Close()

	return listener.Addr().(*net.TCPAddr).Port, nil //nolint:forcetypeassert
}
