package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPFromHostPort(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		value string
		ip    string
	}{
		{value: "", ip: ""},
		{value: "127.0.0.1:8080", ip: "127.0.0.1"},
		{value: "[2001:db8::1]:443", ip: "2001:db8::1"},
		{value: "localhost", ip: ""},
	} {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.ip, IPFromHostPort(tc.value))
		})
	}
}
