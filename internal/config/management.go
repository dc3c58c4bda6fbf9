package config

import "fmt"

type ManagementConfig struct {
	Host        string      `koanf:"host"`
	Port        int         `koanf:"port"         validate:"gt=0,lte=65535"`
	Timeout     Timeout     `koanf:"timeout"`
	BufferLimit BufferLimit `koanf:"buffer_limit"`
	CORS        *CORS       `koanf:"cors,omitempty"`
	TLS         *TLS        `koanf:"tls,omitempty" validate:"enforced"`
}

func (c ManagementConfig) Address() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }
