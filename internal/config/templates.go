package config

type TemplatesConfig struct {
	Paths []string `koanf:"paths" validate:"omitempty,dive,dir"`
	Watch bool     `koanf:"watch"`
}
