package config

var InsecureNetworks = []string{ // nolint: gochecknoglobals
	"0.0.0.0/0",
	"0/0",
	"0000:0000:0000:0000:0000:0000:0000:0000/0",
	"::/0",
}
