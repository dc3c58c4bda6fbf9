package flags

const (
	Config                  = "config"
	EnvironmentConfigPrefix = "env-config-prefix"

	SkipAllSecurityEnforcement = "insecure"
	SkipIngressTLSEnforcement  = "insecure-skip-ingress-tls-enforcement"
)

// nolint: gochecknoglobals
var InsecureFlags = []string{
	SkipAllSecurityEnforcement,
	SkipIngressTLSEnforcement,
}
