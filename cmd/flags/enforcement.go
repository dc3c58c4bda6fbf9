package flags

import (
	"github.com/spf13/cobra"

	"github.com/dadrus/gjallar/internal/config"
)

func EnforcementSettings(cmd *cobra.Command) config.EnforcementSettings {
	insecure, _ := cmd.Flags().GetBool(SkipAllSecurityEnforcement)
	insecureNoIngressTLS, _ := cmd.Flags().GetBool(SkipIngressTLSEnforcement)

	if insecure {
		insecureNoIngressTLS = true
	}

	return config.EnforcementSettings{
		EnforceIngressTLS: !insecureNoIngressTLS,
	}
}
