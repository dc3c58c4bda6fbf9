package flags

import "github.com/spf13/cobra"

func RegisterGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(Config, "c", "",
		"Path to gjallar's configuration file.\n"+
			"If not provided, the lookup sequence is:\n  1. $PWD\n  2. /etc/gjallar/")
	cmd.PersistentFlags().String(EnvironmentConfigPrefix, "GJALLARCFG_",
		"Prefix for the environment variables to consider for\nloading configuration from")
	cmd.PersistentFlags().Bool(SkipAllSecurityEnforcement, false,
		"Disables enforcement of all secure configurations entirely.\n"+
			"Effectively it enables all the --skip-*-enforcement flags below.")
	cmd.PersistentFlags().Bool(SkipIngressTLSEnforcement, false,
		"Disables enforcement of TLS configuration for ingress traffic.")
}
