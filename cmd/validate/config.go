// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dadrus/gjallar/cmd/flags"
	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/config/parser"
	"github.com/dadrus/gjallar/internal/handler/fallback"
	"github.com/dadrus/gjallar/internal/responder"
	"github.com/dadrus/gjallar/internal/templates"
	"github.com/dadrus/gjallar/internal/validation"
	"github.com/dadrus/gjallar/internal/watcher"
)

var ErrNoConfigFile = errors.New("no config file provided")

// NewValidateConfigCommand represents the "validate config" command.
func NewValidateConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   "Validates gjallar's configuration",
		Example: "gjallar validate config -c myconfig.yaml",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := validateConfig(cmd); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}

			cmd.Println("Configuration is valid")
		},
	}
}

func validateConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString(flags.Config)
	if len(configPath) == 0 {
		return ErrNoConfigFile
	}

	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)

	es := flags.EnforcementSettings(cmd)

	validator, err := validation.NewValidator(
		validation.WithTagValidator(es),
		validation.WithErrorTranslator(es),
	)
	if err != nil {
		return err
	}

	conf, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
		validator,
	)
	if err != nil {
		return err
	}

	return validateHandlerSetup(conf, validator)
}

// validateHandlerSetup builds everything the fallback service would build on
// startup to surface those configuration errors, which are only detectable
// while the handlers are constructed.
func validateHandlerSetup(conf *config.Configuration, validator validation.Validator) error {
	renderer, err := templates.NewRenderer(&appContext{
		w: &watcher.NoopWatcher{},
		v: validator,
		l: zerolog.Nop(),
		c: conf,
	})
	if err != nil {
		return err
	}

	rawConf, err := parser.FromStruct(conf)
	if err != nil {
		return err
	}

	nfh, err := responder.CreateNotFoundHandler(responder.NewServiceRegistry(renderer), rawConf)
	if err != nil {
		return err
	}

	_, err = fallback.NewHandler(nfh, conf.Gjallar.ErrorHandler.Overrides)

	return err
}
