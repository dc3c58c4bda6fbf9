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

package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/gjallar/internal/handler/management"
	"github.com/dadrus/gjallar/internal/x/stringx"
)

// nolint: gochecknoglobals
var healthCmd = &cobra.Command{
	Use:     "health",
	Short:   "Checks the health status of a gjallar deployment",
	Example: "gjallar health -e https://gjallar.local",
	Run:     runHealthCheck,
}

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(healthCmd)

	healthCmd.PersistentFlags().StringP("endpoint", "e", "http://127.0.0.1:4459", `The base URL of gjallar's deployment.
Note: The endpoint URL should point to a single gjallar deployment.
If the endpoint URL points to a Load Balancer, these commands will effective test the Load Balancer.`)
	healthCmd.PersistentFlags().StringP("output", "o", "text", `The format for the result output.
Can be "json", "text", or "yaml".`)
}

func runHealthCheck(cmd *cobra.Command, _ []string) {
	endpointURL, _ := cmd.Flags().GetString("endpoint")
	outputFormat, _ := cmd.Flags().GetString("output")

	rawStatus, err := queryStatus(endpointURL)
	if err != nil {
		cmd.PrintErrf("%v", err)
		os.Exit(-1)
	}

	if err = printStatus(cmd, outputFormat, rawStatus); err != nil {
		cmd.PrintErrf("%v", err)
		os.Exit(-1)
	}
}

func queryStatus(endpointURL string) ([]byte, error) {
	resp, err := http.DefaultClient.Get(endpointURL + management.EndpointHealth)
	if err != nil {
		return nil, fmt.Errorf("Failed to send request: %w", err) //nolint:staticcheck
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Unexpected HTTP status code: %s", resp.Status) //nolint:staticcheck
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Failed to read response: %w", err) //nolint:staticcheck
	}

	return raw, nil
}

func printStatus(cmd *cobra.Command, format string, raw []byte) error {
	var status map[string]any
	if err := json.Unmarshal(raw, &status); err != nil {
		return fmt.Errorf("Failed to unmarshal response: %w", err) //nolint:staticcheck
	}

	switch format {
	case "json":
		cmd.Println(stringx.ToString(raw))
	case "yaml":
		rawYaml, err := yaml.Marshal(status)
		if err != nil {
			return fmt.Errorf("Failed to convert response to yaml: %w", err) //nolint:staticcheck
		}

		cmd.Println(stringx.ToString(rawYaml))
	default:
		cmd.Println(status["status"])
	}

	return nil
}
