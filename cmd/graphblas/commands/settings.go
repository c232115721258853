// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect the effective configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the merged configuration from all sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString(flagFormat)
			var data []byte
			switch format {
			case "toml":
				data, err = toml.Marshal(s)
			case "yaml":
				data, err = yaml.Marshal(s)
			case "json":
				data, err = json.MarshalIndent(s, "", "  ")
				data = append(data, '\n')
			default:
				return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
			}
			if err != nil {
				return errors.Wrapf(err, "marshal settings to %s", format)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	show.Flags().String(flagFormat, "toml", "Output format: toml, json, yaml")

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Check the merged configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := loadSettings(cmd); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return err
		},
	}

	cmd.AddCommand(show, validate)
	return cmd
}
