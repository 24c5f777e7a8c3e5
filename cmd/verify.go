package main

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/acquireiq/enrich-cli/internal/model"
)

var verifyCmd = &cobra.Command{
	Use:   "verify EMAIL",
	Short: "Verify a single email address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initPipeline(cfg)
		if err != nil {
			return err
		}

		outcome := env.Validator.Validate(cmd.Context(), args[0])

		payload := struct {
			Local  model.ValidationOutcome `json:"local"`
			Remote any                     `json:"remote,omitempty"`
		}{Local: outcome}

		if env.Hunter != nil {
			remote, err := env.Hunter.VerifyEmail(cmd.Context(), args[0])
			if err != nil {
				cmd.PrintErrf("remote verification unavailable: %v\n", err)
			} else {
				payload.Remote = remote
			}
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal outcome")
		}
		cmd.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
