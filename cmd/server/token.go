package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-lootsheet/internal/auth"
)

var tokenGM bool

var tokenCmd = &cobra.Command{
	Use:   "token [user-id]",
	Short: "Issue a bearer token for a user",
	Long:  `Issue a bearer token signed with auth.secret. Pass --gm to let the token act as game master; the user must also be a game master in the store.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		issuer, err := auth.NewIssuer(&auth.Config{Secret: cfg.Auth.Secret, TTL: cfg.Auth.TTL})
		if err != nil {
			return err
		}

		raw, err := issuer.Issue(args[0], tokenGM)
		if err != nil {
			return err
		}
		fmt.Println(raw)
		return nil
	},
}

func init() {
	tokenCmd.Flags().BoolVar(&tokenGM, "gm", false, "issue a game master token")
}
