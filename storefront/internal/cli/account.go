package cli

import (
	"fmt"

	"crawingo-delivery/storefront/internal/model"

	"github.com/spf13/cobra"
)

func registerCmd(g *globals) *cobra.Command {
	var username, password, name, address string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print its token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := g.client(cmd)
			if err != nil {
				return err
			}
			user, err := client.Register(cmd.Context(), username, password, name, address)
			if err != nil {
				return err
			}
			printToken(cmd, user, client.Token())
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&address, "address", "", "Delivery address")
	for _, f := range []string{"username", "password", "name", "address"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func loginCmd(g *globals) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := g.client(cmd)
			if err != nil {
				return err
			}
			user, err := client.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			printToken(cmd, user, client.Token())
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func printToken(cmd *cobra.Command, user model.User, token string) {
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (#%d)\n%s\n", user.Username, user.ID, token)
}
