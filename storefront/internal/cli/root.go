// Package cli wires the storefront commands.
package cli

import (
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"
	"time"

	"crawingo-delivery/config"
	"crawingo-delivery/storefront/internal/apiclient"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type globals struct {
	apiURL   string
	token    string
	logLevel string
	http     apiclient.HTTPClient
}

func (g *globals) logger(cmd *cobra.Command) *logrus.Entry {
	log := config.NewLogger("storefront", g.logLevel, "text")
	log.Logger.SetOutput(cmd.ErrOrStderr())
	return log
}

func (g *globals) client(cmd *cobra.Command) (*apiclient.Client, error) {
	return apiclient.New(apiclient.Config{
		BaseURL: g.apiURL,
		HTTP:    g.http,
		Token:   g.token,
		Log:     g.logger(cmd),
	})
}

// NewRootCmd builds the storefront command tree. httpClient may be nil.
func NewRootCmd(cfg config.Settings, httpClient apiclient.HTTPClient) *cobra.Command {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	g := &globals{http: httpClient}

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse Crawingo restaurants and place orders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&g.apiURL, "api", cfg.PublicBaseURL, "Base URL of the Crawingo API")
	cmd.PersistentFlags().StringVar(&g.token, "token", cfg.APIToken, "Bearer token (or CRAWINGO_TOKEN)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		restaurantsCmd(g),
		menuCmd(g),
		dishCmd(g),
		registerCmd(g),
		loginCmd(g),
		reviewCmd(g),
		orderCmd(g, cfg.ProgressInterval),
		ordersCmd(g),
		qrcodeCmd(g),
	)
	return cmd
}

func table(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func row(w io.Writer, cols ...interface{}) {
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}
