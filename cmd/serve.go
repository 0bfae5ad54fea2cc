package cmd

import (
	"fmt"

	"github.com/justsearch/justsearch/color"
	"github.com/justsearch/justsearch/icon"
	"github.com/justsearch/justsearch/justwatch"
	"github.com/justsearch/justsearch/key"
	"github.com/justsearch/justsearch/search"
	"github.com/justsearch/justsearch/server"
	"github.com/justsearch/justsearch/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "Listen address")
	lo.Must0(viper.BindPFlag(key.ServerAddr, serveCmd.Flags().Lookup("addr")))
	serveCmd.Flags().IntP("rate-limit", "r", 0, "Search requests per second, 0 disables limiting")
	lo.Must0(viper.BindPFlag(key.ServerRateLimit, serveCmd.Flags().Lookup("rate-limit")))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search over HTTP",
	Long: `Serve the search over HTTP.

  GET /api/search?q=<phrase>&type=<movie|series|any>&lang=<locale>&country=<code>&limit=<n>
  GET /healthz
  GET /metrics`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := server.Config{
			Addr:      viper.GetString(key.ServerAddr),
			RateLimit: viper.GetInt(key.ServerRateLimit),
			Lang:      viper.GetString(key.LocaleLang),
			Country:   viper.GetString(key.LocaleCountry),
		}

		searcher := search.NewSearcher(justwatch.NewClient(justwatch.Config{
			Endpoint: viper.GetString(key.ProviderEndpoint),
		}))

		fmt.Printf("%s listening on %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(cfg.Addr))
		handleErr(server.New(cfg, searcher).Run(cmd.Context()))
	},
}
