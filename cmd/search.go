package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/invopop/jsonschema"
	"github.com/justsearch/justsearch/color"
	"github.com/justsearch/justsearch/icon"
	"github.com/justsearch/justsearch/justwatch"
	"github.com/justsearch/justsearch/key"
	"github.com/justsearch/justsearch/locale"
	"github.com/justsearch/justsearch/log"
	"github.com/justsearch/justsearch/media"
	"github.com/justsearch/justsearch/open"
	"github.com/justsearch/justsearch/query"
	"github.com/justsearch/justsearch/search"
	"github.com/justsearch/justsearch/style"
	"github.com/justsearch/justsearch/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("type", "t", "any", "Media type to look for (movie, series, any)")
	lo.Must0(searchCmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"movie", "series", "any"}, cobra.ShellCompDirectiveNoFileComp
	}))
	searchCmd.Flags().StringP("lang", "l", "", "Locale to search in, e.g. pt-BR (defaults to "+key.LocaleLang+")")
	searchCmd.Flags().StringP("country", "c", "", "Country code to search in (defaults to "+key.LocaleCountry+")")
	searchCmd.Flags().IntP("limit", "n", 0, "Stop after this many candidates (0 means all)")
	searchCmd.Flags().BoolP("json", "j", false, "Print the results as JSON")
	searchCmd.Flags().BoolP("yaml", "y", false, "Print the results as YAML")
	searchCmd.Flags().BoolP("pick", "p", false, "Choose a result interactively and open it")
	searchCmd.Flags().BoolP("open", "o", false, "Open the best result in the browser")
	searchCmd.MarkFlagsMutuallyExclusive("json", "yaml", "pick", "open")

	searchCmd.AddCommand(searchSchemaCmd)
}

var searchCmd = &cobra.Command{
	Use:     "search [phrase...]",
	Short:   "Search for a title and list where it can be watched",
	Example: "  justsearch search casa de papel --type series",
	Args:    cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(strings.Join(append(args, toComplete), " ")), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			phrase  = strings.Join(args, " ")
			lang    = lo.Must(cmd.Flags().GetString("lang"))
			country = lo.Must(cmd.Flags().GetString("country"))
			limit   = lo.Must(cmd.Flags().GetInt("limit"))
			asJSON  = lo.Must(cmd.Flags().GetBool("json"))
			asYAML  = lo.Must(cmd.Flags().GetBool("yaml"))
			pick    = lo.Must(cmd.Flags().GetBool("pick"))
			openNow = lo.Must(cmd.Flags().GetBool("open"))
			quiet   = asJSON || asYAML || !util.IsTerminal()
		)

		if lang == "" {
			lang = viper.GetString(key.LocaleLang)
		}
		if country == "" {
			country = viper.GetString(key.LocaleCountry)
		}

		searcher := search.NewSearcher(justwatch.NewClient(justwatch.Config{
			Endpoint: viper.GetString(key.ProviderEndpoint),
		}))

		erase := func() {}
		if !quiet {
			erase = util.PrintErasable(fmt.Sprintf("%s Searching %s...", icon.Get(icon.Progress), style.Fg(color.Purple)(phrase)))
		}

		seq, err := searcher.Search(cmd.Context(), search.Request{
			Phrase:    phrase,
			MediaType: media.ParseMediaType(lo.Must(cmd.Flags().GetString("type"))),
			Lang:      lang,
			Location:  locale.WithCountry(country),
		})
		erase()
		handleErr(err)

		if err := query.Remember(phrase, 1); err != nil {
			log.Warnf("remember query: %s", err)
		}

		out := search.Output{Query: phrase, Results: search.Collect(seq, limit)}

		switch {
		case asJSON:
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(out))
		case asYAML:
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			handleErr(encoder.Encode(out))
			handleErr(encoder.Close())
		case pick:
			handleErr(pickAndOpen(out.Results))
		case openNow:
			if len(out.Results) == 0 {
				handleErr(errors.New("nothing to open"))
			}
			handleErr(open.Start(out.Results[0].URI))
		default:
			width, _, err := util.TerminalSize()
			if err != nil {
				width = 0
			}
			renderCandidates(cmd.OutOrStdout(), out, width)
		}
	},
}

func pickAndOpen(candidates []*media.Candidate) error {
	if len(candidates) == 0 {
		return errors.New("no results to pick from")
	}

	options := lo.Map(candidates, func(c *media.Candidate, i int) string {
		return fmt.Sprintf("%d. %s (%d)", i+1, c.Title, c.ReleaseYear)
	})

	var index int
	if err := survey.AskOne(&survey.Select{
		Message: "Watch",
		Options: options,
	}, &index); err != nil {
		return err
	}

	chosen := candidates[index]
	fmt.Printf("%s Opening %s\n", icon.Get(icon.Link), style.Fg(color.Yellow)(chosen.URI))
	return open.Start(chosen.URI)
}

var searchSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the search output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return t.Name()
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&search.Output{})))
	},
}
