package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/holonet/internal/app"
	"github.com/papapumpkin/holonet/internal/store"
	"github.com/papapumpkin/holonet/internal/swapi"
	"github.com/papapumpkin/holonet/internal/ui"
	"github.com/papapumpkin/holonet/internal/view"
)

// errSearchFailed is returned after a failed search has been printed.
var errSearchFailed = errors.New("search failed")

var searchCmd = &cobra.Command{
	Use:   "search <category> [term...]",
	Short: "Search a category and print the results",
	Long: `Search one category by name and print the first page of results.

Categories: people, planets, species, starships, vehicles. Without a term
the whole first page of the category is listed.`,
	Example: `  holonet search people luke
  holonet search starships "star destroyer" --format yaml`,
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: categoryNames(),
	RunE:      runSearch,
}

func init() {
	searchCmd.Flags().StringP("format", "o", formatText, "output format: text, json, yaml or toml")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	category, err := swapi.ParseCategory(args[0])
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if format, err = checkFormat(format); err != nil {
		return err
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	ctrl := app.NewController(store.New(), rt.logger)
	out := cmd.OutOrStdout()
	return search(cmd.Context(), out, ctrl, rt.client, searchRequest{
		Category: category,
		Term:     strings.Join(args[1:], " "),
		Format:   format,
		Color:    isTTY(out),
	})
}

// searchRequest describes one headless search.
type searchRequest struct {
	Category swapi.Category
	Term     string
	Format   string
	Color    bool
}

// searchResult is the structured form of a results panel.
type searchResult struct {
	Category string         `json:"category" yaml:"category" toml:"category"`
	Term     string         `json:"term,omitempty" yaml:"term,omitempty" toml:"term,omitempty"`
	Count    int            `json:"count" yaml:"count" toml:"count"`
	Results  []resultRecord `json:"results" yaml:"results" toml:"results"`
}

type resultRecord struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
}

// search drives the controller through one search against gw and prints
// the rendered results panel.
func search(ctx context.Context, w io.Writer, ctrl *app.Controller, gw app.Gateway, req searchRequest) error {
	ctrl.SelectCategory(req.Category)
	ctrl.Search(ctx, gw, req.Term)

	st := ctrl.State()
	tree := view.Renderer{BaseURL: gw.BaseURL()}.Render(st, view.Local{Draft: req.Term})
	if st.HasError() {
		ui.New(w, req.Color).Results(tree.Results)
		return fmt.Errorf("%w: %s", errSearchFailed, st.Error)
	}

	if req.Format == formatText {
		ui.New(w, req.Color).Results(tree.Results)
		return nil
	}
	res := searchResult{
		Category: string(st.Category),
		Term:     st.SearchTerm,
		Count:    len(tree.Results.Cards),
		Results:  []resultRecord{},
	}
	for _, c := range tree.Results.Cards {
		res.Results = append(res.Results, resultRecord{
			Name:        c.Item.Name,
			Description: c.Item.Description,
			URL:         c.Item.URL,
		})
	}
	return writeEncoded(w, req.Format, res, req.Color)
}

func categoryNames() []string {
	cats := swapi.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}
