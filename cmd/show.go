package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/holonet/internal/app"
	"github.com/papapumpkin/holonet/internal/swapi"
	"github.com/papapumpkin/holonet/internal/ui"
	"github.com/papapumpkin/holonet/internal/view"
)

// errBadTarget is wrapped when show's arguments name no resource.
var errBadTarget = errors.New("expected a resource URL or <category> <uid>")

var showCmd = &cobra.Command{
	Use:   "show <url> | show <category> <uid>",
	Short: "Print the details of one resource",
	Long: `Fetch a single resource and print every scalar property.

The resource is named either by its full URL, as printed by search, or by
category and uid.`,
	Example: `  holonet show people 1
  holonet show https://swapi.tech/api/planets/1 --format json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringP("format", "o", formatText, "output format: text, json, yaml or toml")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	format, err := checkFormat(format)
	if err != nil {
		return err
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	target, err := resolveTarget(rt.client.BaseURL(), args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return show(cmd.Context(), out, rt.client, target, format, isTTY(out))
}

// resolveTarget turns show's arguments into a resource URL.
func resolveTarget(base string, args []string) (string, error) {
	switch len(args) {
	case 1:
		u, err := url.Parse(args[0])
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return "", fmt.Errorf("%w: %q", errBadTarget, args[0])
		}
		return u.String(), nil
	case 2:
		c, err := swapi.ParseCategory(args[0])
		if err != nil {
			return "", err
		}
		if args[1] == "" {
			return "", fmt.Errorf("%w: empty uid", errBadTarget)
		}
		return swapi.ResourceURL(base, c, args[1]), nil
	}
	return "", errBadTarget
}

// show fetches target and prints it in format.
func show(ctx context.Context, w io.Writer, gw app.Gateway, target, format string, color bool) error {
	d := view.OpenDetails(target).Resolve(gw.FetchResource(ctx, target))
	if d.Phase == view.DetailsFailed {
		return fmt.Errorf("show %s: %s", target, d.Error)
	}
	if format == formatText {
		ui.New(w, color).Details(view.DetailTitle(d.Doc), view.DetailRows(d.Doc))
		return nil
	}
	return writeEncoded(w, format, map[string]any(d.Doc), color)
}
