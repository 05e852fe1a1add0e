package cmd

import (
	"errors"
	"testing"
)

func TestSubcommandsRegistered(t *testing.T) {
	t.Parallel()

	want := []string{"browse", "search", "show", "journal"}
	for _, name := range want {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			found := false
			for _, c := range rootCmd.Commands() {
				if c.Name() == name {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected %q subcommand to be registered on rootCmd", name)
			}
		})
	}
}

func TestPersistentFlags(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"config", "verbose", "api"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent flag %q", flag)
		}
	}
	for _, c := range []struct {
		name string
		flag string
	}{
		{"search", "format"},
		{"show", "format"},
		{"journal", "file"},
		{"journal", "follow"},
	} {
		cmd, _, err := rootCmd.Find([]string{c.name})
		if err != nil {
			t.Fatalf("Find(%q): %v", c.name, err)
		}
		if cmd.Flags().Lookup(c.flag) == nil {
			t.Errorf("expected flag %q on %s", c.flag, c.name)
		}
	}
}

func TestBrowseRequiresTTY(t *testing.T) {
	t.Parallel()
	if isStderrTTY() {
		t.Skip("stderr is a terminal")
	}
	if err := runBrowse(browseCmd, nil); !errors.Is(err, errNoTTY) {
		t.Errorf("runBrowse() = %v, want %v", err, errNoTTY)
	}
}
