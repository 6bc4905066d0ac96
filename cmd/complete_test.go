package cmd

import (
	"flag"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

func TestCompletion(t *testing.T) {
	c := Completion()

	var names []string
	for name := range c.Sub {
		names = append(names, name)
	}
	sort.Strings(names)
	want := []string{"expense", "export", "fmt", "import", "income", "publish", "summary", "topic", "tx"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("subcommands mismatch (-want +got):\n%s", diff)
	}

	for _, name := range []string{"a", "c", "d"} {
		if _, ok := c.Sub["income"].Flags[name]; !ok {
			t.Errorf("income should complete flag -%s", name)
		}
	}
	if _, ok := c.Sub["import"].Flags["f"]; !ok {
		t.Error("import should complete flag -f")
	}
	if _, ok := c.Flags["backend"]; !ok {
		t.Error("missing global flag -backend")
	}
}

func TestIsRegistered(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("xt", flag.ContinueOnError), "xt")
	Register(commander)

	for _, c := range Commands {
		if !IsRegistered(commander, c.Command.Name()) {
			t.Errorf("%s should be registered", c.Command.Name())
		}
	}
	if IsRegistered(commander, "hello") {
		t.Error("hello should not be registered")
	}
}
