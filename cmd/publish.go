package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"text/template"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

// reportTask is one summary report to publish. It is also the data of the
// front matter template.
type reportTask struct {
	Year  int    // 0 for the summary of all years.
	Title string // report title.
	Name  string // file name, without extension.
}

type publishCmd struct {
	outputDir      string
	frontMatterTpl string
}

func (*publishCmd) Name() string     { return "publish" }
func (*publishCmd) Synopsis() string { return "write the monthly summaries of every year as markdown files" }
func (*publishCmd) Usage() string {
	return `xt publish [-o <dir>] [-frontmatter <file>]

  Writes one markdown monthly summary per year found in the ledger, named
  <year>.md, plus all.md summarizing every year together.

  The optional front matter template is a Go text/template executed with
  the fields .Year, .Title and .Name, and prepended to every report.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
}

func (c *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frontMatterTpl *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatterTpl, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse front matter template: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	s, ledger, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if ledger.Len() == 0 {
		fmt.Fprintln(stdout, "Ledger is empty, nothing to publish.")
		return subcommands.ExitSuccess
	}

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		return subcommands.ExitFailure
	}

	var g errgroup.Group
	g.SetLimit(4)
	for _, task := range reportTasks(ledger) {
		g.Go(func() error {
			return c.publish(ledger, task, frontMatterTpl)
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// publish writes the report of a single task.
func (c *publishCmd) publish(ledger *expenses.Ledger, task reportTask, frontMatterTpl *template.Template) error {
	l := ledger
	if task.Year != 0 {
		l = ledger.Filter(expenses.InYear(task.Year))
	}
	md := renderer.SummaryMarkdown(task.Title, l.MonthlySummary(), *currency)

	if frontMatterTpl != nil {
		fm, err := renderFrontMatter(frontMatterTpl, task)
		if err != nil {
			return fmt.Errorf("failed to render front matter for %s: %w", task.Name, err)
		}
		md = fm + "\n" + md
	}

	file := filepath.Join(c.outputDir, task.Name+".md")
	if err := os.WriteFile(file, []byte(md), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", file, err)
	}
	logger.Info("report generated", "file", file)
	return nil
}

// reportTasks returns one task per year with transactions, oldest first, and
// the task for all years.
func reportTasks(l *expenses.Ledger) []reportTask {
	var years []int
	for _, tx := range l.Transactions(expenses.AcceptAll) {
		if y := tx.When().Year(); !slices.Contains(years, y) {
			years = append(years, y)
		}
	}
	slices.Sort(years)

	tasks := make([]reportTask, 0, len(years)+1)
	for _, y := range years {
		tasks = append(tasks, reportTask{Year: y, Title: fmt.Sprintf("Monthly Summary %d", y), Name: strconv.Itoa(y)})
	}
	return append(tasks, reportTask{Title: "Monthly Summary", Name: "all"})
}

func renderFrontMatter(tpl *template.Template, task reportTask) (string, error) {
	var fmBuffer bytes.Buffer
	if err := tpl.Execute(&fmBuffer, task); err != nil {
		return "", err
	}
	return fmBuffer.String(), nil
}
