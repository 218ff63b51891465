// Package shell implements the interactive text menu over a built graph.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agenthands/cinegraph/internal/core"
	"github.com/agenthands/cinegraph/internal/core/graph"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	errText lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		heading: r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
		errText: r.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
	}
}

type Shell struct {
	Explorer *core.Explorer

	in    *bufio.Scanner
	out   io.Writer
	style styles
}

func New(ex *core.Explorer, in io.Reader, out io.Writer) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	return &Shell{
		Explorer: ex,
		in:       scanner,
		out:      out,
		style:    newStyles(out),
	}
}

var errQuit = errors.New("quit")

// Run loops over the menu until the user exits, input ends, or ctx is done.
// Query failures are reported and the loop continues.
func (s *Shell) Run(ctx context.Context) error {
	s.println(s.style.title.Render("Movie Graph Explorer"))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.menu()

		choice, ok := s.prompt(fmt.Sprintf("Choose an option (1-%d): ", len(s.options())))
		if !ok {
			return s.in.Err()
		}

		err := s.dispatch(choice)
		if errors.Is(err, errQuit) {
			s.println("Goodbye!")
			return nil
		}
		if errors.Is(err, io.EOF) {
			return s.in.Err()
		}
	}
}

type option struct {
	label string
	run   func() error
}

func (s *Shell) options() []option {
	ex := s.Explorer
	return []option{
		{"Find shortest path between two titles", s.shortestPath},
		{"Recommend similar titles", s.recommend},
		{fmt.Sprintf("List %s titles connected to %s titles", ex.PrimaryName, ex.SecondaryName), s.overlap},
		{"Show most connected titles", s.mostConnected},
		{"Exit", func() error { return errQuit }},
	}
}

func (s *Shell) menu() {
	s.println("")
	s.println(s.style.heading.Render("Options:"))
	for i, o := range s.options() {
		s.printf("%d. %s\n", i+1, o.label)
	}
}

func (s *Shell) dispatch(choice string) error {
	opts := s.options()
	for i, o := range opts {
		if choice == fmt.Sprint(i+1) {
			return o.run()
		}
	}
	s.println(s.style.errText.Render("Invalid choice. Try again."))
	return nil
}

func (s *Shell) shortestPath() error {
	start, ok := s.prompt("Enter the first title: ")
	if !ok {
		return io.EOF
	}
	end, ok := s.prompt("Enter the second title: ")
	if !ok {
		return io.EOF
	}

	path, err := graph.ShortestPath(s.Explorer.Graph, start, end)
	if err != nil {
		s.reportError(err)
		return nil
	}

	s.println("")
	s.println(s.style.heading.Render("Shortest path:"))
	for i, key := range path {
		s.printf("%d. %s\n", i+1, key)
	}
	return nil
}

func (s *Shell) recommend() error {
	title, ok := s.prompt("Enter a title: ")
	if !ok {
		return io.EOF
	}

	neighbors, err := graph.Neighbors(s.Explorer.Graph, title)
	if err != nil {
		s.reportError(err)
		return nil
	}
	if len(neighbors) == 0 {
		s.println("No direct connections found.")
		return nil
	}

	s.println("")
	s.println(s.style.heading.Render(fmt.Sprintf("Titles connected to %s:", title)))
	for _, key := range neighbors {
		edge, _ := s.Explorer.Graph.Edge(title, key)
		s.printf("- %s %s\n", key, s.style.muted.Render(describe(edge.Reason.Director, edge.Reason.SharedCast)))
	}
	return nil
}

func (s *Shell) overlap() error {
	ex := s.Explorer
	titles := graph.CrossSourceOverlap(ex.Graph)

	s.println("")
	s.println(s.style.heading.Render(fmt.Sprintf("%s titles connected to %s titles:", ex.PrimaryName, ex.SecondaryName)))
	if len(titles) == 0 {
		s.println("No results.")
		return nil
	}
	for _, key := range titles {
		s.printf("- %s\n", key)
	}
	return nil
}

func (s *Shell) mostConnected() error {
	limit := s.Explorer.TopLimit
	ranked := graph.TopConnected(s.Explorer.Graph, limit)

	s.println("")
	s.println(s.style.heading.Render(fmt.Sprintf("Top %d Most Connected Titles:", limit)))
	if len(ranked) == 0 {
		s.println("No results.")
		return nil
	}
	for _, r := range ranked {
		s.printf("%s - %d connections\n", r.Key, r.Degree)
	}
	return nil
}

func (s *Shell) reportError(err error) {
	var nf *graph.NodeNotFoundError
	switch {
	case errors.As(err, &nf):
		s.println(s.style.errText.Render(fmt.Sprintf("Title not found: %s", strings.Join(nf.Keys, ", "))))
		s.println(s.style.muted.Render("Check the format, e.g. 'The Godfather (1972)'."))
	case errors.Is(err, graph.ErrNoPathFound):
		s.println("No path found between those titles.")
	default:
		s.println(s.style.errText.Render(err.Error()))
	}
}

func describe(director bool, cast []string) string {
	var parts []string
	if director {
		parts = append(parts, "same director")
	}
	if len(cast) > 0 {
		parts = append(parts, "shared cast: "+strings.Join(cast, ", "))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, "; ") + ")"
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
