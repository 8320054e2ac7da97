// chartstyle resolves a declarative chart styling configuration into scoped
// CSS custom properties, and previews the palette in the terminal.
//
// Usage:
//
//	chartstyle chart.yaml                 # write the scoped stylesheet to stdout
//	chartstyle -preview chart.yaml        # static terminal preview
//	chartstyle -live chart.yaml           # interactive preview (TTY required)
//	chartstyle -theme dark -preview chart.yaml
//	chartstyle -scope chart-sales chart.yaml
//
// Settings resolve with priority flags > environment (CHARTSTYLE_THEME,
// NO_COLOR) > .chartstyle.yaml > defaults.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/viznest/chartstyle/chartstyle"
	"github.com/viznest/chartstyle/internal/config"
	"github.com/viznest/chartstyle/internal/version"
	"github.com/viznest/chartstyle/pkg/preview"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("chartstyle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	previewFlag := fs.Bool("preview", false, "Render a static terminal preview instead of CSS")
	liveFlag := fs.Bool("live", false, "Open the interactive terminal preview")
	themeFlag := fs.String("theme", "", "Preview theme: light, dark")
	scopeFlag := fs.String("scope", "", "Scope identifier for emitted CSS (default: generated)")
	noColorFlag := fs.Bool("no-color", false, "Disable color in preview output")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "chartstyle: expected exactly one chart config file")
		fs.Usage()
		return 2
	}

	flags := config.CliFlags{
		Theme:      *themeFlag,
		Scope:      *scopeFlag,
		NoColor:    *noColorFlag,
		ThemeSet:   *themeFlag != "",
		NoColorSet: *noColorFlag,
	}
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(stderr, "chartstyle: %v\n", err)
		return 1
	}
	settings, err := config.Resolve(flags, dir)
	if err != nil {
		fmt.Fprintf(stderr, "chartstyle: %v\n", err)
		return 1
	}

	cfg, err := chartstyle.LoadConfigFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "chartstyle: %v\n", err)
		return 1
	}

	if settings.NoColor {
		preview.NoColor()
	}

	switch {
	case *liveFlag:
		if !isTTYWriter(stdout) {
			fmt.Fprintln(stderr, "chartstyle: -live needs a terminal")
			return 1
		}
		if err := preview.Run(cfg); err != nil {
			fmt.Fprintf(stderr, "chartstyle: %v\n", err)
			return 1
		}
		return 0
	case *previewFlag:
		fmt.Fprintln(stdout, preview.Render(cfg, settings.Theme, previewWidth(stdout)))
		return 0
	default:
		fmt.Fprint(stdout, chartstyle.CSS(settings.Scope, cfg))
		return 0
	}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// previewWidth returns the terminal width for static previews, or 80 when
// stdout is not a terminal.
func previewWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
