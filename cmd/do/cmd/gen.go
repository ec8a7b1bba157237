package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pathway-edu/website/internal/service"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	stylesheetIn  = "assets/css/input.css"
	stylesheetOut = "assets/css/site.css"
)

var legalSlugs = []string{"privacy-policy", "terms-of-use", "cookie-policy"}

// genStep is one independent generator. Steps run concurrently.
type genStep struct {
	name string
	// upToDate reports that the step can be skipped; nil means always run.
	upToDate func() bool
	run      func(ctx context.Context) error
}

func GenCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate templates, build the stylesheet and check content in parallel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd.Context(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "run every step even if its output is current")
	return cmd
}

func runGen(ctx context.Context, force bool) error {
	steps := []genStep{
		{name: "templ", upToDate: templatesUpToDate, run: generateTemplates},
		{name: "tailwindcss", upToDate: stylesheetUpToDate, run: buildStylesheet},
		{name: "legal", run: checkLegalPages},
	}

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for _, step := range steps {
		g.Go(func() error {
			if !force && step.upToDate != nil && step.upToDate() {
				fmt.Printf("[%s] up to date\n", step.name)
				return nil
			}

			stepStart := time.Now()
			err := step.run(ctx)
			if err != nil {
				fmt.Printf("[%s] failed: %v\n", step.name, err)
				return fmt.Errorf("%s: %w", step.name, err)
			}
			fmt.Printf("[%s] done (%s)\n", step.name, time.Since(stepStart).Round(time.Millisecond))
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return err
	}

	fmt.Printf("done (%s)\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func buildStylesheet(ctx context.Context) error {
	if _, err := exec.LookPath("tailwindcss"); err != nil {
		fmt.Println("Missing binary: tailwindcss")
		fmt.Println("Install the standalone CLI: https://tailwindcss.com/blog/standalone-cli")
		return fmt.Errorf("tailwindcss not found")
	}

	tw := exec.CommandContext(ctx, "tailwindcss", "-i", stylesheetIn, "-o", stylesheetOut, "--minify")
	tw.Stdout = os.Stdout
	tw.Stderr = os.Stderr
	return tw.Run()
}

// generateTemplates runs the templ version pinned by the tool directive in
// go.mod.
func generateTemplates(ctx context.Context) error {
	gen := exec.CommandContext(ctx, "go", "tool", "templ", "generate", "-path", "internal/ui")
	gen.Stdout = os.Stdout
	gen.Stderr = os.Stderr
	return gen.Run()
}

func templatesUpToDate() bool {
	for _, path := range walkUI(".templ") {
		if !isUpToDate(strings.TrimSuffix(path, ".templ")+"_templ.go", []string{path}) {
			return false
		}
	}
	return true
}

// stylesheetUpToDate compares site.css against input.css and the templates
// and helpers under internal/ui, which hold the class names.
func stylesheetUpToDate() bool {
	inputs := append([]string{stylesheetIn}, walkUI(".templ", ".go")...)
	return isUpToDate(stylesheetOut, inputs)
}

// walkUI lists the non-test files under internal/ui with one of suffixes.
// Generated _templ.go files are left out; their .templ source is listed.
func walkUI(suffixes ...string) []string {
	var paths []string
	_ = filepath.WalkDir("internal/ui", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || strings.HasSuffix(path, "_test.go") || strings.HasSuffix(path, "_templ.go") {
			return nil
		}
		for _, suffix := range suffixes {
			if strings.HasSuffix(path, suffix) {
				paths = append(paths, path)
				break
			}
		}
		return nil
	})
	return paths
}

func isUpToDate(output string, inputs []string) bool {
	out, err := os.Stat(output)
	if err != nil {
		return false
	}
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err == nil && info.ModTime().After(out.ModTime()) {
			return false
		}
	}
	return true
}

// checkLegalPages fails when a policy page is missing or does not parse.
func checkLegalPages(context.Context) error {
	legal := service.NewLegalService("content", false)
	err := legal.LoadPages()
	if err != nil {
		return err
	}
	for _, slug := range legalSlugs {
		page, err := legal.Page(slug)
		if err != nil {
			return err
		}
		if page.LastUpdated == "" {
			return fmt.Errorf("%s has no lastUpdated date", slug)
		}
	}
	return nil
}
