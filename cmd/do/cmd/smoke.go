package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pathway-edu/website/internal/service"
	"github.com/pathway-edu/website/internal/upstream"
	"github.com/spf13/cobra"
)

func SmokeCmd() *cobra.Command {
	var (
		apiURL  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Check that the content API serves everything the site renders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiURL == "" {
				_ = godotenv.Load()
				apiURL = os.Getenv("BASE_API_URL")
			}
			if apiURL == "" {
				return fmt.Errorf("no API URL: pass --api or set BASE_API_URL")
			}
			return runSmoke(cmd.Context(), strings.TrimSuffix(apiURL, "/"), timeout)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "", "content API base URL (default $BASE_API_URL)")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "timeout per request")
	return cmd
}

type smokeCheck struct {
	name string
	run  func(ctx context.Context) (string, error)
}

func runSmoke(ctx context.Context, apiURL string, timeout time.Duration) error {
	content := service.NewContentService(upstream.New(apiURL, timeout))

	var firstBlog, firstProgramme string
	checks := []smokeCheck{
		{"blogs", func(ctx context.Context) (string, error) {
			blogs, err := content.Blogs(ctx)
			if err != nil {
				return "", err
			}
			if len(blogs) > 0 {
				firstBlog = blogs[0].ID
			}
			return fmt.Sprintf("%d blogs", len(blogs)), nil
		}},
		{"blog", func(ctx context.Context) (string, error) {
			if firstBlog == "" {
				return "skipped", nil
			}
			b, err := content.Blog(ctx, firstBlog)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%q, %d blocks", b.Title, len(b.Content)), nil
		}},
		{"programmes", func(ctx context.Context) (string, error) {
			programmes, err := content.Programmes(ctx)
			if err != nil {
				return "", err
			}
			if len(programmes) > 0 {
				firstProgramme = programmes[0].ID
			}
			return fmt.Sprintf("%d programmes", len(programmes)), nil
		}},
		{"programme", func(ctx context.Context) (string, error) {
			if firstProgramme == "" {
				return "skipped", nil
			}
			p, err := content.Programme(ctx, firstProgramme)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%q, form: %t", p.Title, p.HasForm()), nil
		}},
		{"eligibility-form", func(ctx context.Context) (string, error) {
			f, err := content.EligibilityForm(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d sections", len(f.Sections)), nil
		}},
	}

	fmt.Println("Checking", apiURL)
	failed := 0
	for _, c := range checks {
		start := time.Now()
		summary, err := c.run(ctx)
		elapsed := time.Since(start).Round(time.Millisecond)
		if err != nil {
			failed++
			fmt.Printf("  %-18s FAIL  %s (%s)\n", c.name, err, elapsed)
			continue
		}
		fmt.Printf("  %-18s ok    %s (%s)\n", c.name, summary, elapsed)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	return nil
}
