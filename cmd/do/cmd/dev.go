package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/spf13/cobra"
)

func DevCmd() *cobra.Command {
	var appPort, proxyPort string

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Run the site under air, rebuilding CSS and the server on change",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(appPort, proxyPort)
		},
	}

	cmd.Flags().StringVar(&appPort, "port", "8090", "port the server listens on")
	cmd.Flags().StringVar(&proxyPort, "proxy-port", "8080", "port of the live-reload proxy to open in the browser")
	return cmd
}

func runDev(appPort, proxyPort string) error {
	airPath, err := exec.LookPath("air")
	if err != nil {
		fmt.Println("Missing binary: air")
		fmt.Println("Install with:")
		fmt.Println("  go install github.com/air-verse/air@latest")
		return fmt.Errorf("air not found")
	}

	if err := goBuild("bin/do", "./cmd/do"); err != nil {
		return fmt.Errorf("failed to build do: %w", err)
	}

	airArgs := []string{
		"air",
		"-c", "/dev/null",
		"-root", ".",
		"-build.cmd", "./bin/do gen && go build -o ./tmp/server ./cmd/server",
		"-build.bin", "./tmp/server",
		"-build.delay", "100",
		"-build.exclude_dir", "bin,node_modules,tmp",
		"-build.exclude_regex", "_templ.go$|_test.go$|site\\.css$",
		"-build.include_ext", "go,templ,css,md",
		"-build.kill_delay", "500ms",
		"-build.send_interrupt", "true",
		"-proxy.enabled", "true",
		"-proxy.proxy_port", proxyPort,
		"-proxy.app_port", appPort,
	}

	env := append(os.Environ(), "PORT="+appPort, "CONTENT_RELOAD=true")
	fmt.Printf("Open http://localhost:%s\n", proxyPort)
	return syscall.Exec(airPath, airArgs, env)
}

func goBuild(out, pkg string) error {
	fmt.Printf("Building %s...\n", out)
	build := exec.Command("go", "build", "-o", out, pkg)
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	return build.Run()
}
