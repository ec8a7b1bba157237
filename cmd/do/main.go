package main

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/pathway-edu/website/cmd/do/cmd"
	"github.com/spf13/cobra"
)

func main() {
	rebuildIfStale()

	rootCmd := &cobra.Command{
		Use:          "do",
		Short:        "Development tools for the Pathway website",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.DevCmd())
	rootCmd.AddCommand(cmd.GenCmd())
	rootCmd.AddCommand(cmd.SmokeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rebuildIfStale rebuilds bin/do when any of its sources is newer than the
// binary, then execs the fresh binary with the same arguments.
func rebuildIfStale() {
	exe, err := os.Executable()
	if err != nil || filepath.Base(filepath.Dir(exe)) != "bin" || filepath.Base(exe) != "do" {
		return
	}

	info, err := os.Stat(exe)
	if err != nil || !newerSource("cmd/do", info.ModTime()) {
		return
	}

	fmt.Println("Rebuilding bin/do...")
	build := exec.Command("go", "build", "-o", exe, "./cmd/do")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Println("Rebuild failed:", err)
		return
	}

	if err := syscall.Exec(exe, os.Args, os.Environ()); err != nil {
		fmt.Println("Re-exec failed:", err)
	}
}

func newerSource(dir string, than time.Time) bool {
	found := false
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}
		info, err := d.Info()
		if err == nil && info.ModTime().After(than) {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}
