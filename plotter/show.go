package plotter

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"golang.org/x/term"
)

// Display receives the rendered files of the figures passed to Show. The
// default opens them in the system image viewer when stdout is a terminal
// and prints their paths otherwise.
var Display func(paths []string) error = openInViewer

// pathOutput receives the rendered paths when there is no terminal.
var pathOutput io.Writer = os.Stdout

// Show renders every pending figure to a PNG in a temporary directory,
// hands the files to Display and closes the figures. The figures are
// closed even when rendering fails.
func Show() error {
	figs := Figures()
	if len(figs) == 0 {
		return nil
	}
	defer func() {
		for _, f := range figs {
			Close(f)
		}
	}()

	dir, err := os.MkdirTemp("", "vis-show-")
	if err != nil {
		return err
	}
	paths := make([]string, 0, len(figs))
	for _, f := range figs {
		path := filepath.Join(dir, fmt.Sprintf("figure-%d.png", f.Number))
		if err := f.Save(path, SaveOptions{}); err != nil {
			os.RemoveAll(dir)
			return err
		}
		paths = append(paths, path)
	}
	return Display(paths)
}

func openInViewer(paths []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, p := range paths {
			fmt.Fprintln(pathOutput, p)
		}
		return nil
	}
	for _, p := range paths {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", p)
		case "windows":
			cmd = exec.Command("cmd", "/c", "start", "", p)
		default:
			cmd = exec.Command("xdg-open", p)
		}
		if err := cmd.Start(); err != nil {
			logger.Warn("could not open viewer", "path", p, "error", err)
			continue
		}
		logger.Debug("opened figure", "path", p, "viewer", cmd.Path)
	}
	return nil
}
