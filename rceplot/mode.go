package rceplot

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Mode says whether figures are saved, and where, or shown.
type Mode struct {
	Save bool
	Dir  string //only meaningful if Save is true
}

func (M Mode) String() string {
	if M.Save {
		return "save-to(" + M.Dir + ")"
	}
	return "interactive"
}

// ModeResolver picks the rendering mode from an explicit save directory (which
// may be empty) and the run directory.
type ModeResolver interface {
	Resolve(saveDir, runDir string) Mode
}

// ResolverFunc adapts a function to ModeResolver.
type ResolverFunc func(saveDir, runDir string) Mode

func (f ResolverFunc) Resolve(saveDir, runDir string) Mode { return f(saveDir, runDir) }

// DisplayResolver decides from the display variables of the environment.
// An explicit save directory always wins. Without one, a headless process
// (no X11 nor Wayland display) saves into the run directory, and anything
// else is shown interactively.
type DisplayResolver struct {
	Display        string
	WaylandDisplay string
}

func (D DisplayResolver) Headless() bool {
	return D.Display == "" && D.WaylandDisplay == ""
}

func (D DisplayResolver) Resolve(saveDir, runDir string) Mode {
	if saveDir != "" {
		return Mode{Save: true, Dir: saveDir}
	}
	if D.Headless() {
		return Mode{Save: true, Dir: runDir}
	}
	return Mode{}
}

// Viewer shows image files to the user. A blocking viewer returns once they
// have been dismissed.
type Viewer interface {
	Show(files []string) error
}

// CommandViewer opens each file with an external program, one at a time,
// waiting for the program to exit before opening the next one. The program
// gets Args followed by the file name.
// Whether Show blocks until the figures are dismissed depends on the program:
// an image viewer such as eog or feh does, a launcher such as xdg-open
// usually doesn't.
type CommandViewer struct {
	Command string
	Args    []string
	Output  io.Writer //where the program's stdout and stderr go. nil means os.Stderr
}

func (C CommandViewer) Show(files []string) error {
	if C.Command == "" {
		return fmt.Errorf("no image viewer configured")
	}
	for _, f := range files {
		cmd := exec.Command(C.Command, append(append([]string{}, C.Args...), f)...)
		cmd.Stdout, cmd.Stderr = C.Output, C.Output
		if C.Output == nil {
			cmd.Stdout, cmd.Stderr = os.Stderr, os.Stderr
		}
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("viewer %s on %s: %w", C.Command, f, err)
		}
	}
	return nil
}
