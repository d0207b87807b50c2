package rceplot

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	rce "github.com/ankurk017/RCE-1D-Emanuel"
	"github.com/ankurk017/RCE-1D-Emanuel/output"
)

// Style sets the size and resolution of the PNG files.
type Style struct {
	Width, Height vg.Length
	DPI           int
}

// DefaultStyle is 6.4in x 4.8in at 200 DPI.
var DefaultStyle = Style{Width: 6.4 * vg.Inch, Height: 4.8 * vg.Inch, DPI: 200}

// Plotter renders the diagnostic figures of a run.
//
// In interactive mode the figures are written to ShowDir, or to a new
// directory under os.TempDir() if ShowDir is empty, and handed to Viewer.
// Those files are never removed: a viewer such as xdg-open returns before the
// program it launches has read them.
type Plotter struct {
	Resolver ModeResolver //nil means DisplayResolver with the process environment
	Viewer   Viewer       //used in interactive mode
	ShowDir  string
	Style    Style //zero value means DefaultStyle
	Logger   *zap.Logger
}

// Result reports what Render did.
type Result struct {
	Mode  Mode
	Dir   string   //where Files are
	Files []string //written files, in both modes
}

func (R *Result) String() string {
	if !R.Mode.Save {
		return fmt.Sprintf("Showed %d figures from: %s", len(R.Files), R.Dir)
	}
	dir, err := filepath.Abs(R.Mode.Dir)
	if err != nil {
		dir = R.Mode.Dir
	}
	return fmt.Sprintf("Saved %d figures to: %s", len(R.Files), dir)
}

func (P *Plotter) logger() *zap.Logger {
	if P.Logger == nil {
		return zap.NewNop()
	}
	return P.Logger
}

func (P *Plotter) style() Style {
	st := P.Style
	if st.Width <= 0 || st.Height <= 0 {
		st.Width, st.Height = DefaultStyle.Width, DefaultStyle.Height
	}
	if st.DPI <= 0 {
		st.DPI = DefaultStyle.DPI
	}
	return st
}

func (P *Plotter) resolver() ModeResolver {
	if P.Resolver == nil {
		return DisplayResolver{Display: os.Getenv("DISPLAY"), WaylandDisplay: os.Getenv("WAYLAND_DISPLAY")}
	}
	return P.Resolver
}

// Render builds the seven figures of run and saves or shows them, depending on
// the mode the resolver picks for saveDir and run.Dir.
func (P *Plotter) Render(run *output.Run, saveDir string) (*Result, error) {
	log := P.logger()
	mode := P.resolver().Resolve(saveDir, run.Dir)
	log.Debug("rendering mode", zap.Stringer("mode", mode))
	figs := Figures(run)
	if mode.Save {
		files, err := Save(figs, mode.Dir, P.style())
		if err != nil {
			return nil, rce.Decorate(err, "Render")
		}
		return &Result{Mode: mode, Dir: mode.Dir, Files: files}, nil
	}
	if P.Viewer == nil {
		return nil, fmt.Errorf("interactive mode needs a viewer")
	}
	dir, err := P.showDir()
	if err != nil {
		return nil, err
	}
	files, err := Save(figs, dir, P.style())
	if err != nil {
		return nil, rce.Decorate(err, "Render")
	}
	log.Debug("showing figures", zap.String("dir", dir))
	if err := P.Viewer.Show(files); err != nil {
		return nil, err
	}
	return &Result{Mode: mode, Dir: dir, Files: files}, nil
}

func (P *Plotter) showDir() (string, error) {
	if P.ShowDir != "" {
		return P.ShowDir, nil
	}
	dir, err := os.MkdirTemp("", "rceplot-")
	if err != nil {
		return "", rce.NewIOError("mkdir", os.TempDir(), err, "Render")
	}
	return dir, nil
}

// Save writes figs as PNG files named after each figure into dir, creating dir
// and its parents if needed. It returns the written paths in order.
func Save(figs []Figure, dir string, st Style) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, rce.NewIOError("mkdir", dir, err, "Save")
	}
	files := make([]string, 0, len(figs))
	for _, F := range figs {
		p, err := F.Plot()
		if err != nil {
			return nil, err
		}
		c := vgimg.NewWith(vgimg.UseWH(st.Width, st.Height), vgimg.UseDPI(st.DPI))
		p.Draw(draw.New(c))
		name := filepath.Join(dir, F.Name)
		if err := writePNG(name, c); err != nil {
			return nil, err
		}
		files = append(files, name)
	}
	return files, nil
}

func writePNG(name string, c *vgimg.Canvas) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return rce.NewIOError("create", name, err, "writePNG")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = rce.NewIOError("close", name, cerr, "writePNG")
		}
	}()
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		return rce.NewIOError("write", name, err, "writePNG")
	}
	return nil
}
