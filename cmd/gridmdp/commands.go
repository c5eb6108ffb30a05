package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gridmdp/agent/random"
	"github.com/samuelfneumann/gridmdp/environment"
	"github.com/samuelfneumann/gridmdp/environment/envconfig"
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	"github.com/samuelfneumann/gridmdp/environment/gridworld/render"
	"github.com/samuelfneumann/gridmdp/experiment"
	"github.com/samuelfneumann/gridmdp/experiment/trackers"
	"github.com/samuelfneumann/gridmdp/utils/matutils"
	"github.com/samuelfneumann/gridmdp/utils/progressbar"
)

// Renderers available to the run command
const (
	renderNone     = "none"
	renderTerminal = "terminal"
	renderPNG      = "png"
)

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "gridmdp",
		Short:        "Inspect grid world MDPs and run experiments on them",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"JSON environment config, the demo grid world if empty")

	cmd.AddCommand(
		showCommand(&configPath),
		runCommand(&configPath),
		configCommand(),
	)
	return cmd
}

// newLogger returns the logger commands report progress with
func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "[gridmdp] ", log.LstdFlags)
}

// loadConfig returns the config at path, or the default config if path
// is empty
func loadConfig(path string) (envconfig.Config, error) {
	if path == "" {
		return envconfig.Default(), nil
	}
	return envconfig.Load(path)
}

func showCommand(configPath *string) *cobra.Command {
	var matrix bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the layout, action table and matrix form of a grid world",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			gw, err := c.CreateGridWorld(0)
			if err != nil {
				return err
			}
			return show(cmd.OutOrStdout(), gw, matrix)
		},
	}
	cmd.Flags().BoolVar(&matrix, "matrix", false,
		"print every transition distribution of the matrix form")
	return cmd
}

// show writes a description of gw to w
func show(w io.Writer, gw *gridworld.GridWorld, matrix bool) error {
	g := gw.Grid()
	fmt.Fprint(w, gw)
	fmt.Fprintf(w, "\nstates: %d  terminal: %v\n", g.NumStates(),
		g.TerminalStates())
	for _, spec := range []environment.Spec{gw.ObservationSpec(),
		gw.ActionSpec(), gw.DiscountSpec()} {
		fmt.Fprintln(w, spec)
	}
	fmt.Fprintln(w)

	for s := 0; s < g.NumStates(); s++ {
		r, c := g.CoordOf(s)
		names := make([]string, 0, gridworld.NumActions)
		for _, a := range gw.Actions(s) {
			names = append(names, a.String())
		}
		fmt.Fprintf(w, "%3d (%d, %d)  %s\n", s, r, c, strings.Join(names, " "))
	}

	m, err := gw.MatrixRepresentation()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%v\n", m)

	if !matrix {
		return nil
	}
	fmt.Fprintf(w, "R =\n%v\n\n", matutils.Format(m.R))
	for s := 0; s < m.S; s++ {
		for i, a := range m.A[s] {
			fmt.Fprintf(w, "P[%d, %v] = %v  R = %.3f\n", s, a, m.Row(s, i),
				m.Reward(s, i))
		}
	}
	return nil
}

type runFlags struct {
	seed     uint64
	steps    uint
	renderer string
	frames   string
	colours  bool
	returns  string
	lengths  string
	plot     string
	progress bool
}

func runCommand(configPath *string) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a uniform random agent on a grid world",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr()), c, f)
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&f.seed, "seed", 1, "seed of the environment and agent")
	flags.UintVar(&f.steps, "steps", 1000, "number of timesteps to run")
	flags.StringVar(&f.renderer, "render", renderNone,
		"draw transitions: none, terminal or png")
	flags.StringVar(&f.frames, "frames", "frames",
		"directory png frames are written to")
	flags.BoolVar(&f.colours, "colours", true,
		"colour the terminal renderer")
	flags.StringVar(&f.returns, "returns", "",
		"file episodic returns are saved to")
	flags.StringVar(&f.lengths, "lengths", "",
		"file episode lengths are saved to")
	flags.StringVar(&f.plot, "plot", "",
		"HTML file the returns and lengths are plotted to")
	flags.BoolVar(&f.progress, "progress", false,
		"draw a progress bar on stderr")
	return cmd
}

// run runs a random agent on the environment described by c
func run(out io.Writer, logger *log.Logger, c envconfig.Config,
	f runFlags) error {
	var opts []gridworld.Option
	var image *render.Image

	// Renderers only need the grid, which does not depend on the seed
	layout, err := c.BuildLayout()
	if err != nil {
		return err
	}
	grid := gridworld.NewGrid(layout)

	switch f.renderer {
	case renderNone:
	case renderTerminal:
		opts = append(opts, gridworld.WithObserver(
			render.NewTerminal(grid, out, f.colours)))
	case renderPNG:
		if err := os.MkdirAll(f.frames, 0700); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		image = render.NewImage(grid, f.frames)
		opts = append(opts, gridworld.WithObserver(image))
	default:
		return fmt.Errorf("run: no such renderer %q", f.renderer)
	}

	var bar *progressbar.ProgressBar
	if f.progress {
		bar = progressbar.New(logger.Writer(), 40, int(f.steps),
			int(f.steps)/100)
		opts = append(opts, gridworld.WithObserver(bar))
	}

	env, _, err := c.Create(f.seed, opts...)
	if err != nil {
		return err
	}
	logger.Printf("[INFO] environment: %v", env.GridWorld)

	returns := trackers.NewReturn(f.returns)
	lengths := trackers.NewEpisodeLength(f.lengths)
	exp := experiment.NewOnline(env, random.New(f.seed), f.steps, returns,
		lengths)

	err = exp.Run()
	if bar != nil {
		bar.Close()
	}
	if err != nil {
		return err
	}
	logger.Printf("[INFO] ran %d steps over %d finished episodes",
		exp.Steps(), len(lengths.Data()))

	if image != nil {
		if err := image.Err(); err != nil {
			return err
		}
		logger.Printf("[INFO] wrote %d frames to %v", image.Frames(), f.frames)
	}

	for _, t := range []struct {
		path    string
		tracker trackers.Tracker
	}{{f.returns, returns}, {f.lengths, lengths}} {
		if t.path == "" {
			continue
		}
		if err := t.tracker.Save(); err != nil {
			return err
		}
		logger.Printf("[INFO] saved %v", t.path)
	}

	if f.plot != "" {
		err := trackers.Plot(f.plot, "Random agent",
			trackers.SeriesOf("return", returns),
			trackers.SeriesOf("episode length", lengths))
		if err != nil {
			return err
		}
		logger.Printf("[INFO] plotted to %v", f.plot)
	}
	return nil
}

func configCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the default environment config as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := envconfig.Default().Save(out); err != nil {
				return err
			}
			newLogger(cmd.ErrOrStderr()).Printf("[INFO] wrote %v", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "gridmdp.json",
		"file the config is written to")
	return cmd
}
