package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gosc2/features"
	"github.com/samuelfneumann/gosc2/inspect"
	"github.com/samuelfneumann/gosc2/preprocess"
	"github.com/samuelfneumann/gosc2/synth"
	"github.com/samuelfneumann/gosc2/timestep"
	"github.com/samuelfneumann/gosc2/utils/progressbar"
	"gorgonia.org/tensor"
)

// DefaultActionSpace is the number of action functions of pysc2 v1.2
const DefaultActionSpace int = 524

// tableFlags hold the feature table files of a command
type tableFlags struct {
	minimap string
	screen  string
}

func (f *tableFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.minimap, "minimap-table", "",
		"YAML or TOML minimap feature table (default pysc2 v1.2)")
	cmd.PersistentFlags().StringVar(&f.screen, "screen-table", "",
		"YAML or TOML screen feature table (default pysc2 v1.2)")
}

// tables returns the configured feature tables
func (f *tableFlags) tables() (minimap, screen features.Table, err error) {
	minimap, screen = features.MinimapV12, features.ScreenV12
	if f.minimap != "" {
		if minimap, err = features.LoadTable(f.minimap); err != nil {
			return
		}
	}
	if f.screen != "" {
		if screen, err = features.LoadTable(f.screen); err != nil {
			return
		}
	}
	return minimap, screen, nil
}

// preprocessor returns the Preprocessor for the configured tables.
// The built-in selection policies are applied to the tables.
func (f *tableFlags) preprocessor() (preprocess.Preprocessor, error) {
	minimapTable, screenTable, err := f.tables()
	if err != nil {
		return preprocess.Preprocessor{}, err
	}

	minimap, err := preprocess.NewEncoder(minimapTable,
		preprocess.MinimapPolicy())
	if err != nil {
		return preprocess.Preprocessor{}, fmt.Errorf("minimap: %w", err)
	}
	screen, err := preprocess.NewEncoder(screenTable,
		preprocess.ScreenPolicy())
	if err != nil {
		return preprocess.Preprocessor{}, fmt.Errorf("screen: %w", err)
	}
	return preprocess.NewPreprocessor(minimap, screen)
}

func newRootCommand() *cobra.Command {
	var flags tableFlags

	rootCmd := &cobra.Command{
		Use:           "gosc2",
		Short:         "Preprocess StarCraft II feature layer observations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	flags.register(rootCmd)

	rootCmd.AddCommand(newLayoutCommand(&flags))
	rootCmd.AddCommand(newEncodeCommand(&flags))
	return rootCmd
}

func newLayoutCommand(flags *tableFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the output channel layout of the encoders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.preprocessor()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Minimap (%v): %d channels\n",
				p.Minimap.Table().Name(), p.Minimap.Channels())
			fmt.Fprintln(out, inspect.LayoutTable(p.Minimap))
			fmt.Fprintf(out, "\nScreen (%v): %d channels\n",
				p.Screen.Table().Name(), p.Screen.Channels())
			fmt.Fprintln(out, inspect.LayoutTable(p.Screen))
			return nil
		},
	}
}

// encodeOptions hold the flags of the encode command
type encodeOptions struct {
	input       string
	synthetic   int
	minimapSize int
	screenSize  int
	seed        uint64
	actionSpace int
	pngDir      string
	cell        int
}

func newEncodeCommand(flags *tableFlags) *cobra.Command {
	var opts encodeOptions

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode observations as a batch and print channel statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, flags, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "",
		"JSON file of observations to encode")
	f.IntVarP(&opts.synthetic, "synthetic", "n", 8,
		"Number of synthetic observations to encode when no input is given")
	f.IntVar(&opts.minimapSize, "minimap-size", 64,
		"Minimap resolution of synthetic observations")
	f.IntVar(&opts.screenSize, "screen-size", 84,
		"Screen resolution of synthetic observations")
	f.Uint64Var(&opts.seed, "seed", 1, "Seed for synthetic observations")
	f.IntVarP(&opts.actionSpace, "actions", "a", DefaultActionSpace,
		"Size of the action space")
	f.StringVar(&opts.pngDir, "png", "",
		"Directory to render the planes of the first observation to")
	f.IntVar(&opts.cell, "cell", 2, "Pixels per map cell in renderings")
	return cmd
}

func runEncode(cmd *cobra.Command, flags *tableFlags,
	opts encodeOptions) error {
	p, err := flags.preprocessor()
	if err != nil {
		return err
	}

	transitions, err := loadTransitions(flags, opts)
	if err != nil {
		return err
	}

	// Encode item by item to report progress and the index of any
	// malformed observation, then stack the encodings into a batch
	n := len(transitions)
	minimaps := make([]*tensor.Dense, n)
	screens := make([]*tensor.Dense, n)
	infos := make([]*tensor.Dense, n)

	bar := progressbar.NewManualProgressBar(cmd.ErrOrStderr(), "encode", 40, n)
	for i, t := range transitions {
		minimaps[i], screens[i], infos[i], err = p.Obs(t.Observation,
			opts.actionSpace)
		if err != nil {
			return fmt.Errorf("observation %d: %w", i, err)
		}
		bar.Increment()
		bar.Display()
	}
	bar.Finish()

	batch, err := preprocess.Stack(minimaps, screens, infos)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, batch)

	for _, part := range []struct {
		name    string
		encoder *preprocess.Encoder
		tensor  *tensor.Dense
	}{
		{"Minimap", p.Minimap, batch.Minimaps},
		{"Screen", p.Screen, batch.Screens},
	} {
		stats, err := inspect.Summarize(part.tensor)
		if err != nil {
			return err
		}
		table, err := inspect.StatsTable(part.encoder, stats)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%v\n%v\n", part.name, table)
	}

	if opts.pngDir != "" {
		if err := renderFirst(batch, opts); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nRendered planes to %v\n", opts.pngDir)
	}
	return nil
}

// loadTransitions returns the transitions to encode, read from the
// input file or generated synthetically
func loadTransitions(flags *tableFlags,
	opts encodeOptions) ([]timestep.Transition, error) {
	if opts.input != "" {
		obs, err := timestep.LoadObservations(opts.input)
		if err != nil {
			return nil, err
		}
		transitions := make([]timestep.Transition, len(obs))
		for i := range obs {
			transitions[i].Observation = obs[i]
			if i+1 < len(obs) {
				transitions[i].Next = obs[i+1]
			}
		}
		return transitions, nil
	}

	minimap, screen, err := flags.tables()
	if err != nil {
		return nil, err
	}
	g, err := synth.New(minimap, screen, opts.minimapSize, opts.screenSize,
		opts.actionSpace, opts.seed)
	if err != nil {
		return nil, err
	}
	return g.Transitions(opts.synthetic), nil
}

// renderFirst renders the encoded planes of the first observation of
// a batch
func renderFirst(batch preprocess.Batch, opts encodeOptions) error {
	if err := os.MkdirAll(opts.pngDir, 0o755); err != nil {
		return err
	}

	minimap, screen, _, err := batch.At(0)
	if err != nil {
		return err
	}
	err = inspect.RenderPlanes(minimap,
		filepath.Join(opts.pngDir, "minimap.png"), opts.cell)
	if err != nil {
		return err
	}
	return inspect.RenderPlanes(screen,
		filepath.Join(opts.pngDir, "screen.png"), opts.cell)
}
