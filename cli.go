package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qtermstab/gates"
	"qtermstab/pauli"
	"qtermstab/verify"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
	trials     int
	seed       uint64
	workers    int
	unsigned   bool

	cfg Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "qtermstab",
		Short: "Clifford gate catalog, stabilizer simulator and flow checker",
		Long: `qtermstab is a catalog of Clifford gates, measurements and resets with a
stabilizer tableau simulator to run them.

Every gate declares its tableau, a decomposition into H, S, CX, M and R, and
the stabilizer flows it satisfies. The verify command checks all of these
claims with randomized trials.

Run without arguments to open the interactive circuit editor.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
		RunE: a.runTUI,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&a.trials, "trials", verify.DefaultTrials, "randomized trials per flow")
	pf.Uint64Var(&a.seed, "seed", 1, "random seed")
	pf.IntVar(&a.workers, "workers", 0, "gates audited in parallel (0 uses every CPU)")
	pf.BoolVar(&a.unsigned, "unsigned", false, "accept flows that only hold up to sign")

	root.AddCommand(a.gatesCmd(), a.showCmd(), a.verifyCmd(), a.simCmd(), a.tuiCmd())
	return root
}

// setup loads the config, applies explicit flags on top and builds the
// logger. The editor keeps a no-op logger so nothing is written over it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("trials") {
		cfg.Trials = a.trials
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("unsigned") {
		cfg.Unsigned = a.unsigned
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if cmd.Name() == "tui" || !cmd.HasParent() {
		return nil
	}
	logger, err := newLogger(cfg.LogLevel, a.verbose)
	if err != nil {
		return err
	}
	a.log = logger
	a.log.Debug("config loaded", zap.String("path", a.configPath), zap.Int("trials", cfg.Trials), zap.Uint64("seed", cfg.Seed))
	return nil
}

func (a *app) gatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gates [category]",
		Short: "List the gate catalog, optionally one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matched := false
			for _, cat := range gates.Default.Categories() {
				if len(args) == 1 && !strings.Contains(strings.ToLower(cat.Name), strings.ToLower(args[0])) {
					continue
				}
				matched = true
				t := table.New().
					Border(lipgloss.NormalBorder()).
					Headers("GATE", "ALIASES", "FLAGS", "INVERSE")
				for _, id := range cat.Gates {
					g := gates.Default.ByID(id)
					t.Row(g.Name, strings.Join(g.Aliases, ", "), g.Flags.String(), g.BestInverse.String())
				}
				fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(cat.Name))
				fmt.Fprintln(cmd.OutOrStdout(), t.String())
			}
			if !matched {
				return errors.Errorf("no category matches %q", args[0])
			}
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show GATE",
		Short: "Show a gate's tableau, flows and decomposition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gates.Default.At(args[0])
			if err != nil {
				return err
			}
			return writeGateDetail(cmd.OutOrStdout(), g)
		},
	}
}

// writeGateDetail prints everything the catalog knows about g.
func writeGateDetail(w io.Writer, g *gates.Gate) error {
	extra := g.Extra()
	fmt.Fprintln(w, titleStyle.Render(g.Name))
	if len(g.Aliases) > 0 {
		fmt.Fprintf(w, "aliases:  %s\n", strings.Join(g.Aliases, ", "))
	}
	fmt.Fprintf(w, "category: %s\n", extra.Category)
	fmt.Fprintf(w, "flags:    %s\n", g.Flags)
	fmt.Fprintf(w, "inverse:  %s\n", g.BestInverse)
	if g.ArgCount > 0 {
		fmt.Fprintf(w, "args:     %d\n", g.ArgCount)
	}
	fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(extra.Help))

	if t, ok := g.Tableau(); ok {
		fmt.Fprintf(w, "\ntableau:\n%s", indent(t.String()))
	}
	flows, err := g.Flows()
	if err != nil {
		return err
	}
	if len(flows) > 0 {
		fmt.Fprintln(w, "\nflows:")
		for _, f := range flows {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
	if dec := strings.TrimSpace(g.Decomposition()); dec != "" {
		fmt.Fprintf(w, "\ndecomposition:\n%s", indent(dec))
	}
	return nil
}

func indent(text string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		sb.WriteString("  " + line + "\n")
	}
	return sb.String()
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [gate...]",
		Short: "Check tableaus, inverses, decompositions and flows",
		Long: `Checks every gate, or only the named ones:

  inverse        the declared inverse undoes the gate's tableau
  decomposition  the H/S/CX/M/R decomposition acts like the gate on an EPR probe
  unitary        the decomposition's matrix conjugates Paulis like the tableau
  flows          the gate and its decomposition satisfy every declared flow

Flow checks are randomized: a pass means no counterexample was found in
--trials attempts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			auditor := &verify.Auditor{
				Trials:   a.cfg.Trials,
				Seed:     a.cfg.Seed,
				Workers:  a.cfg.Workers,
				Unsigned: a.cfg.Unsigned,
				Logger:   a.log,
			}
			report, err := auditor.Audit(cmd.Context(), args...)
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("GATE", "INVERSE", "DECOMP", "UNITARY", "FLOWS")
			for _, r := range report.Results {
				t.Row(r.Name, r.Inverse.String(), r.Decomposition.String(), r.Unitary.String(), flowSummary(r.Flows))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, t.String())
			fmt.Fprintln(out, report.Summary())
			if n := len(report.Failed()); n > 0 {
				return errors.Errorf("%d gates failed verification", n)
			}
			return nil
		},
	}
}

func flowSummary(flows []verify.FlowResult) string {
	if len(flows) == 0 {
		return "-"
	}
	passed := 0
	for _, f := range flows {
		if f.Gate != verify.Failed && f.Decomposition != verify.Failed {
			passed++
		}
	}
	return fmt.Sprintf("%d/%d", passed, len(flows))
}

func (a *app) simCmd() *cobra.Command {
	var bias, qubits int
	cmd := &cobra.Command{
		Use:   "sim [file]",
		Short: "Simulate a circuit and print its stabilizers",
		Long: `Runs a circuit on the stabilizer simulator, reading it from file or from
standard input when file is omitted or "-". Prints the measurement record and
the canonical stabilizers of the final state. Small unitary circuits also get
their Z-basis probabilities from a state vector.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 0 || args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return errors.Wrap(err, "reading circuit")
			}
			if bias < -1 || bias > 1 {
				return errors.Errorf("--bias must be -1, 0 or 1, got %d", bias)
			}

			r, err := runCircuit(string(data), qubits, a.cfg.Seed, bias)
			if err != nil {
				return err
			}
			a.log.Debug("simulated circuit", zap.Int("operations", len(r.circuit.Operations)), zap.Int("qubits", r.numQubits))

			out := cmd.OutOrStdout()
			if len(r.record) > 0 {
				fmt.Fprintf(out, "record: %s\n", formatRecord(r.record))
			}
			fmt.Fprintln(out, "stabilizers:")
			for _, s := range pauli.Strings(r.stabilizers) {
				fmt.Fprintf(out, "  %s\n", s)
			}
			if len(r.probs) > 0 {
				fmt.Fprintln(out, "probabilities:")
				for q, p := range r.probs {
					fmt.Fprintf(out, "  %s\n", formatProbability(q, p))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&bias, "bias", 0, "force random results: -1 reports true, 1 reports false, 0 samples")
	cmd.Flags().IntVar(&qubits, "qubits", 0, "minimum register size")
	return cmd
}

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive circuit editor",
		Args:  cobra.NoArgs,
		RunE:  a.runTUI,
	}
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newModel(a.cfg), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err := p.Run()
	return err
}
