// Package cli is the dbgwalk command tree.
package cli

import (
	"bufio"
	"context"
	"flag"
	"io"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dbgwalk/internal/config"
	"dbgwalk/internal/version"
)

// session is the state shared by one command invocation.
type session struct {
	v   *viper.Viper
	cfg config.Config
}

// Execute runs the command tree on argv. Usage problems come back as
// *UsageError.
func Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(argv)
	return classify(root.ExecuteContext(ctx))
}

// NewRootCmd builds a fresh command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	s := &session{v: config.New()}

	root := &cobra.Command{
		Use:   "dbgwalk",
		Short: "Walk and assemble a k-mer de Bruijn graph",
		Long: `dbgwalk counts k-mers from FASTA reads into a count table and walks the
implicit de Bruijn graph over it: degree and neighbor queries for single
k-mers, and linear contig assembly outward from seed k-mers.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				if err := config.ReadFile(s.v, path); err != nil {
					return usage(err)
				}
			}
			cfg, err := config.Load(s.v)
			if err != nil {
				return usage(err)
			}
			s.cfg = cfg
			klog.V(2).Infof("config: %+v", cfg)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("dbgwalk version {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usage(err) })

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (YAML, TOML or JSON)")
	pf.Int("k", 21, "k-mer length (1..32)")
	pf.IntP("threads", "t", 0, "counting workers (0=all CPUs)")
	pf.Int("chunk-size", 1<<20, "split FASTA records into N-bp windows while counting (0=no chunking)")
	pf.StringP("store", "d", "", "badger directory holding the count table")
	pf.StringP("snapshot", "s", "", "count snapshot file")
	pf.StringSliceP("reads", "r", nil, "FASTA file(s) counted on the fly (repeatable, '-' for STDIN)")
	pf.StringP("output", "o", "text", "output: text | tsv | json | jsonl | fasta | yaml")
	pf.Bool("header", true, "print a header row in tsv output")
	for _, key := range []string{"k", "threads", "chunk-size", "store", "snapshot", "reads", "output", "header"} {
		_ = s.v.BindPFlag(key, pf.Lookup(key))
	}
	addLogFlags(pf)

	root.AddCommand(
		newCountCmd(s),
		newAssembleCmd(s),
		newDegreeCmd(s),
		newNeighborsCmd(s),
		newVersionCmd(),
	)
	return root
}

// addLogFlags exposes klog's flags (-v, --vmodule, --logtostderr, ...).
func addLogFlags(pf *pflag.FlagSet) {
	gfs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(gfs)
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
	})
	_ = gfs.Set("logtostderr", "true")
	pf.AddGoFlagSet(gfs)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), "dbgwalk version "+version.Version+"\n")
			return err
		},
	}
}

// buffered runs fn against a buffered stdout and flushes it.
func buffered(cmd *cobra.Command, fn func(w io.Writer) error) error {
	bw := bufio.NewWriterSize(cmd.OutOrStdout(), 1<<16)
	if err := fn(bw); err != nil {
		_ = bw.Flush()
		return err
	}
	return bw.Flush()
}
