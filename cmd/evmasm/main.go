package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Urethramancer/evmasm/assembler"
)

// ErrMissingFile is returned when no input file is named.
var ErrMissingFile = errors.New("missing input file argument")

func newRootCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "evmasm FILE",
		Short: "Assemble EVM mnemonics into hex bytecode",
		Long: `Evmasm reads a listing of whitespace-separated EVM mnemonics and prints
the bytecode as a single 0x-prefixed hex string.

Numbered opcodes take their size as a suffix (dup1-dup16, swap1-swap16,
log1-log4, push1-push32). A push is followed by its operand written as a
0x hex literal, e.g. "push2 0xabcd".`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrMissingFile
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := assembleFile(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), code)
				return err
			}
			return os.WriteFile(output, []byte(code+"\n"), 0644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the bytecode to `file` instead of stdout")
	cmd.Flags().AddGoFlagSet(flag.CommandLine)
	return cmd
}

func assembleFile(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", errors.Wrap(err, "unable to open input file")
	}
	defer f.Close()

	glog.V(1).Infof("assembling %s", name)
	code, err := assembler.New().AssembleReader(f)
	if err != nil {
		return "", errors.Wrap(err, name)
	}
	return code, nil
}

func main() {
	// Keep glog off the filesystem unless asked.
	flag.Set("logtostderr", "true")
	defer glog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		glog.Flush()
		fmt.Fprintf(os.Stderr, "evmasm: %v\n", err)
		if errors.Is(err, ErrMissingFile) {
			fmt.Fprintln(os.Stderr, "Usage: evmasm [flags] FILE")
		}
		os.Exit(1)
	}
}
