package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/infixtree"
)

func main() {
	log.SetFlags(0)
	if err := newCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	inname, verb     string
	echo             bool
	strict, rightpow bool
}

func newCommand() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "infixtree [expression ...]",
		Short: "Evaluate space-separated infix arithmetic",
		Long: `Evaluate space-separated infix arithmetic like "3 + 4 * 2".

Each argument is one expression. With no arguments, expressions are read one
per line from the input file or stdin.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &o, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.inname, "in", "", "input file (default stdin if no args given)")
	f.StringVar(&o.verb, "fmt", "", "result formatting string (default shortest exact decimal)")
	f.BoolVar(&o.echo, "echo", false, "print parse trees")
	f.BoolVar(&o.strict, "strict", false, "reject tokens that are neither numbers nor operators")
	f.BoolVar(&o.rightpow, "right-pow", false, "group chained ^ from the right")
	return cmd
}

func run(cmd *cobra.Command, o *options, args []string) error {
	var opts []infixtree.BuildOption
	if o.strict {
		opts = append(opts, infixtree.Strict())
	}
	if o.rightpow {
		opts = append(opts, infixtree.RightAssocPow())
	}
	preset := infixtree.BuildPreset(opts...)
	out := cmd.OutOrStdout()

	in, err := infile(cmd, o.inname, len(args) == 0)
	if err != nil {
		return err
	}
	if in != nil {
		defer in.Close()
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			line := strings.TrimSuffix(sc.Text(), "\r")
			if line == "" {
				continue
			}
			evaluate(out, line, preset, o)
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("reading %s: %w", inputName(o.inname), err)
		}
	}
	for _, arg := range args {
		evaluate(out, arg, preset, o)
	}
	return nil
}

// evaluate builds and evaluates one expression and reports the outcome.
// A failure is reported in place of the result.
func evaluate(w io.Writer, expr string, opt infixtree.BuildOption, o *options) {
	fmt.Fprintf(w, "Expression: %s\n", expr)
	n, err := infixtree.Build(infixtree.Split(expr), opt)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if o.echo {
		fmt.Fprintf(w, "Tree: %v\n", n)
	}
	r, err := n.Eval()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if o.verb == "" {
		fmt.Fprintf(w, "Result: %s\n", infixtree.Format(r))
		return
	}
	fmt.Fprintf(w, "Result: "+o.verb+"\n", r)
}

func infile(cmd *cobra.Command, inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return nil, nil
}

func inputName(inname string) string {
	if inname == "" || inname == "-" {
		return "stdin"
	}
	return inname
}
