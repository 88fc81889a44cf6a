package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/script"
	"github.com/mesh-intelligence/contacts/pkg/contacts"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

var errOpsFailed = errors.New("operations failed")

func newApplyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <file|->",
		Short: "Apply a JSONL script of operations",
		Long: `Apply operations from a JSONL file (or stdin with "-") to one registry.

Each line is a JSON object with an "op" of create, update, delete, get or
list. Blank lines and lines starting with # are skipped.

  {"op":"create","contact":{"id":1,"phoneNumber":"555","userDetails":{"id":1,"firstname":"Ann","lastname":"Lee"}}}
  {"op":"get","phoneNumber":"555"}
  {"op":"list"}

One JSON result line is written per operation. Rule violations are
reported in the result and do not stop the run; the command then exits 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeIn()

			ops, err := script.Parse(in)
			if err != nil {
				return fmt.Errorf("apply: %w", err)
			}

			book, err := contacts.Open(types.Config{Backend: opts.settings.Backend}, opts.log)
			if err != nil {
				return systemError("apply: %w", err)
			}
			defer book.Close()

			sum, err := script.Run(book, ops, cmd.OutOrStdout(), opts.log)
			if err != nil {
				return systemError("apply: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "applied %d, failed %d\n", sum.Applied, sum.Failed)
			if sum.Failed > 0 {
				return fmt.Errorf("apply: %d %w", sum.Failed, errOpsFailed)
			}
			return nil
		},
	}
}

func openInput(cmd *cobra.Command, name string) (io.Reader, func(), error) {
	if name == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("apply: %w", err)
		}
		return nil, nil, systemError("apply: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
