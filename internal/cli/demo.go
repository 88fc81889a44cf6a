package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/contacts"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Create and update a sample contact, then list all contacts",
		Long: `Run a short scenario against a fresh registry: create Alice W. with
phone number 123456789, rename her to Alice Wonderland keeping the
phone number, then print every contact.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := contacts.Open(types.Config{Backend: opts.settings.Backend}, opts.log)
			if err != nil {
				return systemError("demo: %w", err)
			}
			defer book.Close()

			all, err := runDemo(book)
			if err != nil {
				return classify("demo", err)
			}
			return printContacts(cmd.OutOrStdout(), all, opts.jsonMode)
		},
	}
}

// runDemo creates one contact, updates its name and returns all contacts.
func runDemo(reg types.Registry) ([]types.MobileContact, error) {
	alice := types.MobileContactDTO{
		ID:          1,
		PhoneNumber: "123456789",
		UserDetails: types.UserDetailsDTO{ID: 1, Firstname: "Alice", Lastname: "W."},
	}
	if _, err := reg.Create(alice); err != nil {
		return nil, err
	}

	alice.UserDetails.Lastname = "Wonderland"
	if _, err := reg.Update(alice.ID, alice); err != nil {
		return nil, err
	}
	return reg.GetAll()
}

func printContacts(w io.Writer, all []types.MobileContact, jsonMode bool) error {
	if jsonMode {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(all); err != nil {
			return systemError("write output: %w", err)
		}
		return nil
	}
	for _, c := range all {
		fmt.Fprintf(w, "%d\t%s\t%s %s\n", c.ID, c.PhoneNumber, c.UserDetails.Firstname, c.UserDetails.Lastname)
	}
	return nil
}

// classify keeps rule violations as user errors and marks anything else as
// a system failure.
func classify(cmdName string, err error) error {
	if types.IsRuleViolation(err) {
		return err
	}
	return systemError("%s: %w", cmdName, err)
}
