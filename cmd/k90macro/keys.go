package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/v0xg/k90macro/internal/keys"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the key names scripts can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Single letters a-z and digits 0-9 name their own key.")
			fmt.Println()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ALIAS\tCODE\tKEY")
			for _, a := range keys.Aliases() {
				fmt.Fprintf(w, "%s\t0x%02x\t%s\n", a.Name, uint8(a.Code), a.Code)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println()
			fmt.Println("Key names (case-sensitive):")
			fmt.Println(strings.Join(keys.Names(), " "))
			fmt.Println()
			fmt.Println("Any other key can be given by its decimal code, 01-254.")
			return nil
		},
	}
}
