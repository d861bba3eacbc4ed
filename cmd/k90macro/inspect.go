package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/v0xg/k90macro/internal/descriptor"
	"github.com/v0xg/k90macro/internal/script"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <descriptor.xml...>",
		Short: "Print the script a macro descriptor was compiled from",
		Long: `inspect decodes the macro payload of each descriptor and prints it as a
script. Compiling the printed script reproduces the same payload.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, path := range args {
				if i > 0 {
					fmt.Println()
				}
				if err := inspectFile(path); err != nil {
					return fmt.Errorf("error in %s: %w", path, err)
				}
			}
			return nil
		},
	}
}

func inspectFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	d, err := descriptor.Read(f)
	if err != nil {
		return err
	}

	if verbose {
		for _, field := range d.Fields {
			if field.Name == descriptor.FieldMacroInfo {
				continue
			}
			fmt.Printf("# %s = %s\n", field.Name, field.Value)
		}
	}

	m, err := d.Macro()
	if err != nil {
		return err
	}
	logVerbose("# %d events, %d bytes, %dms", len(m.Events), m.Size(), m.Duration())
	fmt.Print(script.Format(m))
	return nil
}
