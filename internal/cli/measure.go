package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidegraph/pkg/slide"
)

// measureCommand creates the measure command, which prints the box size the
// configured metrics assign to a text.
func (c *CLI) measureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "measure [text...]",
		Short: "Print the box size for a text",
		Long: `Print the width and height of the box that holds a text, using the
metrics from the config file. Multiple arguments are joined with spaces; use
"\n" for line breaks.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			text := strings.ReplaceAll(strings.Join(args, " "), `\n`, "\n")
			size := cfg.Metrics.Measure(text)

			printKeyValue("Width", fmt.Sprintf("%d EMU (%s in)", size.W, inches(size.W)))
			printKeyValue("Height", fmt.Sprintf("%d EMU (%s in)", size.H, inches(size.H)))
			return nil
		},
	}
}

func inches(emu int64) string {
	return fmt.Sprintf("%.2f", float64(emu)/slide.EMUPerInch)
}
