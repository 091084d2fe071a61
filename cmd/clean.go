package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/wgetter/internal/output"
	"github.com/tanq16/wgetter/internal/utils"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [DIR]",
		Short: "Remove partial files left by aborted downloads",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			dir := outputDir
			if len(args) == 1 {
				dir = args[0]
			}
			removed, err := utils.CleanTemp(dir)
			for _, path := range removed {
				output.PrintInfo(fmt.Sprintf("%s %s", output.StyleSymbols["arrow"], path))
			}
			if err != nil {
				output.PrintError("Error cleaning up temporary files: " + err.Error())
				os.Exit(1)
			}
			output.PrintSuccess(fmt.Sprintf("%s %d temporary file(s) cleaned up", output.StyleSymbols["pass"], len(removed)))
		},
	}
}
