package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ehrlich-b/cube/internal/kociemba"
	"github.com/spf13/cobra"
)

var kociembaCmd = &cobra.Command{
	Use:   "kociemba <cubestring>",
	Short: "Solve a 3x3x3 from a 54-character URFDLB facelet string",
	Long: `Solve a 3x3x3 cube given directly as a 54-character facelet string in
URFDLB order (9 stickers per face, row-major, each letter is the face whose
center shares that sticker's color).

Example:
  cube kociemba UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cubeString := args[0]
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		timeoutSecs, _ := cmd.Flags().GetFloat64("timeout")
		modeFlag, _ := cmd.Flags().GetString("mode")
		verify, _ := cmd.Flags().GetBool("verify")
		headless, _ := cmd.Flags().GetBool("headless")

		mode := kociemba.ModeOptimal
		if modeFlag == "fast" {
			mode = kociemba.ModeFast
		}

		timeout := time.Duration(timeoutSecs * float64(time.Second))
		result := kociemba.Solve(cubeString, maxDepth, timeout, mode)

		isError := len(result) >= 7 && result[:7] == "Error: "
		if verify && !isError {
			if ok, err := kociemba.Verify(cubeString, result); err != nil {
				fmt.Printf("Error verifying solution: %v\n", err)
				os.Exit(1)
			} else if !ok {
				fmt.Printf("Error: solution failed verification\n")
				os.Exit(1)
			}
		}

		if headless {
			fmt.Print(result)
			return
		}
		fmt.Println(result)
	},
}

func init() {
	kociembaCmd.Flags().Int("max-depth", 25, "Maximum move count to search up to")
	kociembaCmd.Flags().Float64("timeout", 10, "Search timeout in seconds")
	kociembaCmd.Flags().String("mode", "optimal", "Search mode: optimal or fast")
	kociembaCmd.Flags().Bool("verify", false, "Replay the solution and confirm it solves the cube")
	kociembaCmd.Flags().Bool("headless", false, "Output only the raw result, no trailing newline")
}
