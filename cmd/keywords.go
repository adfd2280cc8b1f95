package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	cobra "github.com/spf13/cobra"

	commands "github.com/inference-gateway/drawbot/internal/commands"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the words drawbot understands",
	Run: func(cmd *cobra.Command, args []string) {
		printKeywords(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}

func printKeywords(out io.Writer) {
	fmt.Fprintln(out, titleStyle.Render("Keywords"))
	names := make([]string, 0, len(commands.Keywords()))
	for _, k := range commands.Keywords() {
		fmt.Fprintf(out, "  %s %s\n", keywordStyle.Render(k.Usage()), k.Description)
		names = append(names, k.Kind.String())
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, dimStyle.Render("When a prompt names several elements the first one wins: "+strings.Join(names, " > ")))
}
