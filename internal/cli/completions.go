package cli

import (
	"github.com/spf13/cobra"
)

// completeTemplatePaths provides shell completion for the template
// argument: filesystem completion filtered to .pbit files.
func completeTemplatePaths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"pbit"}, cobra.ShellCompDirectiveFilterFileExt
}

func init() {
	documentCmd.ValidArgsFunction = completeTemplatePaths
	inspectCmd.ValidArgsFunction = completeTemplatePaths
}
