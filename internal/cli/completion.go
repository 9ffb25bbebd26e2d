package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for nmlgraph.

To load completions:

Bash:
  $ source <(nmlgraph completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ nmlgraph completion bash > /etc/bash_completion.d/nmlgraph
  # macOS:
  $ nmlgraph completion bash > $(brew --prefix)/etc/bash_completion.d/nmlgraph

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ nmlgraph completion zsh > "${fpath[1]}/_nmlgraph"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ nmlgraph completion fish | source

  # To load completions for each session, execute once:
  $ nmlgraph completion fish > ~/.config/fish/completions/nmlgraph.fish

PowerShell:
  PS> nmlgraph completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> nmlgraph completion powershell > nmlgraph.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
