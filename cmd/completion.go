package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [shell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for cartctl.

Supported shells: bash, zsh, fish, powershell.

To load completions:

Bash:
  $ source <(cartctl completion bash)

  # To install permanently (Linux):
  $ cartctl completion bash > /etc/bash_completion.d/cartctl

  # To install permanently (macOS with Homebrew):
  $ cartctl completion bash > $(brew --prefix)/etc/bash_completion.d/cartctl

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Add the following to your ~/.zshrc:
  $ autoload -Uz compinit && compinit

  $ cartctl completion zsh > "${fpath[1]}/_cartctl"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ cartctl completion fish | source

  # To install permanently:
  $ cartctl completion fish > ~/.config/fish/completions/cartctl.fish

PowerShell:
  PS> cartctl completion powershell | Out-String | Invoke-Expression

  # To install permanently, add the output to your PowerShell profile:
  PS> cartctl completion powershell >> $PROFILE
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// No-op: completion generation does not require config loading
	},
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Long: `Generate the autocompletion script for bash.

To load completions in your current shell session:

  $ source <(cartctl completion bash)

To install permanently (Linux):

  $ cartctl completion bash > /etc/bash_completion.d/cartctl

To install permanently (macOS with Homebrew):

  $ cartctl completion bash > $(brew --prefix)/etc/bash_completion.d/cartctl
`,
	Args:                  cobra.NoArgs,
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletionV2(os.Stdout, true)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Long: `Generate the autocompletion script for zsh.

If shell completion is not already enabled in your environment,
you will need to enable it by adding the following to your ~/.zshrc:

  autoload -Uz compinit && compinit

To load completions for every new session, run once:

  $ cartctl completion zsh > "${fpath[1]}/_cartctl"

You will need to start a new shell for this setup to take effect.
`,
	Args:                  cobra.NoArgs,
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Long: `Generate the autocompletion script for fish.

To load completions in your current shell session:

  $ cartctl completion fish | source

To install permanently:

  $ cartctl completion fish > ~/.config/fish/completions/cartctl.fish
`,
	Args:                  cobra.NoArgs,
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

var completionPowershellCmd = &cobra.Command{
	Use:   "powershell",
	Short: "Generate powershell completion script",
	Long: `Generate the autocompletion script for PowerShell.

To load completions in your current shell session:

  PS> cartctl completion powershell | Out-String | Invoke-Expression

To install permanently, add the output to your PowerShell profile:

  PS> cartctl completion powershell >> $PROFILE
`,
	Args:                  cobra.NoArgs,
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenPowerShellCompletion(os.Stdout)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	completionCmd.AddCommand(completionPowershellCmd)
	rootCmd.AddCommand(completionCmd)
}
