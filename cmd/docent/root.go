// Package main provides the entry point for the docent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for docent.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docent",
		Short: "AI guide for the Gwacheon National Science Museum website",
		Long: `Docent answers visitor questions about the Gwacheon National Science
Museum using only content fetched live from the official website.

A question is matched against a fixed directory of site pages, the matched
pages are fetched and reduced to facts, and a language model reformats those
facts into a short Korean answer. The model never adds information of its
own; when nothing matches, docent says so and points at the site map.

The OpenAI API key is read from the OPENAI_API_KEY environment variable.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .docent.yml in current or home directory)")

	// Add subcommands
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewChatCmd())
	cmd.AddCommand(NewPagesCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
