/*
Copyright © 2025 Your Name

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"marketbrief/internal/config"
	"marketbrief/internal/newsapi"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "marketbrief",
		Short: "Marketbrief is a CLI tool for financial news, trends and a trading assistant.",
		Long: `Marketbrief fetches financial headlines, classifies them by category and
sentiment, surfaces trending keywords, and answers questions about the news
through a local trading assistant.

Examples:
  marketbrief feed              # Fetch and print the current news feed
  marketbrief ask "bitcoin"     # One-shot assistant answer
  marketbrief chat              # Interactive assistant session
  marketbrief serve             # Start the HTTP API`,
	}

	// Initialize configuration
	cobra.OnInitialize(initConfig)

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.marketbrief.yaml)")

	// Add subcommands
	rootCmd.AddCommand(NewFeedCmd())
	rootCmd.AddCommand(NewAskCmd())
	rootCmd.AddCommand(NewChatCmd())
	rootCmd.AddCommand(NewTrendingCmd())
	rootCmd.AddCommand(NewTickerCmd())
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewTUICmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
}

// newProvider builds the news provider from configuration. An empty API key
// is allowed: requests will fail and callers degrade to the sample dataset.
func newProvider(cfg *config.Config) newsapi.Provider {
	return newsapi.NewClient(cfg.NewsAPI.BaseURL, cfg.NewsAPI.APIKey, cfg.NewsAPI.Timeout)
}
