package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "coinsight",
	Short: "Coinsight - cryptocurrency market analytics API",
	Long: `Coinsight serves derived market analytics (trend signals, volatility,
correlation, profit/loss) computed from CoinGecko market data, backed by a
periodically refreshed market snapshot and a deduplicating request cache.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
