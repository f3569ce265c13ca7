package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	configs "github.com/thirdweb-dev/blobflow/configs"
	"github.com/thirdweb-dev/blobflow/internal/env"
	customLogger "github.com/thirdweb-dev/blobflow/internal/log"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "blobflow",
		Short: "EIP-4844 blob dashboard data layer",
		Long:  "Serves and browses blob activity (blocks, mempool, submitters, fee stats) from the blob API",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the blob API")
	rootCmd.PersistentFlags().Duration("api-timeout", 0, "Per-attempt timeout of blob API requests")
	rootCmd.PersistentFlags().Int("api-max-retries", 2, "How many times a failed blob API request is retried")
	rootCmd.PersistentFlags().Bool("api-mock-fallback", false, "Answer failed requests with mock data")
	rootCmd.PersistentFlags().String("api-user-lookup", "", "User detail lookup strategy (listing or direct)")
	rootCmd.PersistentFlags().Bool("api-aggregate-mempool", false, "Group mempool blob records by transaction hash")
	rootCmd.PersistentFlags().Int("server-port", 0, "Port the HTTP API listens on")
	rootCmd.PersistentFlags().String("storage-preferences-type", "", "Preference store (badger, redis or memory)")
	rootCmd.PersistentFlags().String("storage-preferences-badger-path", "", "Directory of the badger preference store")
	rootCmd.PersistentFlags().String("storage-preferences-redis-addr", "", "Redis address of the preference store")
	rootCmd.PersistentFlags().String("network-default", "", "Network used when none was selected yet")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("api.url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("api.timeout", rootCmd.PersistentFlags().Lookup("api-timeout"))
	viper.BindPFlag("api.maxRetries", rootCmd.PersistentFlags().Lookup("api-max-retries"))
	viper.BindPFlag("api.mockFallback", rootCmd.PersistentFlags().Lookup("api-mock-fallback"))
	viper.BindPFlag("api.userLookup", rootCmd.PersistentFlags().Lookup("api-user-lookup"))
	viper.BindPFlag("api.aggregateMempool", rootCmd.PersistentFlags().Lookup("api-aggregate-mempool"))
	viper.BindPFlag("server.port", rootCmd.PersistentFlags().Lookup("server-port"))
	viper.BindPFlag("storage.preferences.type", rootCmd.PersistentFlags().Lookup("storage-preferences-type"))
	viper.BindPFlag("storage.preferences.badger.path", rootCmd.PersistentFlags().Lookup("storage-preferences-badger-path"))
	viper.BindPFlag("storage.preferences.redis.addr", rootCmd.PersistentFlags().Lookup("storage-preferences-redis-addr"))
	viper.BindPFlag("network.default", rootCmd.PersistentFlags().Lookup("network-default"))
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(networkCmd)
}

func initConfig() {
	env.Load()
	if err := configs.LoadConfig(cfgFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	customLogger.InitLogger()
}
