package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type APIConfig struct {
	URL              string        `mapstructure:"url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxRetries       int           `mapstructure:"maxRetries"`
	BackoffUnit      time.Duration `mapstructure:"backoffUnit"`
	MockFallback     bool          `mapstructure:"mockFallback"`
	CursorFormat     string        `mapstructure:"cursorFormat"`
	UserLookup       string        `mapstructure:"userLookup"`
	AggregateMempool bool          `mapstructure:"aggregateMempool"`
}

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type BadgerConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"poolSize"`
	Key      string `mapstructure:"key"`
}

type MemoryConfig struct {
	MaxItems int `mapstructure:"maxItems"`
}

type PreferenceStoreType string

const (
	PreferenceStoreBadger PreferenceStoreType = "badger"
	PreferenceStoreRedis  PreferenceStoreType = "redis"
	PreferenceStoreMemory PreferenceStoreType = "memory"
)

type PreferenceStorageConfig struct {
	Type   PreferenceStoreType `mapstructure:"type"`
	Badger *BadgerConfig       `mapstructure:"badger"`
	Redis  *RedisConfig        `mapstructure:"redis"`
	Memory *MemoryConfig       `mapstructure:"memory"`
}

type StorageConfig struct {
	Preferences PreferenceStorageConfig `mapstructure:"preferences"`
}

type NetworkConfig struct {
	Default string `mapstructure:"default"`
}

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	API     APIConfig     `mapstructure:"api"`
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Network NetworkConfig `mapstructure:"network"`
}

var Cfg Config

func setDefaults() {
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("api.url", "https://api.example.com")
	viper.SetDefault("api.timeout", 10*time.Second)
	viper.SetDefault("api.maxRetries", 2)
	viper.SetDefault("api.backoffUnit", time.Second)
	viper.SetDefault("api.cursorFormat", "page_%d")
	viper.SetDefault("api.userLookup", "listing")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("storage.preferences.type", string(PreferenceStoreBadger))
	viper.SetDefault("network.default", "Mainnet")
}

func LoadConfig(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		// no config file is fine, defaults and env cover everything
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("error reading config file, %s", err)
			}
		}
	}

	// sets e.g. API_URL to api.url
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	return nil
}
