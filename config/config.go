package config

import (
	"fmt"
	"os"
	"path/filepath"
	"scanrelay/logger"
	"strings"

	"github.com/spf13/viper"
)

type DefaultPaths struct {
	ConfigDir       string
	LogPathApp      string
	LogPathDelivery string
	LogLevel        string
	GitHubAPIURL    string
}

type Configuration struct {
	Server struct {
		Port    string `mapstructure:"port"`
		LogPath string `mapstructure:"log_path"`
	} `mapstructure:"server"`
	Receiver struct {
		APIToken string `mapstructure:"api_token"`
	} `mapstructure:"receiver"`
	GitHub struct {
		Token          string `mapstructure:"token"`
		APIBaseURL     string `mapstructure:"api_base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"github"`
	Delivery struct {
		LogPath string `mapstructure:"log_path"`
	} `mapstructure:"delivery"`
	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`
}

var AppConfig Configuration

func expandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func GetDefaultConfigPaths() DefaultPaths {
	var paths DefaultPaths
	userConfigDirBase, err := os.UserConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not get user config dir: %v. Using current directory.\n", err)
		userConfigDirBase = "."
	}

	userConfigDir, err := expandTilde(userConfigDirBase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not expand tilde in user config dir '%s': %v. Using potentially literal path.\n", userConfigDirBase, err)
		userConfigDir = userConfigDirBase
	}

	paths.ConfigDir = filepath.Join(userConfigDir, "scanrelay")
	logDir := filepath.Join(paths.ConfigDir, "logs")

	paths.LogPathApp = filepath.Join(logDir, "app.log")
	paths.LogPathDelivery = filepath.Join(logDir, "delivery.log")
	paths.LogLevel = "INFO"
	paths.GitHubAPIURL = "https://api.github.com/"
	return paths
}

func Init(cfgFile string, flagAppLogPath, flagDeliveryLogPath, flagLogLevel string) error {
	v := viper.New()

	defaults := GetDefaultConfigPaths()
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.log_path", defaults.LogPathApp)
	v.SetDefault("receiver.api_token", "")
	v.SetDefault("github.token", "")
	v.SetDefault("github.api_base_url", defaults.GitHubAPIURL)
	v.SetDefault("github.timeout_seconds", 15)
	v.SetDefault("delivery.log_path", defaults.LogPathDelivery)
	v.SetDefault("logging.level", defaults.LogLevel)

	if cfgFile != "" {
		expandedCfgFile, err := expandTilde(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not expand tilde in config file path '%s': %v. Trying original path.\n", cfgFile, err)
			expandedCfgFile = cfgFile
		}
		v.SetConfigFile(expandedCfgFile)
		v.SetConfigType("yaml")
	} else {
		v.AddConfigPath(defaults.ConfigDir)
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("SCANRELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// The credentials keep their historical bare environment names alongside
	// the prefixed ones.
	v.BindEnv("receiver.api_token", "SCANRELAY_RECEIVER_API_TOKEN", "API_TOKEN")
	v.BindEnv("github.token", "SCANRELAY_GITHUB_TOKEN", "GITHUB_TOKEN")

	configUsedMsg := "Using default/environment configuration."
	readErr := v.ReadInConfig()
	if readErr == nil {
		configUsedMsg = fmt.Sprintf("Using config file: %s", v.ConfigFileUsed())
	} else {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				fmt.Fprintf(os.Stderr, "Warning: Config file specified by flag (%s) not found: %v\n", cfgFile, readErr)
			} else {
				fmt.Fprintln(os.Stderr, "No default config file found. Using defaults/environment variables.")
			}
		} else {
			fmt.Fprintf(os.Stderr, "Error reading config file %s: %v\n", v.ConfigFileUsed(), readErr)
		}
	}

	if err := v.Unmarshal(&AppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: Error unmarshalling configuration: %v\n", err)
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Apply flag overrides
	if flagAppLogPath != "" {
		expandedPath, err := expandTilde(flagAppLogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not expand tilde in --app-log path '%s': %v. Using original path.\n", flagAppLogPath, err)
			AppConfig.Server.LogPath = flagAppLogPath
		} else {
			AppConfig.Server.LogPath = expandedPath
		}
	}
	if flagDeliveryLogPath != "" {
		expandedPath, err := expandTilde(flagDeliveryLogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not expand tilde in --delivery-log path '%s': %v. Using original path.\n", flagDeliveryLogPath, err)
			AppConfig.Delivery.LogPath = flagDeliveryLogPath
		} else {
			AppConfig.Delivery.LogPath = expandedPath
		}
	}
	if flagLogLevel != "" {
		AppConfig.Logging.Level = strings.ToUpper(flagLogLevel)
	}

	// Ensure directories exist
	if err := os.MkdirAll(filepath.Dir(AppConfig.Server.LogPath), 0750); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create final app log directory %s: %v\n", filepath.Dir(AppConfig.Server.LogPath), err)
	}
	if err := os.MkdirAll(filepath.Dir(AppConfig.Delivery.LogPath), 0750); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create final delivery log directory %s: %v\n", filepath.Dir(AppConfig.Delivery.LogPath), err)
	}
	if err := os.MkdirAll(defaults.ConfigDir, 0750); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create main config directory %s: %v\n", defaults.ConfigDir, err)
	}

	// Initialize/Re-initialize loggers
	if err := logger.InitGlobalLoggers(AppConfig.Server.LogPath, AppConfig.Delivery.LogPath, AppConfig.Logging.Level); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: Failed to initialize global loggers with final config: %v\n", err)
		return fmt.Errorf("failed to initialize global loggers with final config: %w", err)
	}

	logger.Info(configUsedMsg)
	if readErr != nil && cfgFile != "" {
		logger.Error("Error occurred reading specified config file '%s': %v", cfgFile, readErr)
	}
	if flagAppLogPath != "" || flagDeliveryLogPath != "" || flagLogLevel != "" {
		logger.Info("Log path/level flags may have overridden config file/defaults.")
	}

	if AppConfig.Receiver.APIToken == "" {
		logger.Warn("Receiver API token is not configured. All inbound requests will be rejected with 401.")
	}
	if AppConfig.GitHub.Token == "" {
		logger.Info("GitHub token is not configured. Comment delivery is DISABLED; reports will still be accepted.")
	} else {
		logger.Info("GitHub comment delivery ENABLED. API base URL: %s", AppConfig.GitHub.APIBaseURL)
	}
	if AppConfig.GitHub.TimeoutSeconds <= 0 {
		logger.Warn("Invalid github.timeout_seconds (%d). Using 15.", AppConfig.GitHub.TimeoutSeconds)
		AppConfig.GitHub.TimeoutSeconds = 15
	}

	logger.Debug("Final AppConfig Initialized: %+v", AppConfig)
	return nil
}
