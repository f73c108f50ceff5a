package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"incov.dev/pkg/incov/internal/domain"
	m "incov.dev/pkg/incov/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "incov"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	repoFlagName        = "repo"
	commitFlagName      = "commit"
	branchFlagName      = "branch"
	classFilesFlagName  = "classfiles"
	sourceFilesFlagName = "sourcefiles"
	manifestFlagName    = "manifest"
	analyzerFlagName    = "analyzer"
	warnLimitFlagName   = "warn-limit"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	repoConfigKey           = "repo"
	sourceSuffixKey         = "vcs.source_suffix"
	artifactSuffixKey       = "vcs.artifact_suffix"
	searchDepthKey          = "mapping.search_depth"
	conventionsKey          = "mapping.conventions"
	warnLimitConfigKey      = "report.warn_limit"
	analyzerConfigKey       = "report.analyzer"
	manifestConfigKey       = "report.manifest"
	defaultRepo             = ""
	defaultAnalyzer         = ""
	defaultManifest         = ""
	defaultWarnLimitSetting = domain.DefaultWarnLimit

	envPrefix = "INCOV"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".incov.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(repoConfigKey, defaultRepo)
	viper.SetDefault(sourceSuffixKey, domain.DefaultSourceSuffix)
	viper.SetDefault(artifactSuffixKey, domain.DefaultArtifactSuffix)
	viper.SetDefault(searchDepthKey, domain.DefaultSearchDepth)
	viper.SetDefault(conventionsKey, m.DefaultConventions())
	viper.SetDefault(warnLimitConfigKey, defaultWarnLimitSetting)
	viper.SetDefault(analyzerConfigKey, defaultAnalyzer)
	viper.SetDefault(manifestConfigKey, defaultManifest)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// mapperOptions reads the artifact mapping settings.
func mapperOptions() (domain.MapperOptions, error) {
	var conventions []m.Convention
	if err := viper.UnmarshalKey(conventionsKey, &conventions); err != nil {
		return domain.MapperOptions{}, fmt.Errorf("invalid %s: %w", conventionsKey, err)
	}

	for i, c := range conventions {
		if len(c.SourceRoots) == 0 {
			return domain.MapperOptions{}, fmt.Errorf("invalid %s: convention %d (%q) has no source_roots", conventionsKey, i, c.Name)
		}
	}

	return domain.MapperOptions{
		SourceSuffix:   viper.GetString(sourceSuffixKey),
		ArtifactSuffix: viper.GetString(artifactSuffixKey),
		Conventions:    conventions,
		SearchDepth:    viper.GetInt(searchDepthKey),
	}, nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
