package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "incov.dev/pkg/incov/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "incov", configBaseName)
	assert.Equal(t, "incov.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "repo", repoConfigKey)
	assert.Equal(t, "vcs.source_suffix", sourceSuffixKey)
	assert.Equal(t, "vcs.artifact_suffix", artifactSuffixKey)
	assert.Equal(t, "mapping.search_depth", searchDepthKey)
	assert.Equal(t, "mapping.conventions", conventionsKey)
	assert.Equal(t, "report.warn_limit", warnLimitConfigKey)
	assert.Equal(t, "INCOV", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, ".java", viper.GetString(sourceSuffixKey))
	assert.Equal(t, ".class", viper.GetString(artifactSuffixKey))
	assert.Equal(t, 5, viper.GetInt(searchDepthKey))
	assert.Equal(t, 5, viper.GetInt(warnLimitConfigKey))
}

func TestMapperOptions(t *testing.T) {
	opts, err := mapperOptions()
	require.NoError(t, err)

	assert.Equal(t, ".java", opts.SourceSuffix)
	assert.Equal(t, ".class", opts.ArtifactSuffix)
	assert.Equal(t, 5, opts.SearchDepth)
	assert.Equal(t, m.DefaultConventions(), opts.Conventions)
}

func TestMapperOptions_FromYAML(t *testing.T) {
	original := viper.Get(conventionsKey)
	defer viper.Set(conventionsKey, original)

	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
mapping:
  conventions:
    - name: kotlin
      source_roots: [src/main/kotlin/]
      output_dirs: [build/classes/kotlin/main]
`)))

	viper.Set(conventionsKey, v.Get(conventionsKey))

	opts, err := mapperOptions()
	require.NoError(t, err)
	require.Len(t, opts.Conventions, 1)
	assert.Equal(t, m.Convention{
		Name:        "kotlin",
		SourceRoots: []string{"src/main/kotlin/"},
		OutputDirs:  []string{"build/classes/kotlin/main"},
	}, opts.Conventions[0])
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	logPath := filepath.Join(t.TempDir(), "incov.log")
	configureLogger(logPath, true)

	require.NotNil(t, globalLogger)
	slog.Debug("resolved reference", "reference", "HEAD~1")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "resolved reference")
	assert.Contains(t, string(contents), "reference=HEAD~1")
}

