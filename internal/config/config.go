package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Source     SourceConfig     `yaml:"source" mapstructure:"source"`
	Income     IncomeConfig     `yaml:"income" mapstructure:"income"`
	Boundaries BoundariesConfig `yaml:"boundaries" mapstructure:"boundaries"`
	Analysis   AnalysisConfig   `yaml:"analysis" mapstructure:"analysis"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// SourceConfig configures where the county attribute and death tables come from.
type SourceConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"` // "postgres" or "sqlite"
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	SQLitePath  string `yaml:"sqlite_path" mapstructure:"sqlite_path"`
	DeathsCSV   string `yaml:"deaths_csv_url" mapstructure:"deaths_csv_url"` // optional CSV override for the deaths table
}

// IncomeConfig locates the national median income workbook.
type IncomeConfig struct {
	WorkbookPath string `yaml:"workbook_path" mapstructure:"workbook_path"`
	SheetName    string `yaml:"sheet_name" mapstructure:"sheet_name"`
	RegionLabel  string `yaml:"region_label" mapstructure:"region_label"`
}

// BoundariesConfig locates the county boundary geometry.
type BoundariesConfig struct {
	GeoJSONURL    string `yaml:"geojson_url" mapstructure:"geojson_url"`
	ShapefilePath string `yaml:"shapefile_path" mapstructure:"shapefile_path"` // local TIGER/Line fallback
}

// AnalysisConfig holds the analysis constants.
type AnalysisConfig struct {
	SnapshotDate    string  `yaml:"snapshot_date" mapstructure:"snapshot_date"`
	IQRMultiplier   float64 `yaml:"iqr_multiplier" mapstructure:"iqr_multiplier"`
	ConfidenceLevel float64 `yaml:"confidence_level" mapstructure:"confidence_level"`
	HighlightFIPS   []int   `yaml:"highlight_fips" mapstructure:"highlight_fips"`
	HighlightsFile  string  `yaml:"highlights_file" mapstructure:"highlights_file"`
}

// OutputConfig configures where rendered artifacts are written.
type OutputConfig struct {
	ScatterPath    string `yaml:"scatter_path" mapstructure:"scatter_path"`
	ChoroplethPath string `yaml:"choropleth_path" mapstructure:"choropleth_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("COUNTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("source.driver", "postgres")
	v.SetDefault("income.sheet_name", "income")
	v.SetDefault("income.region_label", "United States")
	v.SetDefault("boundaries.geojson_url", "https://raw.githubusercontent.com/plotly/datasets/master/geojson-counties-fips.json")
	v.SetDefault("analysis.snapshot_date", "2023-03-23")
	v.SetDefault("analysis.iqr_multiplier", 1.5)
	v.SetDefault("analysis.confidence_level", 0.95)
	v.SetDefault("output.scatter_path", "scatter.html")
	v.SetDefault("output.choropleth_path", "choropleth.html")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
