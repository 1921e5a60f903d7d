package config

import (
	"reflect"
	"strings"

	"route-atlas/core/database"
	"route-atlas/core/logger"
	"route-atlas/core/server"
	"route-atlas/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Source holds the locations of the raw OpenFlights feeds and the lookup API.
	Source SourceConfig `mapstructure:"source"`
	// Backfill holds settings for the missing-airport lookup loop.
	Backfill BackfillConfig `mapstructure:"backfill"`
	// Output holds the names of the override and output tables.
	Output OutputConfig `mapstructure:"output"`
	// Server holds configuration for the catalog HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the relational export target.
	Database database.Config `mapstructure:"database"`
}

// SourceConfig describes where the raw datasets come from.
type SourceConfig struct {
	AirportsURL string `mapstructure:"airports_url" default:"https://raw.githubusercontent.com/jpatokal/openflights/master/data/airports.dat"`
	RoutesURL   string `mapstructure:"routes_url" default:"https://raw.githubusercontent.com/jpatokal/openflights/master/data/routes.dat"`
	LookupURL   string `mapstructure:"lookup_url" default:"https://openflights.org/php/apsearch.php"`
	// DataDir holds the downloaded feeds and the per-airport lookup cache.
	DataDir string `mapstructure:"data_dir" default:"./data"`
	// SkipDownload reuses feeds already present in DataDir.
	SkipDownload   bool `mapstructure:"skip_download" default:"false"`
	TimeoutSeconds int  `mapstructure:"timeout_seconds" default:"30"`
}

// Lookup cache backends.
const (
	StoreFile   = "file"
	StoreBucket = "bucket"
)

// BackfillConfig controls the serialized lookup loop.
type BackfillConfig struct {
	// IntervalMs is the minimum delay between two lookup requests.
	IntervalMs int `mapstructure:"interval_ms" default:"250"`
	// Store selects where lookup responses are cached (file, bucket).
	Store string `mapstructure:"store" default:"file"`
	// Prefix is the object prefix used by the bucket store.
	Prefix string `mapstructure:"prefix" default:"lookups"`
}

// OutputConfig names the override inputs and the generated artifacts.
type OutputConfig struct {
	AirportsFile      string `mapstructure:"airports_file" default:"airports.csv"`
	RoutesFile        string `mapstructure:"routes_file" default:"earthroutes.csv"`
	ExtraAirportsFile string `mapstructure:"extra_airports_file" default:"extra_airports.csv"`
	ExtraRoutesFile   string `mapstructure:"extra_routes_file" default:"extra_routes.csv"`
	// WorkbookFile enables an additional XLSX copy of both tables when set.
	WorkbookFile string `mapstructure:"workbook_file" default:""`
	// MetricsFile enables a Prometheus textfile dump of the run counters when set.
	MetricsFile string `mapstructure:"metrics_file" default:""`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SOURCE_DATA_DIR -> source.data_dir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
