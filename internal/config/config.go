package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

const DefaultPath = "config/config.toml"

type LogConfig struct {
	Level  string `toml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Format string `toml:"format" validate:"omitempty,oneof=json console"`
}

// Columns maps raw CSV header names onto canonical record fields. Cast
// columns hold one name per cell unless SplitCast is set, in which case each
// cell is a comma-separated list.
type Columns struct {
	Title     string   `toml:"title" validate:"required"`
	Year      string   `toml:"year" validate:"required"`
	Genres    string   `toml:"genres"`
	Director  string   `toml:"director"`
	Cast      []string `toml:"cast"`
	SplitCast bool     `toml:"split_cast"`
}

type CatalogConfig struct {
	Name    string  `toml:"name" validate:"required"`
	Raw     string  `toml:"raw"`
	Cache   string  `toml:"cache" validate:"required"`
	Columns Columns `toml:"columns"`
}

type CatalogsConfig struct {
	Primary   CatalogConfig `toml:"primary"`
	Secondary CatalogConfig `toml:"secondary"`
}

type StoreConfig struct {
	Backend string `toml:"backend" validate:"oneof=file memgraph"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type BuildConfig struct {
	Strategy string `toml:"strategy" validate:"omitempty,oneof=index pairwise"`
}

type QueryConfig struct {
	TopLimit int `toml:"top_limit" validate:"min=1"`
}

type ServerConfig struct {
	Addr string `toml:"addr" validate:"required"`
}

type Config struct {
	Log      LogConfig      `toml:"log"`
	Catalog  CatalogsConfig `toml:"catalog"`
	Store    StoreConfig    `toml:"store"`
	Memgraph MemgraphConfig `toml:"memgraph"`
	Build    BuildConfig    `toml:"build"`
	Query    QueryConfig    `toml:"query"`
	Server   ServerConfig   `toml:"server"`
}

// Default returns a configuration for the IMDb Top 1000 and Netflix titles
// datasets laid out under data/ and cache/.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Catalog: CatalogsConfig{
			Primary: CatalogConfig{
				Name:  "IMDb",
				Raw:   "data/imdb_top_1000.csv",
				Cache: "cache/imdb_cache.json",
				Columns: Columns{
					Title:    "Series_Title",
					Year:     "Released_Year",
					Genres:   "Genre",
					Director: "Director",
					Cast:     []string{"Star1", "Star2", "Star3", "Star4"},
				},
			},
			Secondary: CatalogConfig{
				Name:  "Netflix",
				Raw:   "data/netflix_titles.csv",
				Cache: "cache/netflix_cache.json",
				Columns: Columns{
					Title:     "title",
					Year:      "release_year",
					Genres:    "listed_in",
					Director:  "director",
					Cast:      []string{"cast"},
					SplitCast: true,
				},
			},
		},
		Store:    StoreConfig{Backend: "file"},
		Memgraph: MemgraphConfig{URI: "bolt://localhost:7687"},
		Build:    BuildConfig{Strategy: "index"},
		Query:    QueryConfig{TopLimit: 10},
		Server:   ServerConfig{Addr: ":8080"},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv overrides config values with environment variables when present.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("CINEGRAPH_PRIMARY_CACHE"); v != "" {
		c.Catalog.Primary.Cache = v
	}
	if v := os.Getenv("CINEGRAPH_SECONDARY_CACHE"); v != "" {
		c.Catalog.Secondary.Cache = v
	}
	if v := os.Getenv("CINEGRAPH_STORE"); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		c.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		c.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		c.Memgraph.Password = v
	}
	if v := os.Getenv("CINEGRAPH_BUILD_STRATEGY"); v != "" {
		c.Build.Strategy = v
	}
	if v := os.Getenv("CINEGRAPH_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Store.Backend == "memgraph" && c.Memgraph.URI == "" {
		return errors.New("invalid configuration: memgraph store requires memgraph.uri")
	}
	return nil
}
