package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	City     CityConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	CollectionCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// CityConfig holds the municipal profile the service operates on. The
// per-institution population coefficients are modeling assumptions,
// not measured data.
type CityConfig struct {
	CityCode               int
	ChildrenPerInstitution int
	StaffPerInstitution    int
	NearbyMinRadiusMeters  int
	NearbyMaxRadiusMeters  int
	NearbyResultLimit      int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			CollectionCacheTTL: time.Duration(viper.GetInt("COLLECTION_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		City: CityConfig{
			CityCode:               viper.GetInt("CITY_CODE"),
			ChildrenPerInstitution: viper.GetInt("EVAC_CHILDREN_PER_INSTITUTION"),
			StaffPerInstitution:    viper.GetInt("EVAC_STAFF_PER_INSTITUTION"),
			NearbyMinRadiusMeters:  viper.GetInt("NEARBY_MIN_RADIUS_METERS"),
			NearbyMaxRadiusMeters:  viper.GetInt("NEARBY_MAX_RADIUS_METERS"),
			NearbyResultLimit:      viper.GetInt("NEARBY_RESULT_LIMIT"),
		},
	}

	// Set default values if not provided
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 2
	}
	if cfg.Cache.CollectionCacheTTL == 0 {
		cfg.Cache.CollectionCacheTTL = 60 * time.Second
	}
	if cfg.City.CityCode == 0 {
		cfg.City.CityCode = 2600 // Eilat
	}
	if cfg.City.ChildrenPerInstitution == 0 {
		cfg.City.ChildrenPerInstitution = 30
	}
	if cfg.City.StaffPerInstitution == 0 {
		cfg.City.StaffPerInstitution = 5
	}
	if cfg.City.NearbyMinRadiusMeters == 0 {
		cfg.City.NearbyMinRadiusMeters = 1
	}
	if cfg.City.NearbyMaxRadiusMeters == 0 {
		cfg.City.NearbyMaxRadiusMeters = 10000
	}
	if cfg.City.NearbyResultLimit == 0 {
		cfg.City.NearbyResultLimit = 100
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
