package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	ApiPrefix             string        `yaml:"api_prefix" validate:"required,startswith=/"`
	HttpPort              int           `yaml:"http_port" validate:"required"`
	JwtTTL                time.Duration `yaml:"jwt_ttl" validate:"required"`
	SecureCookies         bool          `yaml:"secure_cookies"`
	LogLevel              string        `yaml:"log_level"`
	LogJSON               bool          `yaml:"log_json"`
	UploadsDir            string        `yaml:"uploads_dir" validate:"required"`
	MaxUploadSize         int64         `yaml:"max_upload_size" validate:"required"`
	AllowedImageMimeTypes []string      `yaml:"allowed_image_mime_types" validate:"required,min=1"`
	AllowedOrigins        []string      `yaml:"allowed_origins"`
	TrustedProxies        []string      `yaml:"trusted_proxies" validate:"dive,cidr|ip"`
	AuthRateLimit         RateLimit     `yaml:"auth_rate_limit"`
	ImageHost             ImageHost     `yaml:"image_host"`
}

// RateLimit is a token bucket refilled PerMinute times a minute.
// Zero values fall back to defaults.
type RateLimit struct {
	PerMinute float64 `yaml:"per_minute" validate:"gte=0"`
	Burst     float64 `yaml:"burst" validate:"gte=0"`
}

const (
	defaultAuthPerMinute = 10
	defaultAuthBurst     = 5
)

// PerSecond returns the refill rate and the bucket capacity.
func (r RateLimit) PerSecond() (rate, burst float64) {
	perMinute, burst := r.PerMinute, r.Burst
	if perMinute == 0 {
		perMinute = defaultAuthPerMinute
	}
	if burst == 0 {
		burst = defaultAuthBurst
	}
	return perMinute / 60, burst
}

// ImageHost describes the S3-compatible bucket images are published to.
type ImageHost struct {
	Bucket        string `yaml:"bucket" validate:"required"`
	Region        string `yaml:"region" validate:"required"`
	Endpoint      string `yaml:"endpoint"` // empty for AWS itself
	PathStyle     bool   `yaml:"path_style"`
	Folder        string `yaml:"folder"`
	PublicBaseURL string `yaml:"public_base_url" validate:"required,url"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
	SSLMode  string `yaml:"sslmode"`
}

type ImageHostCredentials struct {
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

type Private struct {
	JwtKey    string               `yaml:"jwt_key" validate:"required"`
	Pg        Pg                   `yaml:"pg"`
	ImageHost ImageHostCredentials `yaml:"image_host"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file: " + err.Error())
	}
}

// overrideFromEnv lets deployments keep secrets out of private.yaml.
// A .env file in the working directory is loaded first when present.
func overrideFromEnv(private *Private) {
	_ = godotenv.Load()

	overrides := map[string]*string{
		"JWT_KEY":              &private.JwtKey,
		"PG_PASSWORD":          &private.Pg.Password,
		"S3_ACCESS_KEY_ID":     &private.ImageHost.AccessKeyID,
		"S3_SECRET_ACCESS_KEY": &private.ImageHost.SecretAccessKey,
	}
	for env, target := range overrides {
		if v := os.Getenv(env); v != "" {
			*target = v
		}
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)
	overrideFromEnv(&private)

	cfg := &Config{public, private}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		panic(fmt.Sprintf("invalid config: %s", err))
	}
	return cfg
}
