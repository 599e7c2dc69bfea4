package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var GConfig *Config

func Init(filePath string) {
	config, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}
	initFromYaml(config)
	GConfig.fillFromEnv()
	err = GConfig.Verify()
	if err != nil {
		panic(err)
	}
}

func initFromYaml(config []byte) {
	err := yaml.Unmarshal(config, &GConfig)
	if err != nil {
		panic(err)
	}
}

type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`

	Provider   `yaml:"provider"`
	Host       `yaml:"host"`
	Cloudinary `yaml:"cloudinary"`
	AliOss     `yaml:"ali_oss"`
	Gallery    `yaml:"gallery"`
	MySQL      `yaml:"mysql"`
}

func (c *Config) fillFromEnv() {
	if c.Provider.APIKey == "" {
		c.Provider.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Cloudinary.APIKey == "" {
		c.Cloudinary.APIKey = os.Getenv("CLOUDINARY_API_KEY")
	}
	if c.Cloudinary.APISecret == "" {
		c.Cloudinary.APISecret = os.Getenv("CLOUDINARY_API_SECRET")
	}
	if c.AliOss.AccessKeyId == "" {
		c.AliOss.AccessKeyId = os.Getenv("OSS_ACCESS_KEY_ID")
	}
	if c.AliOss.AccessKeySecret == "" {
		c.AliOss.AccessKeySecret = os.Getenv("OSS_ACCESS_KEY_SECRET")
	}
}

func (c *Config) Verify() error {
	if c.Provider.Model == "" {
		return fmt.Errorf("provider.model is required")
	}
	if c.Provider.APIKey == "" {
		return fmt.Errorf("provider api key is required (yaml or GEMINI_API_KEY)")
	}
	switch c.Host.Supplier {
	case "cloudinary":
		if c.Cloudinary.CloudName == "" {
			return fmt.Errorf("cloudinary.cloud_name is required")
		}
	case "ali_oss":
		if c.AliOss.Bucket == "" {
			return fmt.Errorf("ali_oss.bucket is required")
		}
		if _, err := time.ParseDuration(c.Host.URLExpires); err != nil {
			return err
		}
	default:
		return fmt.Errorf("host.supplier must be 'cloudinary' or 'ali_oss'")
	}
	switch c.Gallery.Backend {
	case "mysql":
		if c.MySQL.Database == "" {
			return fmt.Errorf("mysql.database is required")
		}
	case "file":
		if c.Gallery.FilePath == "" {
			return fmt.Errorf("gallery.file_path is required")
		}
	default:
		return fmt.Errorf("gallery.backend must be 'mysql' or 'file'")
	}
	if c.Gallery.ThumbnailRatio < 0 || c.Gallery.ThumbnailRatio >= 1 {
		return fmt.Errorf("gallery.thumbnail_ratio must be in [0, 1)")
	}
	return nil
}

type Provider struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`
}

type Host struct {
	Supplier   string `yaml:"supplier"`
	URLExpires string `yaml:"url_expires"`
}

type Cloudinary struct {
	CloudName string `yaml:"cloud_name"`
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
	Folder    string `yaml:"folder"`
}

type AliOss struct {
	AccessKeyId     string `yaml:"access_key_id"`
	AccessKeySecret string `yaml:"access_key_secret"`
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	Directory       string `yaml:"directory"`
}

type Gallery struct {
	Backend        string  `yaml:"backend"`
	FilePath       string  `yaml:"file_path"`
	RequirePrompt  bool    `yaml:"require_prompt"`
	ThumbnailRatio float64 `yaml:"thumbnail_ratio"`
}

type MySQL struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}
