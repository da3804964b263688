package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/askhatir/lms-service/internal/service"
	"github.com/askhatir/lms-service/pkg/kafka"
	"github.com/askhatir/lms-service/pkg/logger"
	"github.com/askhatir/lms-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LMS_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LMS_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

type Config struct {
	Server   HTTPServer     `yaml:"server"`
	Database postgres.DB    `yaml:"db"`
	Kafka    kafka.Config   `yaml:"kafka"`
	Library  service.Config `yaml:"library"`
	Log      logger.Log     `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
