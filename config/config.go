package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`
}

// Enabled reports whether a catalog database is configured at all. When it is
// not, the agent falls back to the embedded seed catalog.
func (p Postgres) Enabled() bool {
	return p.Host != ""
}

func (p Postgres) ConnStr() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s", p.Host, p.User, p.Password, p.DBName, p.Port, p.SSLMode)
}

func (p Postgres) ReplicationConnStr() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s replication=database", p.Host, p.User, p.Password, p.DBName, p.Port, p.SSLMode)
}

type Nats struct {
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	Stream         string `mapstructure:"stream"`
	CatalogSubject string `mapstructure:"catalogSubject"`
}

func (n Nats) ConnStr() string {
	return fmt.Sprintf("nats://%s:%s", n.Host, n.Port)
}

type Replication struct {
	Name string `mapstructure:"name"`
	Slot string `mapstructure:"slot"`
}

type Gemini struct {
	APIKey      string  `mapstructure:"apiKey"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
}

type Server struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type Agent struct {
	HistoryPath string `mapstructure:"historyPath"`
}

type Indexer struct {
	Workers   int `mapstructure:"workers"`
	QueueSize int `mapstructure:"queueSize"`
}

type Config struct {
	Postgres    Postgres    `mapstructure:"postgres"`
	Nats        Nats        `mapstructure:"nats"`
	Gemini      Gemini      `mapstructure:"gemini"`
	Replication Replication `mapstructure:"replication"`
	Server      Server      `mapstructure:"server"`
	Agent       Agent       `mapstructure:"agent"`
	Indexer     Indexer     `mapstructure:"indexer"`
}

func LoadConfig() *Config {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("nats.stream", "catalog")
	v.SetDefault("nats.catalogSubject", "catalog.coffee_shops")
	v.SetDefault("replication.name", "catalog_pub")
	v.SetDefault("replication.slot", "catalog_slot")
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("gemini.temperature", 0.4)
	v.SetDefault("agent.historyPath", "chat_history.db")
	v.SetDefault("indexer.workers", 2)
	v.SetDefault("indexer.queueSize", 100)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		log.Fatal(err)
	}

	return &config
}
