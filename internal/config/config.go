package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Tipos de fonte de dados suportados
const (
	DatasetCSV      = "csv"
	DatasetXLSX     = "xlsx"
	DatasetPostgres = "postgres"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Dataset     Dataset     `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	RefreshSync RefreshSync `mapstructure:",squash"`
	Insights    Insights    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Dataset descreve de onde o dataset de reservas é carregado
type Dataset struct {
	Type  string `mapstructure:"dataset_type"`
	Path  string `mapstructure:"dataset_path"`
	Sheet string `mapstructure:"dataset_sheet"`
	Watch bool   `mapstructure:"dataset_watch"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Table    string `mapstructure:"database_table"`
}

// RefreshSync controla a recarga agendada do dataset
type RefreshSync struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

type Insights struct {
	TopCountries int `mapstructure:"insights_top_countries"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASET_TYPE", DatasetCSV)
	viper.SetDefault("DATASET_PATH", "data/hotel_bookings_clean.csv")
	viper.SetDefault("DATASET_SHEET", "")
	viper.SetDefault("DATASET_WATCH", true)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/bookings")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_TABLE", "bookings")

	// Defaults para recarga agendada do dataset
	viper.SetDefault("DATASET_REFRESH_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("INSIGHTS_TOP_COUNTRIES", 10)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	switch config.Dataset.Type {
	case DatasetCSV, DatasetXLSX, DatasetPostgres:
	default:
		return nil, fmt.Errorf("unsupported dataset type %q", config.Dataset.Type)
	}

	if config.Dataset.Type != DatasetPostgres && config.Dataset.Path == "" {
		return nil, fmt.Errorf("dataset path is required for %s sources", config.Dataset.Type)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
