package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stayview/booking-insights-api/infrastructure/database/postgres"
	"github.com/stayview/booking-insights-api/infrastructure/datasource"
	"github.com/stayview/booking-insights-api/infrastructure/repository"
	"github.com/stayview/booking-insights-api/internal/api"
	"github.com/stayview/booking-insights-api/internal/config"
	"github.com/stayview/booking-insights-api/internal/scheduler"
	"github.com/stayview/booking-insights-api/internal/usecases/insighting"
	"github.com/stayview/booking-insights-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource := newSource(ctx, cfg)
	defer closeSource()

	datasetRepo := repository.NewDatasetRepository(source)

	// Carrega o dataset na partida para expor problemas de fonte imediatamente.
	// As rotas recarregam sob demanda, então a falha aqui não derruba o serviço.
	if snapshot, err := datasetRepo.Snapshot(ctx); err != nil {
		logrus.WithError(err).Warn("Falha ao carregar o dataset inicial")
	} else {
		logrus.WithFields(logrus.Fields{
			"source": snapshot.Source,
			"rows":   snapshot.Rows,
		}).Info("Dataset inicial carregado com sucesso")
	}

	if cfg.Dataset.Watch && cfg.Dataset.Type != config.DatasetPostgres {
		startWatcher(ctx, cfg.Dataset.Path, datasetRepo)
	}

	insightService := insighting.NewService(cfg, datasetRepo)
	reportService := reporting.NewService(insightService)

	// Inicializa o agendador de recarga do dataset
	datasetRefreshService := scheduler.NewDatasetRefreshService(datasetRepo, cfg)

	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		reportService,
		datasetRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newSource monta a fonte do dataset de acordo com a configuração
func newSource(ctx context.Context, cfg *config.Config) (datasource.Source, func()) {
	switch cfg.Dataset.Type {
	case config.DatasetPostgres:
		conn := pgconn(ctx, cfg.Database)
		return datasource.NewPostgresSource(conn, cfg.Database.Table), func() { conn.Close() }
	case config.DatasetXLSX:
		return datasource.NewXLSXSource(cfg.Dataset.Path, cfg.Dataset.Sheet), func() {}
	default:
		return datasource.NewCSVSource(cfg.Dataset.Path), func() {}
	}
}

// startWatcher invalida o cache do dataset quando o arquivo de origem muda
func startWatcher(ctx context.Context, datasetPath string, datasetRepo repository.DatasetRepository) {
	watcher, err := datasource.NewWatcher(datasetPath)
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível observar o arquivo do dataset")
		return
	}

	go func() {
		if err := watcher.Watch(ctx, datasetRepo.Invalidate); err != nil {
			logrus.WithError(err).Error("Observador do dataset encerrou com erro")
		}
	}()

	logrus.WithField("path", datasetPath).Info("Observando alterações no arquivo do dataset")
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
