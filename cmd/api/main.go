package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-insights-api/infrastructure/repository"
	"github.com/vfg2006/revenue-insights-api/internal/api"
	"github.com/vfg2006/revenue-insights-api/internal/config"
	"github.com/vfg2006/revenue-insights-api/internal/scheduler"
	"github.com/vfg2006/revenue-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/revenue-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-insights-api/internal/usecases/importing"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	customerRepo := repository.NewCustomerRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	importBatchRepo := repository.NewImportBatchRepository(pgConn)
	bucketFactRepo := repository.NewBucketFactRepository(pgConn)
	productFactRepo := repository.NewProductFactRepository(pgConn)
	analysisRepo := repository.NewAnalysisRepository(pgConn)
	analysisConfigRepo := repository.NewAnalysisConfigRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	importService := importing.NewService(
		pgConn,
		customerRepo,
		importBatchRepo,
		bucketFactRepo,
		productFactRepo,
	)

	analysisService := analyzing.NewService(
		pgConn,
		bucketFactRepo,
		analysisRepo,
		analysisConfigRepo,
		customerRepo,
	)

	// Inicializa o agendador de reanálise de receita
	analysisSyncService := scheduler.NewAnalysisSyncService(analysisService, cfg)

	if err := analysisSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reanálise de receita")
	} else {
		logrus.Info("Agendador de reanálise de receita iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		importService,
		analysisService,
		authenticator,
		analysisSyncService,
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
