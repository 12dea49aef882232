package infrastructure

import (
	"errors"
	"fmt"

	"github.com/dmogiovanni/teugestor-backend/config"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	"github.com/dmogiovanni/teugestor-backend/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), gormConfig(cfg))
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Falha ao conectar ao banco de dados")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao obter instância do banco de dados")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Conexão com banco de dados estabelecida com sucesso")

	if cfg.Database.AutoMigrate {
		if err := RunMigrations(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func gormConfig(cfg *config.Config) *gorm.Config {
	level := gormlogger.Warn
	if cfg.IsProduction() {
		level = gormlogger.Error
	}
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	}
}

type migration struct {
	name  string
	model interface{}
}

// migrations are ordered so referenced tables exist first.
var migrations = []migration{
	{"BankAccount", &bankAccountDB{}},
	{"Category", &categoryDB{}},
	{"Transaction", &transactionDB{}},
	{"CreditCard", &creditCardDB{}},
	{"Invoice", &invoiceDB{}},
	{"Expense", &expenseDB{}},
	{"Transfer", &transferDB{}},
	{"LinkedUser", &linkedUserDB{}},
	{"UserProfile", &profileDB{}},
}

func RunMigrations(db *gorm.DB) error {
	logger.Info().Msg("Executando migrations...")

	for _, m := range migrations {
		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error().
				Err(err).
				Str("entity", m.name).
				Msg("Erro ao migrar entidade")
			return fmt.Errorf("migrar %s: %w", m.name, err)
		}
	}

	logger.Info().Msg("Migrations executadas com sucesso!")
	return nil
}

// translateError maps driver errors onto the store sentinels the domain
// understands.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), shared.IsUniqueConstraintError(err):
		return fmt.Errorf("%w: %v", shared.ErrUniqueViolation, err)
	}
	return err
}

// requireAffected turns a zero row update or delete into ErrRecordNotFound.
func requireAffected(res *gorm.DB) error {
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.ErrRecordNotFound
	}
	return nil
}
