package fx

import (
	"github.com/dmogiovanni/teugestor-backend/config"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/auth"
	"github.com/dmogiovanni/teugestor-backend/internal/infrastructure"
	"github.com/dmogiovanni/teugestor-backend/internal/logger"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newBankAccountRepository,
		newCategoryRepository,
		newTransactionRepository,
		newCreditCardRepository,
		newTransferRepository,
		newLinkedUserRepository,
		newProfileRepository,
		newSupabaseClient,
		newTokenVerifier,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newBankAccountRepository(db *gorm.DB) *infrastructure.BankAccountRepository {
	return &infrastructure.BankAccountRepository{DB: db}
}

func newCategoryRepository(db *gorm.DB) *infrastructure.CategoryRepository {
	return &infrastructure.CategoryRepository{DB: db}
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}

func newCreditCardRepository(db *gorm.DB) *infrastructure.CreditCardRepository {
	return &infrastructure.CreditCardRepository{DB: db}
}

func newTransferRepository(db *gorm.DB) *infrastructure.TransferRepository {
	return &infrastructure.TransferRepository{DB: db}
}

func newLinkedUserRepository(db *gorm.DB) *infrastructure.LinkedUserRepository {
	return &infrastructure.LinkedUserRepository{DB: db}
}

func newProfileRepository(db *gorm.DB) *infrastructure.ProfileRepository {
	return &infrastructure.ProfileRepository{DB: db}
}

func newSupabaseClient(cfg *config.Config) (*infrastructure.SupabaseClient, error) {
	return infrastructure.NewSupabaseClient(cfg)
}

// newTokenVerifier validates tokens locally when the project JWT secret is
// configured and falls back to asking Supabase otherwise.
func newTokenVerifier(cfg *config.Config, client *infrastructure.SupabaseClient) auth.TokenVerifier {
	if cfg.Supabase.JWTSecret != "" {
		logger.Info().Msg("Validação local de JWT habilitada")
		return infrastructure.NewJWTVerifier(cfg.Supabase.JWTSecret)
	}
	logger.Warn().Msg("SUPABASE_JWT_SECRET não definido - tokens serão validados via Supabase Auth")
	return client
}
