package fx

import (
	"github.com/dmogiovanni/teugestor-backend/config"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/account"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/admin"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/auth"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/category"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/creditcard"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/linkeduser"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/transaction"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/transfer"
	"github.com/dmogiovanni/teugestor-backend/internal/infrastructure"
	"github.com/dmogiovanni/teugestor-backend/internal/logger"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newAccountService,
		newCategoryService,
		newTransactionService,
		newDirectory,
		newAuthService,
		newLinkedUserService,
		newAdminService,
		newTransferService,
		newCreditCardService,
	),
)

func newAccountService(repo *infrastructure.BankAccountRepository) *account.Service {
	return account.NewService(repo)
}

func newCategoryService(repo *infrastructure.CategoryRepository) *category.Service {
	return category.NewService(repo)
}

func newTransactionService(repo *infrastructure.TransactionRepository) *transaction.Service {
	return transaction.NewService(repo)
}

func newDirectory(cfg *config.Config, repo *infrastructure.LinkedUserRepository) *linkeduser.Directory {
	return linkeduser.NewDirectory(repo, cfg.Directory.CacheTTL)
}

func newAuthService(verifier auth.TokenVerifier, directory *linkeduser.Directory) *auth.Service {
	return auth.NewService(verifier, directory)
}

func newLinkedUserService(
	repo *infrastructure.LinkedUserRepository,
	identity *infrastructure.SupabaseClient,
	directory *linkeduser.Directory,
) *linkeduser.Service {
	return linkeduser.NewService(repo, identity, directory)
}

func newAdminService(
	cfg *config.Config,
	repo *infrastructure.ProfileRepository,
	identity *infrastructure.SupabaseClient,
) *admin.Service {
	if len(cfg.Admin.Emails) == 0 {
		logger.Warn().Msg("ADMIN_EMAILS vazio - rotas administrativas ficarão inacessíveis")
	}
	return admin.NewService(repo, identity, cfg.Admin.Emails)
}

func newTransferService(repo *infrastructure.TransferRepository, accountSvc *account.Service) *transfer.Service {
	return transfer.NewService(repo, accountSvc)
}

func newCreditCardService(
	cfg *config.Config,
	repo *infrastructure.CreditCardRepository,
	accountSvc *account.Service,
	categorySvc *category.Service,
	transactionSvc *transaction.Service,
) *creditcard.Service {
	return creditcard.NewService(repo, accountSvc, categorySvc, transactionSvc, creditcard.Options{
		DueDatePolicy:        creditcard.DueDatePolicy(cfg.Billing.DueDatePolicy),
		RollbackInstallments: cfg.Billing.RollbackInstallments,
	})
}
