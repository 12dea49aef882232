package fx

import (
	"github.com/dmogiovanni/teugestor-backend/internal/domain/account"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/admin"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/category"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/creditcard"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/linkeduser"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/transfer"
	"github.com/dmogiovanni/teugestor-backend/internal/routes"

	"go.uber.org/fx"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
	),
)

func newHandler(
	accountSvc *account.Service,
	categorySvc *category.Service,
	creditCardSvc *creditcard.Service,
	transferSvc *transfer.Service,
	linkedUserSvc *linkeduser.Service,
	adminSvc *admin.Service,
) *routes.Handler {
	return &routes.Handler{
		AccountService:    accountSvc,
		CategoryService:   categorySvc,
		CreditCardService: creditCardSvc,
		TransferService:   transferSvc,
		LinkedUserService: linkedUserSvc,
		AdminService:      adminSvc,
	}
}
