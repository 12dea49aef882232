package main

import (
	appfx "github.com/dmogiovanni/teugestor-backend/internal/fx"

	"go.uber.org/fx"
)

// @title TeuGestor API
// @version 1.0
// @description Cartões de crédito, faturas, contas e transferências.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
