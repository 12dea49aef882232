package routes

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the authenticated API on private. adminGuard runs in
// front of the /admin group.
func (h *Handler) RegisterRoutes(private *gin.RouterGroup, adminGuard gin.HandlerFunc) {
	accounts := private.Group("/bank-accounts")
	{
		accounts.GET("", h.ListBankAccounts)
		accounts.POST("", h.CreateBankAccount)
		accounts.GET("/default", h.GetDefaultBankAccount)
		accounts.PUT("/:id", h.UpdateBankAccount)
		accounts.DELETE("/:id", h.DeleteBankAccount)
	}

	private.GET("/categories", h.ListCategories)

	cards := private.Group("/credit-cards")
	{
		cards.GET("", h.ListCreditCards)
		cards.POST("", h.CreateCreditCard)
		cards.GET("/stats", h.GetCreditCardStats)

		cards.GET("/invoices", h.ListInvoices)
		cards.POST("/invoices", h.CreateInvoice)
		cards.POST("/invoices/pay", h.PayInvoice)
		cards.GET("/invoices/:id", h.GetInvoice)
		cards.DELETE("/invoices/:id", h.DeleteInvoice)
		cards.PUT("/invoices/:id/status", h.UpdateInvoiceStatus)

		cards.POST("/expenses", h.CreateExpense)
		cards.PUT("/expenses/:id", h.UpdateExpense)
		cards.DELETE("/expenses/:id", h.DeleteExpense)

		cards.PUT("/:id", h.UpdateCreditCard)
		cards.DELETE("/:id", h.DeleteCreditCard)
	}

	transfers := private.Group("/transfers")
	{
		transfers.GET("", h.ListTransfers)
		transfers.POST("", h.CreateTransfer)
		transfers.GET("/stats", h.GetTransferStats)
		transfers.PUT("/:id", h.UpdateTransfer)
		transfers.DELETE("/:id", h.DeleteTransfer)
	}

	linked := private.Group("/linked-users")
	{
		linked.GET("", h.ListLinkedUsers)
		linked.POST("", h.CreateLinkedUser)
		linked.PUT("/:id", h.UpdateLinkedUser)
		linked.DELETE("/:id", h.DeleteLinkedUser)
	}

	adminGroup := private.Group("/admin", adminGuard)
	{
		adminGroup.GET("/users", h.ListUsers)
		adminGroup.POST("/create-user", h.CreateUser)
	}
}
