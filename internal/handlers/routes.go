package handlers

import (
	"bankoffice/internal/config"
	"bankoffice/internal/metrics"
	"bankoffice/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// RegisterRoutes wires every endpoint onto the echo instance
func RegisterRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	m := metrics.New()

	accountRepo := repositories.NewAccountRepository(db, &cfg.Policy)
	transactionRepo := repositories.NewTransactionRepository(db, &cfg.Policy, m)
	beneficiaryRepo := repositories.NewBeneficiaryRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	userRepo := repositories.NewUserRepository(db, &cfg.Security)
	documentRepo := repositories.NewDocumentRepository(db)

	healthHandler := NewHealthCheckHandler(db)
	transactionHandler := NewTransactionHandler(transactionRepo)
	accountHandler := NewAccountHandler(accountRepo, m)
	beneficiaryHandler := NewBeneficiaryHandler(beneficiaryRepo, m)
	customerHandler := NewCustomerHandler(customerRepo, m)
	userHandler := NewUserHandler(userRepo, m)
	documentHandler := NewDocumentHandler(documentRepo)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	transactions := api.Group("/Transactions")
	transactions.POST("/transfer", transactionHandler.FundTransfer)
	transactions.GET("/transactions/:accountId", transactionHandler.ListTransactions)

	accounts := api.Group("/Accounts")
	accounts.POST("/CreateAccount", accountHandler.CreateAccount)
	accounts.GET("/Detail/:id", accountHandler.GetAccount)
	accounts.GET("/Customer/:id", accountHandler.GetAccountsByCustomer)
	accounts.DELETE("/Delete/:id", accountHandler.DeleteAccount)

	beneficiaries := api.Group("/Beneficiary")
	beneficiaries.POST("/Create", beneficiaryHandler.CreateBeneficiary)
	beneficiaries.GET("/Account/:accountId", beneficiaryHandler.ListBeneficiaries)
	beneficiaries.DELETE("/Delete/:id", beneficiaryHandler.DeleteBeneficiary)

	customers := api.Group("/Customers")
	customers.GET("/GetActiveCustomer/:id", customerHandler.GetActiveCustomer)
	customers.PUT("/updateCustomer/:id", customerHandler.UpdateCustomer)
	customers.POST("/CreateCustomer", customerHandler.CreateCustomer)

	users := api.Group("/Users")
	users.POST("/ChangePassword", userHandler.ChangePassword)

	documents := api.Group("/Documents")
	documents.GET("/Customer/:customerId", documentHandler.ListDocuments)
}
