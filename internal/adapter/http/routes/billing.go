package routes

import (
	"kd_cleaning/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathInvoices = "/invoices"
)

func addBillingRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, invoiceHandler *handlers.InvoiceHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/candidates", paymentHandler.ListCandidates)
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.PUT("/:id", paymentHandler.UpdatePayment)
		payments.DELETE("/:id", paymentHandler.DeletePayment)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/candidates", invoiceHandler.ListCandidates)
		invoices.GET("/next-number", invoiceHandler.NextNumber)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
		invoices.PATCH("/:id/send", invoiceHandler.SendInvoice)
		invoices.PATCH("/:id/mark-paid", invoiceHandler.MarkInvoicePaid)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
	}
}
