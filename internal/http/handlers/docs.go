package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetBookingETicketPDF returns the booking e-ticket (inline).
func (a API) GetBookingETicketPDF(c *gin.Context) {
	pdfBytes, filename, err := a.docs(c).GenerateETicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GetBookingInvoicePDF returns the booking invoice (inline).
func (a API) GetBookingInvoicePDF(c *gin.Context) {
	pdfBytes, filename, err := a.docs(c).GenerateInvoice(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
