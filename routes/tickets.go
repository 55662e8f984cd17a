package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"maintenance-ticketing-server/database"
	"maintenance-ticketing-server/middleware"
	"maintenance-ticketing-server/models"
	"maintenance-ticketing-server/services"
)

// CreateTicketRequest represents the ticket creation form
type CreateTicketRequest struct {
	DeviceID         uint   `json:"device_id" binding:"required"`
	ReportedBy       string `json:"reported_by"`
	IssueDescription string `json:"issue_description"`
	Date             string `json:"date"`
}

// AddPartRequest represents the part usage form. Quantity and cost are
// typed so non-numeric input fails binding instead of coercing to zero,
// and cost is a pointer so an omitted field is distinguishable from $0.
type AddPartRequest struct {
	PartName string   `json:"part_name"`
	Quantity int      `json:"quantity"`
	Cost     *float64 `json:"cost"`
	Date     string   `json:"date"`
}

// SubmitFeedbackRequest represents the closing feedback form
type SubmitFeedbackRequest struct {
	Remarks    string `json:"remarks"`
	Status     string `json:"status"`
	DateSolved string `json:"date_solved"`
}

// RegisterTicketRoutes registers ticket lifecycle routes
func RegisterTicketRoutes(router *gin.RouterGroup) {
	router.GET("", listTickets)
	router.POST("", createTicket)
	router.GET("/:id", getTicket)
	router.GET("/:id/parts", listParts)
	router.POST("/:id/parts", addPart)
	router.POST("/:id/feedback", submitFeedback)
}

// ticketIDParam parses the :id path parameter
func ticketIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid ticket ID",
			"message": "Ticket ID must be a number",
		})
		return 0, false
	}
	return uint(id), true
}

// listTickets returns the technician's dashboard: tickets ordered by opened
// date descending with derived status and severity.
func listTickets(c *gin.Context) {
	technicianID := middleware.CurrentTechnicianID(c)

	svc := services.NewTicketService(database.GetDB())
	tickets, err := svc.ListForTechnician(technicianID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tickets": tickets,
		"count":   len(tickets),
	})
}

// createTicket opens a ticket against a registered device
func createTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondInvalidDate(c, "Date")
		return
	}

	technicianID := middleware.CurrentTechnicianID(c)

	svc := services.NewTicketService(database.GetDB())
	ticket, err := svc.Create(technicianID, services.CreateTicketInput{
		DeviceID:         req.DeviceID,
		ReportedBy:       req.ReportedBy,
		IssueDescription: req.IssueDescription,
		Date:             date,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ticket created successfully",
		"ticket":  ticket,
	})
}

// getTicket returns one ticket with its device, parts and feedback
func getTicket(c *gin.Context) {
	ticketID, ok := ticketIDParam(c)
	if !ok {
		return
	}
	technicianID := middleware.CurrentTechnicianID(c)

	svc := services.NewTicketService(database.GetDB())
	ticket, err := svc.GetForTechnician(ticketID, technicianID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	status := ticket.Status()
	c.JSON(http.StatusOK, gin.H{
		"ticket":   ticket,
		"status":   status,
		"severity": models.StatusSeverity(status),
	})
}

// listParts returns the ticket's part usage ledger, most recent first
func listParts(c *gin.Context) {
	ticketID, ok := ticketIDParam(c)
	if !ok {
		return
	}
	technicianID := middleware.CurrentTechnicianID(c)

	svc := services.NewPartService(database.GetDB())
	parts, err := svc.List(technicianID, ticketID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"parts": parts,
		"count": len(parts),
	})
}

// addPart appends a part usage row to the ticket's ledger
func addPart(c *gin.Context) {
	ticketID, ok := ticketIDParam(c)
	if !ok {
		return
	}

	var req AddPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondInvalidDate(c, "Date")
		return
	}

	technicianID := middleware.CurrentTechnicianID(c)

	svc := services.NewPartService(database.GetDB())
	part, err := svc.Add(technicianID, ticketID, services.AddPartInput{
		PartName: req.PartName,
		Quantity: req.Quantity,
		Cost:     req.Cost,
		Date:     date,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Part usage recorded successfully",
		"part":    part,
	})
}

// submitFeedback closes the ticket with its one-time feedback record
func submitFeedback(c *gin.Context) {
	ticketID, ok := ticketIDParam(c)
	if !ok {
		return
	}

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	dateSolved, err := parseDate(req.DateSolved)
	if err != nil {
		respondInvalidDate(c, "Date solved")
		return
	}

	technicianID := middleware.CurrentTechnicianID(c)

	svc := services.NewFeedbackService(database.GetDB())
	feedback, err := svc.Submit(technicianID, ticketID, services.SubmitFeedbackInput{
		Remarks:    req.Remarks,
		Status:     req.Status,
		DateSolved: dateSolved,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Feedback submitted successfully",
		"feedback": feedback,
	})
}
