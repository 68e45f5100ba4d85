package controllers

import (
	"strconv"

	"hostel/dto"
	"hostel/models"
	"hostel/response"
	"hostel/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	paymentService *services.PaymentService
}

func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// GetPayments lists all payments; with a page parameter the listing is
// paginated and carries the total count.
func (ctrl *PaymentController) GetPayments(c *gin.Context) {
	if pageParam := c.Query("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil {
			response.BadRequest(c, "Invalid page")
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil {
			response.BadRequest(c, "Invalid limit")
			return
		}

		payments, total, err := ctrl.paymentService.ListPaged(c.Request.Context(), page, limit)
		if err != nil {
			handleServiceError(c, err)
			return
		}

		response.SuccessWithPagination(c, payments, page, limit, int(total))
		return
	}

	payments, err := ctrl.paymentService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, payments)
}

func (ctrl *PaymentController) CreatePayment(c *gin.Context) {
	var input dto.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payment, err := ctrl.paymentService.Create(c.Request.Context(), models.Payment{
		ResidentID: input.ResidentID,
		Category:   input.Category,
		Amount:     input.Amount,
		Status:     input.Status,
		Date:       input.Date,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, payment)
}

func (ctrl *PaymentController) UpdatePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payment, err := ctrl.paymentService.Update(c.Request.Context(), id, models.Payment{
		Category: input.Category,
		Amount:   input.Amount,
		Status:   input.Status,
		Date:     input.Date,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "Payment updated", payment)
}

func (ctrl *PaymentController) DeletePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.paymentService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "Payment deleted", nil)
}

func (ctrl *PaymentController) MonthlySummary(c *gin.Context) {
	summary, err := ctrl.paymentService.MonthlySummary(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, summary)
}

// CreateCheckoutSession opens a card checkout for a pending payment and
// returns the redirect URL.
func (ctrl *PaymentController) CreateCheckoutSession(c *gin.Context) {
	var input dto.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sess, err := ctrl.paymentService.CreateCheckoutSession(c.Request.Context(), input.PaymentID, input.Description)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, sess)
}

// CheckoutComplete is the success callback: the payment id the checkout
// session carried comes back in the body and exactly that record flips
// to Completed.
func (ctrl *PaymentController) CheckoutComplete(c *gin.Context) {
	var input dto.CheckoutCompleteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payment, err := ctrl.paymentService.Complete(c.Request.Context(), input.PaymentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "Payment completed", payment)
}

// CompleteLatest flips the caller's most recent pending payment. Kept
// for clients that do not send the payment id back.
func (ctrl *PaymentController) CompleteLatest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	payment, err := ctrl.paymentService.CompleteLatestPending(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "Payment completed", payment)
}
