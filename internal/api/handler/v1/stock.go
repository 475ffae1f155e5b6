package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stocktrail/inventory-api/internal/api/handler/v1/request"
	"github.com/stocktrail/inventory-api/internal/api/handler/v1/response"
	"github.com/stocktrail/inventory-api/internal/domain"
	"github.com/stocktrail/inventory-api/internal/service"
)

type StockService interface {
	Adjust(ctx context.Context, productID uint, changeType domain.ChangeType, quantity int, actor domain.User) (domain.Product, domain.StockEntry, error)
	History(ctx context.Context) ([]domain.StockEntry, error)
	ProductHistory(ctx context.Context, productID uint) ([]domain.StockEntry, error)
}

type StockHandler struct {
	svc  StockService
	uSvc UserService
}

func NewStockHandler(svc StockService, uSvc UserService) *StockHandler {
	return &StockHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleStockIn godoc
// @Summary      Add stock
// @Description  Increases a product's quantity and appends a ledger entry.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        request  body      request.StockAdjustmentRequest  true  "request body"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stock/in [post]
// @Security BearerAuth
func (h *StockHandler) HandleStockIn(ctx *gin.Context) {
	h.handleAdjustment(ctx, domain.StockIn, "stock added successfully")
}

// HandleStockOut godoc
// @Summary      Remove stock
// @Description  Decreases a product's quantity and appends a ledger entry. Fails when the product holds less than the requested quantity.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        request  body      request.StockAdjustmentRequest  true  "request body"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stock/out [post]
// @Security BearerAuth
func (h *StockHandler) HandleStockOut(ctx *gin.Context) {
	h.handleAdjustment(ctx, domain.StockOut, "stock reduced successfully")
}

func (h *StockHandler) handleAdjustment(ctx *gin.Context, changeType domain.ChangeType, successMsg string) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.StockAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	_, _, err := h.svc.Adjust(ctx.Request.Context(), req.ProductID, changeType, req.Quantity, user)
	if err != nil {
		renderAdjustErr(ctx, req.ProductID, err)
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: successMsg})
}

// HandleStockInForm godoc
// @Summary      Add stock (form flow)
// @Description  Form-encoded variant scoped by product ID. Redirects to the product listing on success.
// @Tags         stock
// @Accept       x-www-form-urlencoded
// @Param        productID  path      int  true  "product ID"
// @Param        quantity   formData  int  true  "quantity"
// @Success      303
// @Failure      401  {object}  response.Err
// @Router       /products/{productID}/stock-in [post]
// @Security BearerAuth
func (h *StockHandler) HandleStockInForm(ctx *gin.Context) {
	h.handleFormAdjustment(ctx, domain.StockIn)
}

// HandleStockOutForm godoc
// @Summary      Remove stock (form flow)
// @Description  Form-encoded variant scoped by product ID. Redirects to the product listing on success.
// @Tags         stock
// @Accept       x-www-form-urlencoded
// @Param        productID  path      int  true  "product ID"
// @Param        quantity   formData  int  true  "quantity"
// @Success      303
// @Failure      401  {object}  response.Err
// @Router       /products/{productID}/stock-out [post]
// @Security BearerAuth
func (h *StockHandler) HandleStockOutForm(ctx *gin.Context) {
	h.handleFormAdjustment(ctx, domain.StockOut)
}

// handleFormAdjustment mirrors the JSON endpoints for browser form posts:
// success redirects to the product listing, failure redirects back to the
// form URL carrying the error message.
func (h *StockHandler) handleFormAdjustment(ctx *gin.Context, changeType domain.ChangeType) {
	redirectBack := func(msg string) {
		ctx.Redirect(http.StatusSeeOther, ctx.Request.URL.Path+"?error="+url.QueryEscape(msg))
	}

	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	productID, err := parseIDParam(ctx, "productID")
	if err != nil {
		redirectBack("invalid product id")
		return
	}

	quantity, err := strconv.Atoi(ctx.PostForm("quantity"))
	if err != nil || quantity <= 0 {
		redirectBack("invalid quantity")
		return
	}

	if _, _, err = h.svc.Adjust(ctx.Request.Context(), productID, changeType, quantity, user); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
		case errors.Is(err, service.ErrInsufficientStock):
			redirectBack(service.ErrInsufficientStock.Error())
		case errors.Is(err, service.ErrInvalidQuantity):
			redirectBack("invalid quantity")
		default:
			err = fmt.Errorf("v1.handleFormAdjustment -> h.svc.Adjust -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/api/v1/products")
}

// HandleStockHistory godoc
// @Summary      Stock history
// @Description  Returns the full ledger, newest entry first, with the product and acting user rendered as display strings.
// @Tags         stock
// @Produce      json
// @Success      200  {array}   response.StockEntryResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stock/history [get]
// @Security BearerAuth
func (h *StockHandler) HandleStockHistory(ctx *gin.Context) {
	entries, err := h.svc.History(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleStockHistory -> h.svc.History -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewStockHistoryResponse(entries))
}

// HandleProductStockHistory godoc
// @Summary      Stock history for one product
// @Tags         stock
// @Produce      json
// @Param        productID  path      int  true  "product ID"
// @Success      200  {array}   response.StockEntryResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products/{productID}/stock-history [get]
// @Security BearerAuth
func (h *StockHandler) HandleProductStockHistory(ctx *gin.Context) {
	productID, err := parseIDParam(ctx, "productID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entries, err := h.svc.ProductHistory(ctx.Request.Context(), productID)
	if err != nil {
		err = fmt.Errorf("v1.HandleProductStockHistory -> h.svc.ProductHistory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewStockHistoryResponse(entries))
}

func renderAdjustErr(ctx *gin.Context, productID uint, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
	case errors.Is(err, service.ErrInsufficientStock):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInsufficientStock))
	case errors.Is(err, service.ErrInvalidQuantity):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidQuantity))
	case errors.Is(err, service.ErrInvalidChangeType):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidChangeType))
	default:
		err = fmt.Errorf("v1.renderAdjustErr -> h.svc.Adjust -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
