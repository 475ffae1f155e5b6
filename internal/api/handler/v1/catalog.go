package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/stocktrail/inventory-api/internal/api/handler/v1/request"
	"github.com/stocktrail/inventory-api/internal/api/handler/v1/response"
	"github.com/stocktrail/inventory-api/internal/domain"
	"github.com/stocktrail/inventory-api/internal/service"
)

type CatalogService interface {
	CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	GetCategory(ctx context.Context, id uint) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
	CreateSupplier(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error)
	GetSupplier(ctx context.Context, id uint) (domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id uint) error
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, id uint) (domain.Product, error)
	ListProducts(ctx context.Context, nameQuery string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type CatalogHandler struct {
	svc  CatalogService
	uSvc UserService
}

func NewCatalogHandler(svc CatalogService, uSvc UserService) *CatalogHandler {
	return &CatalogHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// requireAdmin resolves the caller and rejects anyone without the admin
// role. Catalog writes are admin-only; stock movement is not.
func (h *CatalogHandler) requireAdmin(ctx *gin.Context) (domain.User, *response.Err) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		return domain.User{}, respErr
	}

	if user.Role != domain.RoleAdmin {
		return domain.User{}, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID))
	}

	return user, nil
}

// HandleListCategories godoc
// @Summary      List categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Category
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /categories [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.svc.ListCategories(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCategories -> h.svc.ListCategories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleCreateCategory godoc
// @Summary      Create a category
// @Description  Admin only.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CategoryRequest  true  "request body"
// @Success      201      {object}  domain.Category
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /categories [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleCreateCategory(ctx *gin.Context) {
	if _, respErr := h.requireAdmin(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateCategory(ctx.Request.Context(), domain.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryNameExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrCategoryNameExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateCategory -> h.svc.CreateCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateCategory godoc
// @Summary      Update a category
// @Description  Admin only.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        categoryID  path      int                      true  "category ID"
// @Param        request     body      request.CategoryRequest  true  "request body"
// @Success      200         {object}  domain.Category
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /categories/{categoryID} [put]
// @Security BearerAuth
func (h *CatalogHandler) HandleUpdateCategory(ctx *gin.Context) {
	if _, respErr := h.requireAdmin(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	categoryID, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CategoryRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateCategory(ctx.Request.Context(), domain.Category{
		ID:          categoryID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", categoryID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateCategory -> h.svc.UpdateCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteCategory godoc
// @Summary      Delete a category
// @Description  Admin only. Deleting a category cascades to its products.
// @Tags         catalog
// @Produce      json
// @Param        categoryID  path  int  true  "category ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /categories/{categoryID} [delete]
// @Security BearerAuth
func (h *CatalogHandler) HandleDeleteCategory(ctx *gin.Context) {
	if _, respErr := h.requireAdmin(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	categoryID, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteCategory(ctx.Request.Context(), categoryID); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", categoryID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCategory -> h.svc.DeleteCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListSuppliers godoc
// @Summary      List suppliers
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Supplier
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /suppliers [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleListSuppliers(ctx *gin.Context) {
	suppliers, err := h.svc.ListSuppliers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSuppliers -> h.svc.ListSuppliers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, suppliers)
}

// HandleCreateSupplier godoc
// @Summary      Create a supplier
// @Description  Admin only.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.SupplierRequest  true  "request body"
// @Success      201      {object}  domain.Supplier
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /suppliers [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleCreateSupplier(ctx *gin.Context) {
	if _, respErr := h.requireAdmin(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateSupplier(ctx.Request.Context(), domain.Supplier{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateSupplier -> h.svc.CreateSupplier -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateSupplier godoc
// @Summary      Update a supplier
// @Description  Admin only.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        supplierID  path      int                      true  "supplier ID"
// @Param        request     body      request.SupplierRequest  true  "request body"
// @Success      200         {object}  domain.Supplier
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /suppliers/{supplierID} [put]
// @Security BearerAuth
func (h *CatalogHandler) HandleUpdateSupplier(ctx *gin.Context) {
	if _, respErr := h.requireAdmin(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	supplierID, err := parseIDParam(ctx, "supplierID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.SupplierRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateSupplier(ctx.Request.Context(), domain.Supplier{
		ID:      supplierID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("supplier", "ID", supplierID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateSupplier -> h.svc.UpdateSupplier -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteSupplier godoc
// @Summary      Delete a supplier
// @Description  Admin only. Products keep existing with the supplier reference nulled.
// @Tags         catalog
// @Produce      json
// @Param        supplierID  path  int  true  "supplier ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /suppliers/{supplierID} [delete]
// @Security BearerAuth
func (h *CatalogHandler) HandleDeleteSupplier(ctx *gin.Context) {
	if _, respErr := h.requireAdmin(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	supplierID, err := parseIDParam(ctx, "supplierID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteSupplier(ctx.Request.Context(), supplierID); err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("supplier", "ID", supplierID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteSupplier -> h.svc.DeleteSupplier -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListProducts godoc
// @Summary      List products
// @Description  Optionally filters by a case-insensitive name substring via the q query parameter.
// @Tags         catalog
// @Produce      json
// @Param        q    query     string  false  "name substring filter"
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleListProducts(ctx *gin.Context) {
	products, err := h.svc.ListProducts(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListProducts -> h.svc.ListProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleGetProduct godoc
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        productID  path      int  true  "product ID"
// @Success      200        {object}  domain.Product
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /products/{productID} [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleGetProduct(ctx *gin.Context) {
	productID, err := parseIDParam(ctx, "productID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	product, err := h.svc.GetProduct(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
			return
		}

		err = fmt.Errorf("v1.HandleGetProduct -> h.svc.GetProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleCreateProduct godoc
// @Summary      Create a product
// @Description  Admin only. Quantity here is the opening stock level; later changes go through the stock endpoints.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateProductRequest  true  "request body"
// @Success      201      {object}  domain.Product
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /products [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleCreateProduct(ctx *gin.Context) {
	if _, respErr := h.requireAdmin(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid price: %v", err)))
		return
	}

	created, err := h.svc.CreateProduct(ctx.Request.Context(), domain.Product{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		SupplierID: req.SupplierID,
		Price:      price,
		Quantity:   req.Quantity,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", req.CategoryID))
			return
		}
		if errors.Is(err, service.ErrSupplierNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("supplier", "ID", *req.SupplierID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateProduct -> h.svc.CreateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateProduct godoc
// @Summary      Update a product
// @Description  Admin only. Quantity cannot be changed here; use the stock endpoints.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        productID  path      int                           true  "product ID"
// @Param        request    body      request.UpdateProductRequest  true  "request body"
// @Success      200        {object}  domain.Product
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /products/{productID} [put]
// @Security BearerAuth
func (h *CatalogHandler) HandleUpdateProduct(ctx *gin.Context) {
	if _, respErr := h.requireAdmin(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	productID, err := parseIDParam(ctx, "productID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateProductRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid price: %v", err)))
		return
	}

	updated, err := h.svc.UpdateProduct(ctx.Request.Context(), domain.Product{
		ID:         productID,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		SupplierID: req.SupplierID,
		Price:      price,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
			return
		}
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", req.CategoryID))
			return
		}
		if errors.Is(err, service.ErrSupplierNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("supplier", "ID", *req.SupplierID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateProduct -> h.svc.UpdateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteProduct godoc
// @Summary      Delete a product
// @Description  Admin only. The product's stock history is deleted with it.
// @Tags         catalog
// @Produce      json
// @Param        productID  path  int  true  "product ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /products/{productID} [delete]
// @Security BearerAuth
func (h *CatalogHandler) HandleDeleteProduct(ctx *gin.Context) {
	if _, respErr := h.requireAdmin(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	productID, err := parseIDParam(ctx, "productID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteProduct(ctx.Request.Context(), productID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteProduct -> h.svc.DeleteProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
