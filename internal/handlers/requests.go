package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/cardshow/internal/catalog"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

// ComponentRequest identifies a catalog entry by its path slug.
type ComponentRequest struct {
	Slug string `param:"slug" validate:"required"`
}

// TabRequest identifies one code tab of a catalog entry.
type TabRequest struct {
	Slug string `param:"slug" validate:"required"`
	Tab  string `param:"tab" validate:"required,oneof=usage advanced source"`
}

// ActionRequest identifies a registered action by its path id.
type ActionRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

// bind binds path parameters into req and validates it.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// entry looks up slug in the current catalog and maps a miss to 404.
func entry(src CatalogSource, slug string) (catalog.Entry, error) {
	e, err := src.Catalog().Get(slug)
	if err != nil {
		return catalog.Entry{}, echo.NewHTTPError(http.StatusNotFound, "Component not found").SetInternal(err)
	}
	return e, nil
}

// CatalogSource provides the current catalog.
type CatalogSource interface {
	Catalog() *catalog.Catalog
}
