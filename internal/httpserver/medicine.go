package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/healthbridge/backend/internal/service"
	"github.com/healthbridge/backend/internal/transport"
	"github.com/healthbridge/backend/pkg/logging"
)

type MedicineHTTP struct {
	Svc *service.CatalogService
}

func (h *MedicineHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "medicine.list")

	meds, err := h.Svc.GetMedicines(ctx)
	if err != nil {
		l.Error("list_medicines_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, meds)
}

func (h *MedicineHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "medicine.get")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid medicine id"})
	}

	med, err := h.Svc.GetMedicine(ctx, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "medicine not found"})
		}
		l.Error("get_medicine_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, med)
}

func (h *MedicineHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "medicine.search")

	meds, err := h.Svc.SearchMedicines(ctx, c.QueryParam("q"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		l.Error("search_medicines_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, meds)
}

func (h *MedicineHTTP) ByCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "medicine.category")

	meds, err := h.Svc.MedicinesByCategory(ctx, c.Param("category"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		l.Error("medicines_by_category_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, meds)
}

func (h *MedicineHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "medicine.create")

	var req transport.MedicineRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_medicine_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	med, err := h.Svc.CreateMedicine(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_medicine_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrConflict):
			l.Warn("create_medicine_error", "status", 409, "error", err)
			return c.JSON(http.StatusConflict, echo.Map{"error": "medicine name already exists"})
		default:
			l.Error("create_medicine_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}

	l.Info("medicine_created", "medicine_id", med.ID)
	return c.JSON(http.StatusCreated, med)
}

func (h *MedicineHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "medicine.update")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid medicine id"})
	}

	var req transport.MedicineRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_medicine_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	med, err := h.Svc.UpdateMedicine(ctx, uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "medicine not found"})
		default:
			l.Error("update_medicine_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}

	l.Info("medicine_updated", "medicine_id", med.ID)
	return c.JSON(http.StatusOK, med)
}

func (h *MedicineHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "medicine.delete")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid medicine id"})
	}

	if err := h.Svc.DeleteMedicine(ctx, uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "medicine not found"})
		}
		l.Error("delete_medicine_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}

	l.Info("medicine_deleted", "medicine_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "medicine deleted"})
}
