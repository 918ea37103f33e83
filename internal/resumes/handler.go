package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-store/internal/shared/server/respond"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.getOne)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
}

func (h *Handler) create(c *gin.Context) {
	var rec Resume
	if err := c.ShouldBindJSON(&rec); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), rec)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusBadRequest, verr.Error(), "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to create resume", err.Error())
		return
	}

	respond.Success(c, http.StatusCreated, "Resume created successfully", CreateResponse{
		ID:        created.ID,
		CreatedAt: created.CreatedAt,
	})
}

func (h *Handler) getOne(c *gin.Context) {
	rec, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch resume", err.Error())
		return
	}

	respond.OK(c, rec)
}

func (h *Handler) update(c *gin.Context) {
	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to update resume", err.Error())
		return
	}

	respond.Success(c, http.StatusOK, "Resume updated successfully", updated)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to delete resume", err.Error())
		return
	}

	respond.Success(c, http.StatusOK, "Resume deleted successfully", nil)
}

func (h *Handler) list(c *gin.Context) {
	page := queryInt(c, "page", defaultPage)
	// No upper bound is applied to limit; callers can ask for any page size.
	limit := queryInt(c, "limit", defaultLimit)

	items, total, err := h.Svc.List(c.Request.Context(), page, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to list resumes", err.Error())
		return
	}

	data := make([]ListItem, 0, len(items))
	for _, item := range items {
		data = append(data, toListItem(item))
	}

	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}

	respond.JSON(c, http.StatusOK, ListResponse{
		Success: true,
		Data:    data,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	})
}

// queryInt parses a query parameter, falling back to def when the value is
// absent, non-numeric, or zero.
func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed == 0 {
		return def
	}
	return parsed
}
