package handlers

import (
	"net/http"
	"strconv"

	"resource_api/internal/models"

	"github.com/gin-gonic/gin"
)

// Request DTO shared by create and update. Any id/created_at in the body is ignored.
type resourceRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// ResourceRequest is an exported model for Swagger docs of the create/update payload.
type ResourceRequest struct {
	Name  string `json:"name" example:"Ada"`
	Email string `json:"email" example:"ada@example.com"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("resource_bad_request_body", "err", err, "request_id", requestIDFrom(c))
		h.badRequest(c, errInvalidBodyPref+err.Error())
		return false
	}
	return true
}

// pathID parses the :id segment. Writes a 400 and returns false when it is not a positive integer.
func (h *Handler) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.badRequest(c, msgInvalidID)
		return 0, false
	}
	return id, true
}

// queryLimit reads ?limit, falling back to the configured default when absent.
func (h *Handler) queryLimit(c *gin.Context) (int, bool) {
	qs := c.Query("limit")
	if qs == "" {
		return h.cfg.DefaultLimit, true
	}
	limit, err := strconv.Atoi(qs)
	if err != nil || limit <= 0 {
		h.badRequest(c, msgInvalidLimit)
		return 0, false
	}
	return limit, true
}

// @Summary      List resources
// @Description  Most recently created first. limit is capped server-side.
// @Tags         resources
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of records"  example(100)
// @Success      200    {array}   models.Resource
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /resources [get]
// @Security     BasicAuth
func (h *Handler) listResources(c *gin.Context) {
	limit, ok := h.queryLimit(c)
	if !ok {
		return
	}
	items, err := h.services.Resources.List(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, err, "resource_list_failed", "limit", limit)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      View resource
// @Tags         resources
// @Produce      json
// @Param        id   path      int  true  "Resource id"
// @Success      200  {object}  models.Resource
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /resources/{id} [get]
// @Security     BasicAuth
func (h *Handler) getResource(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	res, err := h.services.Resources.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "resource_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Create resource
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        body  body      ResourceRequest  true  "Resource payload"
// @Success      201   {object}  models.Resource
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /resources [post]
// @Security     BasicAuth
func (h *Handler) createResource(c *gin.Context) {
	var req resourceRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	res, err := h.services.Resources.Create(c.Request.Context(), models.NewResource{Name: req.Name, Email: req.Email})
	if err != nil {
		h.respondError(c, err, "resource_create_failed")
		return
	}
	h.log.Infow("resource_created", "id", res.ID, "user", identityFrom(c).Username, "request_id", requestIDFrom(c))
	c.JSON(http.StatusCreated, res)
}

// @Summary      Update resource
// @Description  Replaces name and email. id and created_at never change.
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Resource id"
// @Param        body  body      ResourceRequest  true  "Resource payload"
// @Success      200   {object}  models.Resource
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /resources/{id} [put]
// @Security     BasicAuth
func (h *Handler) updateResource(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req resourceRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	res, err := h.services.Resources.Update(c.Request.Context(), id, models.UpdateResource{Name: req.Name, Email: req.Email})
	if err != nil {
		h.respondError(c, err, "resource_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Delete resource
// @Tags         resources
// @Param        id   path  int  true  "Resource id"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /resources/{id} [delete]
// @Security     BasicAuth
func (h *Handler) deleteResource(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.services.Resources.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "resource_delete_failed", "id", id)
		return
	}
	h.log.Infow("resource_deleted", "id", id, "user", identityFrom(c).Username, "request_id", requestIDFrom(c))
	c.Status(http.StatusNoContent)
}
