package api

import (
	"net/http"

	reqdto "meeting-scheduler/internal/handler/dto/request"
	resdto "meeting-scheduler/internal/handler/dto/response"
	"meeting-scheduler/internal/handler/httperr"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	cmds commands.ProjectCommands
	q    queries.ProjectQueries
}

func NewProjectHandler(cmds commands.ProjectCommands, q queries.ProjectQueries) *ProjectHandler {
	return &ProjectHandler{cmds: cmds, q: q}
}

// @Summary Create project
// @Description Create a project from an event definition and participants, and make it the active project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProjectRequest true "Create project request"
// @Success 201 {object} resdto.CreateProjectResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req reqdto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.CreateProject(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/projects/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreateProjectResponse{ID: id})
}

// @Summary List projects
// @Description List projects in creation order; the active one is flagged
// @Tags projects
// @Produce json
// @Success 200 {array} resdto.ProjectResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromProjectViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Open project
// @Description Make a project active. Undo/redo history is cleared
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /projects/{id}/open [post]
func (h *ProjectHandler) Open(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.OpenProject(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update supplier
// @Description Partially update a supplier of the active project. Omitted fields are kept
// @Tags projects
// @Accept json
// @Param id path string true "Supplier ID"
// @Param request body reqdto.UpdateSupplierRequest true "Update supplier request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /projects/active/suppliers/{id} [put]
func (h *ProjectHandler) UpdateSupplier(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateSupplier(c.Request.Context(), id, req); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
