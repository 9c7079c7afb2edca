package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/school-registry/internal/model"
	"github.com/stemsi/school-registry/internal/response"
	"github.com/stemsi/school-registry/internal/service"
	"github.com/stemsi/school-registry/internal/validator"
)

// SchoolHandler handles school creation and listing.
type SchoolHandler struct {
	schoolService *service.SchoolService
}

// NewSchoolHandler creates a new SchoolHandler.
func NewSchoolHandler(schoolService *service.SchoolService) *SchoolHandler {
	return &SchoolHandler{schoolService: schoolService}
}

// CreateSchool godoc
// POST /api/v1/schools
// Creates a school and echoes the submitted payload.
func (h *SchoolHandler) CreateSchool(c *gin.Context) {
	var req model.SchoolDto
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, bindErrCode(fields), fields)
		return
	}

	school, err := h.schoolService.CreateSchool(c.Request.Context(), req)
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("create school failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"school": school})
}

// ListSchools godoc
// GET /api/v1/schools
func (h *SchoolHandler) ListSchools(c *gin.Context) {
	schools, err := h.schoolService.GetSchools(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("list schools failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schools": schools})
}

// bindErrCode tells an undecodable body apart from one that failed validation.
func bindErrCode(fields map[string]string) response.ErrCode {
	if _, ok := fields[validator.DetailField]; ok {
		return response.ErrInvalidPayload
	}
	return response.ErrValidation
}
