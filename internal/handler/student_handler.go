package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/school-registry/internal/model"
	"github.com/stemsi/school-registry/internal/repository"
	"github.com/stemsi/school-registry/internal/response"
	"github.com/stemsi/school-registry/internal/service"
	"github.com/stemsi/school-registry/internal/validator"
)

// StudentHandler handles student CRUD and search.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// CreateStudent godoc
// POST /api/v1/students
// Validates the payload and creates a student. Invalid fields are reported
// as a field→message map and the student is not created.
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req model.StudentDto
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, bindErrCode(fields), fields)
		return
	}

	student, err := h.studentService.SaveStudent(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.Fail(c, http.StatusConflict, response.ErrConflict)
		case errors.Is(err, repository.ErrSchoolNotFound):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrSchoolNotFound)
		default:
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("create student failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// ListStudents godoc
// GET /api/v1/students
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.GetAllStudents(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("list students failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// GetStudent godoc
// GET /api/v1/students/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	student, found, err := h.studentService.GetStudentByID(c.Request.Context(), id)
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Int("student_id", id).Msg("get student failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !found {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// SearchStudents godoc
// GET /api/v1/students/search/:name
// Returns the students whose name matches exactly; may be empty.
func (h *StudentHandler) SearchStudents(c *gin.Context) {
	students, err := h.studentService.GetStudentsByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("search students failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// DeleteStudent godoc
// DELETE /api/v1/students/:id
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.studentService.DeleteStudent(c.Request.Context(), id); err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Int("student_id", id).Msg("delete student failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter. Student ids are SERIAL columns, so
// anything outside int32 is rejected rather than sent to the database.
func parseID(c *gin.Context) (int, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}
