package handlers

import (
	"errors"
	"net/http"

	"dataserve/dataset"
	"dataserve/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func GetData(c *gin.Context) {
	var q models.DataQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusUnprocessableEntity, bindErrorResponse(err))
		return
	}

	gen := newGenerator(q.Seed)
	page, err := dataset.Paginate(params(q), gen.Record)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, page)
}

func GetDataWithDateFormats(c *gin.Context) {
	var q models.DataQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusUnprocessableEntity, bindErrorResponse(err))
		return
	}

	gen := newGenerator(q.Seed)
	page, err := dataset.Paginate(params(q), gen.DatedRecord)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, page)
}

// Helper functions

func newGenerator(seed *int64) *dataset.Generator {
	if seed != nil {
		return dataset.NewSeededGenerator(*seed)
	}
	return dataset.NewGenerator()
}

func params(q models.DataQuery) dataset.Params {
	return dataset.Params{
		Page:         q.Page,
		PageSize:     q.PageSize,
		TotalRecords: q.TotalRecords,
	}
}

// paramNames maps DataQuery struct fields back to their query parameter
// names for error reporting.
var paramNames = map[string]string{
	"Page":         "page",
	"PageSize":     "page_size",
	"TotalRecords": "total_records",
	"Seed":         "seed",
}

var paramBounds = map[string]string{
	"page":          "must be at least 1",
	"page_size":     "must be between 1 and 100",
	"total_records": "must be between 1 and 10000",
}

// bindErrorResponse turns a gin binding failure into a structured 422 body.
// Validator failures get per-field reasons; anything else (typically a
// non-integer value) surfaces as a single message.
func bindErrorResponse(err error) models.ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.ErrorResponse{Error: "invalid query parameters: " + err.Error()}
	}

	details := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := paramNames[fe.Field()]
		if field == "" {
			field = fe.Field()
		}
		reason := paramBounds[field]
		if reason == "" {
			reason = "failed " + fe.Tag() + " validation"
		}
		details = append(details, models.FieldError{Field: field, Reason: reason})
	}

	return models.ErrorResponse{Error: "invalid query parameters", Details: details}
}

func validationErrorResponse(err error) models.ErrorResponse {
	var verr *dataset.ValidationError
	if errors.As(err, &verr) {
		return models.ErrorResponse{
			Error:   "invalid query parameters",
			Details: []models.FieldError{{Field: verr.Field, Reason: verr.Reason}},
		}
	}
	return models.ErrorResponse{Error: err.Error()}
}
