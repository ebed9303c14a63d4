package handlers

import (
	"net/http"

	"dataserve/models"

	"github.com/gin-gonic/gin"
)

var paginationParams = []models.EndpointParam{
	{Name: "page", Type: "integer", Default: 1, Description: "Page number (starts from 1)"},
	{Name: "page_size", Type: "integer", Default: 10, Description: "Number of items per page (1-100)"},
	{Name: "total_records", Type: "integer", Default: 1000, Description: "Total number of records to generate (1-10000)"},
}

var catalog = models.EndpointsResponse{
	Endpoints: []models.Endpoint{
		{
			Path:        "/api/data",
			Name:        "Standard Data API",
			Description: "Returns JSON objects with standard date formats (ISO) and all common data types including integers, floats, booleans, strings, arrays, and objects.",
			Parameters:  paginationParams,
			Example:     "/api/data?page=1&page_size=10&total_records=500",
		},
		{
			Path:        "/api/data-with-date-formats",
			Name:        "Date Formats API",
			Description: "Returns JSON objects with multiple date format variations including ISO, US, EU, long format, timestamps, and readable formats. Perfect for testing different date parsing scenarios.",
			Parameters:  paginationParams,
			Example:     "/api/data-with-date-formats?page=1&page_size=10&total_records=500",
			SpecialFields: []string{
				"birth_date_iso (ISO format: 2023-12-25)",
				"birth_date_us (US format: 12/25/2023)",
				"birth_date_eu (EU format: 25/12/2023)",
				"birth_date_long (Long format: December 25, 2023)",
				"created_at_iso (ISO datetime: 2023-12-25T10:30:00)",
				"created_at_timestamp (Unix timestamp: 1703505000)",
				"created_at_readable (Readable: Mon, Dec 25 2023 10:30 AM)",
			},
		},
		{
			Path:        "/api/schema",
			Name:        "Schema API",
			Description: "Returns the JSON schema for the data objects, useful for validation and understanding the data structure.",
			Parameters:  []models.EndpointParam{},
			Example:     "/api/schema",
		},
	},
}

// ListEndpoints serves the API catalog consumed by the explorer UI.
func ListEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, catalog)
}
