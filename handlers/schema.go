package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSchema serves the JSON Schema for the record shape, including
// type, format, and nullability of every field.
func GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":       "Record Schema",
		"description": "Schema for the JSON objects returned by the API",
		"type":        "object",
		"properties": gin.H{
			"id":          gin.H{"type": "integer", "description": "Unique identifier"},
			"uuid":        gin.H{"type": "string", "format": "uuid", "description": "UUID string"},
			"name":        gin.H{"type": "string", "description": "User name"},
			"email":       gin.H{"type": "string", "format": "email", "description": "Email address"},
			"age":         gin.H{"type": "integer", "minimum": 18, "maximum": 80, "description": "Age in years"},
			"height":      gin.H{"type": "number", "description": "Height in centimeters"},
			"weight":      gin.H{"type": "number", "description": "Weight in kilograms"},
			"is_active":   gin.H{"type": "boolean", "description": "Active status"},
			"balance":     gin.H{"type": "number", "description": "Account balance"},
			"birth_date":  gin.H{"type": "string", "format": "date", "description": "Birth date in ISO format"},
			"created_at":  gin.H{"type": "string", "format": "date-time", "description": "Creation timestamp"},
			"tags":        gin.H{"type": "array", "items": gin.H{"type": "string"}, "description": "Array of tags"},
			"metadata":    gin.H{"type": "object", "description": "Additional metadata object"},
			"score":       gin.H{"type": []string{"number", "null"}, "description": "Optional score value"},
			"description": gin.H{"type": []string{"string", "null"}, "description": "Optional description"},
		},
		"required": []string{
			"id", "uuid", "name", "email", "age", "height", "weight", "is_active",
			"balance", "birth_date", "created_at", "tags", "metadata",
		},
	})
}
