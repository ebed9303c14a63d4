package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dataserve/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", HealthCheck)
	r.GET("/api/data", GetData)
	r.GET("/api/data-with-date-formats", GetDataWithDateFormats)
	r.GET("/api/schema", GetSchema)
	r.GET("/api/endpoints", ListEndpoints)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r := setupRouter()
	w := doRequest(t, r, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetData_Defaults(t *testing.T) {
	r := setupRouter()
	w := doRequest(t, r, "/api/data")

	require.Equal(t, http.StatusOK, w.Code)

	var page models.Paginated[models.Record]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

	assert.Equal(t, 1000, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 100, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrevious)

	require.Len(t, page.Data, 10)
	for i, rec := range page.Data {
		assert.Equal(t, i+1, rec.ID)
	}
}

func TestGetData_LastPage(t *testing.T) {
	r := setupRouter()
	w := doRequest(t, r, "/api/data?page=10&page_size=10&total_records=100")

	require.Equal(t, http.StatusOK, w.Code)

	var page models.Paginated[models.Record]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

	require.Len(t, page.Data, 10)
	assert.Equal(t, 91, page.Data[0].ID)
	assert.Equal(t, 100, page.Data[9].ID)
	assert.Equal(t, 10, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrevious)
}

func TestGetData_PageBeyondRange(t *testing.T) {
	r := setupRouter()
	w := doRequest(t, r, "/api/data?page=3&page_size=10&total_records=5")

	require.Equal(t, http.StatusOK, w.Code)

	var page models.Paginated[models.Record]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

	assert.Empty(t, page.Data)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrevious)

	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetData_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantField string
	}{
		{name: "page zero", url: "/api/data?page=0", wantField: "page"},
		{name: "page size zero", url: "/api/data?page_size=0", wantField: "page_size"},
		{name: "page size too large", url: "/api/data?page_size=101", wantField: "page_size"},
		{name: "total records zero", url: "/api/data?total_records=0", wantField: "total_records"},
		{name: "total records too large", url: "/api/data?total_records=10001", wantField: "total_records"},
		{name: "non-integer page size", url: "/api/data?page_size=abc"},
		{name: "non-integer seed", url: "/api/data?seed=xyz"},
	}

	r := setupRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, tt.url)

			require.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)

			if tt.wantField != "" {
				require.Len(t, body.Details, 1)
				assert.Equal(t, tt.wantField, body.Details[0].Field)
				assert.NotEmpty(t, body.Details[0].Reason)
			}
		})
	}
}

func TestGetData_Seeded(t *testing.T) {
	r := setupRouter()

	first := doRequest(t, r, "/api/data?seed=42&page_size=5&total_records=5")
	second := doRequest(t, r, "/api/data?seed=42&page_size=5&total_records=5")

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	var a, b models.Paginated[models.Record]
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))

	require.Len(t, a.Data, 5)
	for i := range a.Data {
		assert.Equal(t, a.Data[i].UUID, b.Data[i].UUID)
		assert.Equal(t, a.Data[i].Name, b.Data[i].Name)
		assert.Equal(t, a.Data[i].Email, b.Data[i].Email)
		assert.Equal(t, a.Data[i].BirthDate, b.Data[i].BirthDate)
	}
}

func TestGetDataWithDateFormats(t *testing.T) {
	r := setupRouter()
	w := doRequest(t, r, "/api/data-with-date-formats?page=1&page_size=5&total_records=20")

	require.Equal(t, http.StatusOK, w.Code)

	var page models.Paginated[models.DatedRecord]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

	assert.Equal(t, 20, page.Total)
	assert.Equal(t, 4, page.TotalPages)
	require.Len(t, page.Data, 5)

	for _, rec := range page.Data {
		birth, err := time.Parse("2006-01-02", rec.BirthDateISO)
		require.NoError(t, err)
		created := time.Unix(rec.CreatedAtTimestamp, 0).UTC()
		assert.True(t, birth.Before(created))

		assert.NotEmpty(t, rec.BirthDateUS)
		assert.NotEmpty(t, rec.BirthDateEU)
		assert.NotEmpty(t, rec.BirthDateLong)
		assert.NotEmpty(t, rec.CreatedAtISO)
		assert.NotEmpty(t, rec.CreatedAtReadable)
	}

	// Date fields are replaced by the variant set in this shape.
	assert.NotContains(t, w.Body.String(), `"birth_date":`)
	assert.Contains(t, w.Body.String(), `"birth_date_iso":`)
}

func TestGetDataWithDateFormats_Seeded(t *testing.T) {
	r := setupRouter()

	first := doRequest(t, r, "/api/data-with-date-formats?seed=7&page_size=3&total_records=3")
	second := doRequest(t, r, "/api/data-with-date-formats?seed=7&page_size=3&total_records=3")

	var a, b models.Paginated[models.DatedRecord]
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))

	require.Len(t, a.Data, 3)
	for i := range a.Data {
		assert.Equal(t, a.Data[i].UUID, b.Data[i].UUID)
		assert.Equal(t, a.Data[i].CreatedAtTimestamp, b.Data[i].CreatedAtTimestamp)
		assert.Equal(t, a.Data[i].BirthDateISO, b.Data[i].BirthDateISO)
	}
}
