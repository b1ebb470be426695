package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurantapi/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gotest.tools/assert"
)

var categoryLabel = []string{
	"id",
	"name",
	"description",
	"image",
	"is_active",
	"sort_order",
	"created_at",
	"updated_at",
}

func TestGetCategories(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.Equal(t, nil, err)

	api := NewAPI()
	api.Db = db

	var genericResp GenericResponse

	mockID := "63eb226a-d612-412b-b8d4-a3e17b7d2226"

	// err select (500)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	dbMock.ExpectQuery("SELECT.*").WillReturnError(errors.New("err-select"))

	req, _ := http.NewRequest("GET", "", nil)
	c.Request = req
	api.GetCategories(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "err-select", genericResp.Error)

	// scan error (500)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)

	dbMock.ExpectQuery("SELECT.*").
		WillReturnRows(sqlmock.NewRows(categoryLabel[6:]).AddRow(time.Now(), time.Now()))

	req, _ = http.NewRequest("GET", "", nil)
	c.Request = req
	api.GetCategories(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "sql: expected 2 destination arguments in Scan, not 8", genericResp.Error)

	// 200
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)

	dbMock.ExpectQuery("SELECT.*").
		WillReturnRows(sqlmock.NewRows(categoryLabel).
			AddRow(mockID, "Kebabs", "Charcoal grilled", nil, true, 1, time.Now(), time.Now()).
			AddRow(mockID, "Desserts", nil, "/uploads/desserts.jpg", true, 2, time.Now(), time.Now()))

	req, _ = http.NewRequest("GET", "", nil)
	c.Request = req
	api.GetCategories(c)

	var resp models.CategoryList
	err = json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp.Success)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "Kebabs", resp.Data[0].Name)
	assert.Equal(t, "", resp.Data[1].Description)
	assert.Equal(t, "/uploads/desserts.jpg", resp.Data[1].Image)
}

func TestGetCategory(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.Equal(t, nil, err)

	api := NewAPI()
	api.Db = db

	var genericResp GenericResponse

	mockID := "63eb226a-d612-412b-b8d4-a3e17b7d2226"

	// invalid id (400)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "err"}}

	req, _ := http.NewRequest("GET", "", nil)
	c.Request = req
	api.GetCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid-category-id", genericResp.Message)

	// not found (404)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT.*").WillReturnRows(sqlmock.NewRows(categoryLabel))

	req, _ = http.NewRequest("GET", "", nil)
	c.Request = req
	api.GetCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "category-not-found", genericResp.Message)

	// err select (500)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT.*").WillReturnError(errors.New("err-select"))

	req, _ = http.NewRequest("GET", "", nil)
	c.Request = req
	api.GetCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "err-select", genericResp.Error)

	// 200
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT.*").WithArgs(mockID).
		WillReturnRows(sqlmock.NewRows(categoryLabel).
			AddRow(mockID, "Kebabs", "Charcoal grilled", nil, true, 1, time.Now(), time.Now()))

	req, _ = http.NewRequest("GET", "", nil)
	c.Request = req
	api.GetCategory(c)

	resp := struct {
		Success bool            `json:"success"`
		Data    models.Category `json:"data"`
	}{}

	err = json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp.Success)
	assert.Equal(t, mockID, resp.Data.Id)
	assert.Equal(t, "Kebabs", resp.Data.Name)
}

func TestCreateCategory(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.Equal(t, nil, err)

	api := NewAPI()
	api.Db = db

	var genericResp GenericResponse

	mockID := "63eb226a-d612-412b-b8d4-a3e17b7d2226"

	// nil request (400)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req, _ := http.NewRequest("POST", "", nil)
	c.Request = req
	api.CreateCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request", genericResp.Message)

	// bad request (400)
	category := models.CategoryRequest{}
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	payload := parsePayload(category)
	req, _ = http.NewRequest("POST", "", payload)
	c.Request = req
	api.CreateCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing-name", genericResp.Message)

	category.Name = strings.Repeat("k", 101)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	payload = parsePayload(category)
	req, _ = http.NewRequest("POST", "", payload)
	c.Request = req
	api.CreateCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name-too-long", genericResp.Message)

	category.Name = "Kebabs"
	category.Description = strings.Repeat("k", 501)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	payload = parsePayload(category)
	req, _ = http.NewRequest("POST", "", payload)
	c.Request = req
	api.CreateCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "description-too-long", genericResp.Message)

	// err select exist (500)
	category.Description = "Charcoal grilled"
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	payload = parsePayload(category)

	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnError(errors.New("err-select"))

	req, _ = http.NewRequest("POST", "", payload)
	c.Request = req
	api.CreateCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "err-select", genericResp.Error)

	// name conflict (409)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	payload = parsePayload(category)

	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	req, _ = http.NewRequest("POST", "", payload)
	c.Request = req
	api.CreateCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "category-name-exists", genericResp.Message)

	// err insert (500)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	payload = parsePayload(category)

	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	dbMock.ExpectExec("INSERT INTO categories.*").WillReturnError(errors.New("err-insert"))

	req, _ = http.NewRequest("POST", "", payload)
	c.Request = req
	api.CreateCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "err-insert", genericResp.Error)

	// 201
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	payload = parsePayload(category)

	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	dbMock.ExpectExec("INSERT INTO categories.*").WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectQuery("SELECT.*").
		WillReturnRows(sqlmock.NewRows(categoryLabel).
			AddRow(mockID, "Kebabs", "Charcoal grilled", nil, true, 0, time.Now(), time.Now()))

	req, _ = http.NewRequest("POST", "", payload)
	c.Request = req
	api.CreateCategory(c)

	resp := struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    models.Category `json:"data"`
	}{}

	err = json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "category-created", resp.Message)
	assert.Equal(t, "Kebabs", resp.Data.Name)
}

func TestUpdateCategory(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.Equal(t, nil, err)

	api := NewAPI()
	api.Db = db

	var genericResp GenericResponse

	mockID := "63eb226a-d612-412b-b8d4-a3e17b7d2226"

	// invalid id (400)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "err"}}

	req, _ := http.NewRequest("PUT", "", nil)
	c.Request = req
	api.UpdateCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid-category-id", genericResp.Message)

	// not found (404)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT.*").WillReturnRows(sqlmock.NewRows(categoryLabel))

	req, _ = http.NewRequest("PUT", "", nil)
	c.Request = req
	api.UpdateCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "category-not-found", genericResp.Message)

	// nil request (400)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT.*").
		WillReturnRows(sqlmock.NewRows(categoryLabel).
			AddRow(mockID, "Kebabs", nil, nil, true, 1, time.Now(), time.Now()))

	req, _ = http.NewRequest("PUT", "", nil)
	c.Request = req
	api.UpdateCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request", genericResp.Message)

	// explicit null name (400)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT.*").
		WillReturnRows(sqlmock.NewRows(categoryLabel).
			AddRow(mockID, "Kebabs", nil, nil, true, 1, time.Now(), time.Now()))

	req, _ = http.NewRequest("PUT", "", bytes.NewBufferString(`{"name":null}`))
	c.Request = req
	api.UpdateCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing-name", genericResp.Message)

	// rename conflict (409)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT.*").
		WillReturnRows(sqlmock.NewRows(categoryLabel).
			AddRow(mockID, "Kebabs", nil, nil, true, 1, time.Now(), time.Now()))
	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	req, _ = http.NewRequest("PUT", "", bytes.NewBufferString(`{"name":"Desserts"}`))
	c.Request = req
	api.UpdateCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "category-name-exists", genericResp.Message)

	// err update (500)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT.*").
		WillReturnRows(sqlmock.NewRows(categoryLabel).
			AddRow(mockID, "Kebabs", nil, nil, true, 1, time.Now(), time.Now()))
	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	dbMock.ExpectExec("UPDATE categories.*").WillReturnError(errors.New("err-update"))

	req, _ = http.NewRequest("PUT", "", bytes.NewBufferString(`{"name":"Desserts"}`))
	c.Request = req
	api.UpdateCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "err-update", genericResp.Error)

	// 200
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT.*").
		WillReturnRows(sqlmock.NewRows(categoryLabel).
			AddRow(mockID, "Kebabs", nil, nil, true, 1, time.Now(), time.Now()))
	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	dbMock.ExpectExec("UPDATE categories.*").
		WithArgs("Desserts", false, 3, mockID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectQuery("SELECT.*").
		WillReturnRows(sqlmock.NewRows(categoryLabel).
			AddRow(mockID, "Desserts", nil, nil, false, 3, time.Now(), time.Now()))

	req, _ = http.NewRequest("PUT", "", bytes.NewBufferString(`{"name":"Desserts","isActive":false,"sortOrder":3}`))
	c.Request = req
	api.UpdateCategory(c)

	resp := struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    models.Category `json:"data"`
	}{}

	err = json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "category-updated", resp.Message)
	assert.Equal(t, "Desserts", resp.Data.Name)
	assert.Equal(t, 3, resp.Data.SortOrder)
}

func TestDeleteCategory(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.Equal(t, nil, err)

	api := NewAPI()
	api.Db = db

	var genericResp GenericResponse

	mockID := "63eb226a-d612-412b-b8d4-a3e17b7d2226"

	// invalid id (400)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "err"}}

	req, _ := http.NewRequest("DELETE", "", nil)
	c.Request = req
	api.DeleteCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid-category-id", genericResp.Message)

	// err select referencing products (500)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnError(errors.New("err-select"))

	req, _ = http.NewRequest("DELETE", "", nil)
	c.Request = req
	api.DeleteCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "err-select", genericResp.Error)

	// products still reference the category (409)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	req, _ = http.NewRequest("DELETE", "", nil)
	c.Request = req
	api.DeleteCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "category-has-products", genericResp.Message)

	// not found (404)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	dbMock.ExpectExec("DELETE FROM categories.*").WillReturnResult(sqlmock.NewResult(0, 0))

	req, _ = http.NewRequest("DELETE", "", nil)
	c.Request = req
	api.DeleteCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "category-not-found", genericResp.Message)

	// 200
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	dbMock.ExpectExec("DELETE FROM categories.*").WithArgs(mockID).WillReturnResult(sqlmock.NewResult(0, 1))

	req, _ = http.NewRequest("DELETE", "", nil)
	c.Request = req
	api.DeleteCategory(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "category-deleted", genericResp.Message)
}

func TestUpdateCategoryImage(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.Equal(t, nil, err)

	api := NewAPI()
	api.Db = db

	var genericResp GenericResponse

	mockID := "63eb226a-d612-412b-b8d4-a3e17b7d2226"

	// invalid id (400)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "err"}}

	req, _ := http.NewRequest("PUT", "", nil)
	c.Request = req
	api.UpdateCategoryImage(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid-category-id", genericResp.Message)

	// not found (404)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	req, _ = http.NewRequest("PUT", "", nil)
	c.Request = req
	api.UpdateCategoryImage(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "category-not-found", genericResp.Message)

	// missing file (400)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	req, _ = http.NewRequest("PUT", "", nil)
	c.Request = req
	api.UpdateCategoryImage(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing-image", genericResp.Message)

	// wrong content type (400)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: mockID}}

	dbMock.ExpectQuery("SELECT EXISTS.*").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	body, contentType := multipartText(t, "image", "notes.txt")
	req, _ = http.NewRequest("PUT", "", body)
	req.Header.Set("Content-Type", contentType)
	c.Request = req
	api.UpdateCategoryImage(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "not-an-image", genericResp.Message)
}

func TestValidateCategory(t *testing.T) {
	// limits count characters, not bytes
	category := models.CategoryRequest{Name: strings.Repeat("ş", 100)}
	assert.Equal(t, nil, validateCategory(category))

	category.Name = strings.Repeat("ş", 101)
	assert.Error(t, validateCategory(category), "name-too-long")

	category.Name = "Kebabs"
	category.Description = strings.Repeat("ğ", 500)
	assert.Equal(t, nil, validateCategory(category))

	category.Description = strings.Repeat("ğ", 501)
	assert.Error(t, validateCategory(category), "description-too-long")
}
