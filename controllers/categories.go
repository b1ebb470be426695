package controllers

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"unicode/utf8"

	"restaurantapi/models"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

var (
	categorySelectQ = `SELECT
			id, name, description, image, is_active, sort_order, created_at, updated_at
		FROM categories`
)

func scanCategory(row scanner) (category models.Category, err error) {
	var description, image sql.NullString

	err = row.Scan(&category.Id, &category.Name, &description, &image,
		&category.IsActive, &category.SortOrder, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		log.Println(err)
		return
	}

	category.Description = description.String
	category.Image = image.String

	return
}

func (api *API) fetchCategory(id string) (models.Category, error) {
	return scanCategory(api.Db.QueryRow(categorySelectQ+" WHERE id = $1", id))
}

// GetCategories lists the active categories in menu order.
func (api *API) GetCategories(c *gin.Context) {
	selectQ := categorySelectQ + " WHERE is_active ORDER BY sort_order ASC, created_at ASC"

	rows, err := api.Db.Query(selectQ)
	if err != nil {
		sendServerError(c, err)
		return
	}

	defer rows.Close()

	categories := []models.Category{}

	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			sendServerError(c, err)
			return
		}

		categories = append(categories, category)
	}

	c.JSON(http.StatusOK, models.CategoryList{
		Success: true,
		Count:   len(categories),
		Data:    categories,
	})
}

func (api *API) GetCategory(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-category-id")
		return
	}

	category, err := api.fetchCategory(id)
	if err != nil {
		if err == sql.ErrNoRows {
			sendError(c, http.StatusNotFound, "category-not-found")
			return
		}
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ItemResponse{Success: true, Data: category})
}

func (api *API) CreateCategory(c *gin.Context) {
	var payload models.CategoryRequest

	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateCategory(payload); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	// duplicate names are rejected up front instead of relying on a unique
	// index violation
	var exists bool
	if err := api.Db.QueryRow("SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1)", payload.Name).Scan(&exists); err != nil {
		sendServerError(c, err)
		return
	}

	if exists {
		sendError(c, http.StatusConflict, "category-name-exists")
		return
	}

	id := uuid.Must(uuid.NewV4()).String()

	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}

	sortOrder := 0
	if payload.SortOrder != nil {
		sortOrder = *payload.SortOrder
	}

	if _, err := api.Db.Exec(`
		INSERT INTO categories
		(id, name, description, is_active, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`, id, payload.Name, payload.Description, isActive, sortOrder); err != nil {
		sendServerError(c, err)
		return
	}

	category, err := api.fetchCategory(id)
	if err != nil {
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.ItemResponse{Success: true, Message: "category-created", Data: category})
}

func (api *API) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-category-id")
		return
	}

	category, err := api.fetchCategory(id)
	if err != nil {
		if err == sql.ErrNoRows {
			sendError(c, http.StatusNotFound, "category-not-found")
			return
		}
		sendServerError(c, err)
		return
	}

	var patch models.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateCategoryPatch(patch); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if patch.Has("name") && *patch.Name != category.Name {
		var exists bool
		if err := api.Db.QueryRow("SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1 AND id <> $2)", *patch.Name, id).Scan(&exists); err != nil {
			sendServerError(c, err)
			return
		}

		if exists {
			sendError(c, http.StatusConflict, "category-name-exists")
			return
		}
	}

	setQ, stms := getUpdateCategory(patch)
	if setQ != "" {
		stms = append(stms, id)
		q := "UPDATE categories SET" + setQ + fmt.Sprintf(", updated_at = CURRENT_TIMESTAMP WHERE id = $%d", len(stms))

		if _, err := api.Db.Exec(q, stms...); err != nil {
			sendServerError(c, err)
			return
		}
	}

	category, err = api.fetchCategory(id)
	if err != nil {
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ItemResponse{Success: true, Message: "category-updated", Data: category})
}

// DeleteCategory refuses to delete while products still reference the
// category, so the catalog never holds a dangling reference.
func (api *API) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-category-id")
		return
	}

	var referenced bool
	if err := api.Db.QueryRow("SELECT EXISTS(SELECT 1 FROM products WHERE category_id = $1)", id).Scan(&referenced); err != nil {
		sendServerError(c, err)
		return
	}

	if referenced {
		sendError(c, http.StatusConflict, "category-has-products")
		return
	}

	tag, err := api.Db.Exec("DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		sendServerError(c, err)
		return
	}

	if n, _ := tag.RowsAffected(); n == 0 {
		sendError(c, http.StatusNotFound, "category-not-found")
		return
	}

	c.JSON(http.StatusOK, models.ActionResponse{Success: true, Message: "category-deleted"})
}

func (api *API) UpdateCategoryImage(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-category-id")
		return
	}

	var exists bool
	if err := api.Db.QueryRow("SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)", id).Scan(&exists); err != nil {
		sendServerError(c, err)
		return
	}

	if !exists {
		sendError(c, http.StatusNotFound, "category-not-found")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, "missing-image")
		return
	}

	url, err := api.saveImage(file, "category")
	if err != nil {
		if err.Error() == "not-an-image" {
			sendError(c, http.StatusBadRequest, err.Error())
			return
		}
		sendServerError(c, err)
		return
	}

	if _, err := api.Db.Exec("UPDATE categories SET image = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2", url, id); err != nil {
		sendServerError(c, err)
		return
	}

	category, err := api.fetchCategory(id)
	if err != nil {
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ItemResponse{Success: true, Message: "category-image-updated", Data: category})
}

func validateCategory(category models.CategoryRequest) error {

	if category.Name == "" {
		return errors.New("missing-name")
	}

	if utf8.RuneCountInString(category.Name) > 100 {
		return errors.New("name-too-long")
	}

	if utf8.RuneCountInString(category.Description) > 500 {
		return errors.New("description-too-long")
	}

	return nil
}

func validateCategoryPatch(patch models.CategoryPatch) error {

	if patch.Has("name") {
		if patch.Name == nil || *patch.Name == "" {
			return errors.New("missing-name")
		}

		if utf8.RuneCountInString(*patch.Name) > 100 {
			return errors.New("name-too-long")
		}
	}

	if patch.Has("description") && patch.Description != nil && utf8.RuneCountInString(*patch.Description) > 500 {
		return errors.New("description-too-long")
	}

	return nil
}

func getUpdateCategory(patch models.CategoryPatch) (setQ string, stms []interface{}) {
	set := func(column string, value interface{}) {
		if setQ != "" {
			setQ += ","
		}
		setQ += fmt.Sprintf(" %s = $%d", column, len(stms)+1)
		stms = append(stms, value)
	}

	if patch.Has("name") {
		set("name", *patch.Name)
	}

	if patch.Has("description") {
		description := ""
		if patch.Description != nil {
			description = *patch.Description
		}
		set("description", description)
	}

	if patch.Has("isActive") {
		isActive := true
		if patch.IsActive != nil {
			isActive = *patch.IsActive
		}
		set("is_active", isActive)
	}

	if patch.Has("sortOrder") {
		sortOrder := 0
		if patch.SortOrder != nil {
			sortOrder = *patch.SortOrder
		}
		set("sort_order", sortOrder)
	}

	return
}
