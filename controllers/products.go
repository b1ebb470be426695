package controllers

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"restaurantapi/models"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/lib/pq"
)

const productColumns = `p.id, p.name, p.description, p.price, p.category_id, c.name,
		p.images, p.ingredients, p.allergens, p.is_active, p.is_popular, p.sort_order,
		p.calories, p.protein, p.carbs, p.fat, p.created_at, p.updated_at`

// listing and count share the always-on active predicate, the single item
// queries do not filter on it so the admin panel can read inactive products
var (
	productSelectQ = `SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.is_active`
	productCountQ = `SELECT COUNT(1) FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.is_active`
	productItemQ = `SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1`
	productDetailQ = `SELECT ` + productColumns + `, c.description
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1`
)

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row scanner, withCategoryDescription bool) (product models.Product, err error) {
	var description, categoryDescription sql.NullString
	var calories, protein, carbs, fat sql.NullFloat64

	dest := []interface{}{
		&product.Id, &product.Name, &description, &product.Price,
		&product.Category.Id, &product.Category.Name,
		pq.Array(&product.Images), pq.Array(&product.Ingredients), pq.Array(&product.Allergens),
		&product.IsActive, &product.IsPopular, &product.SortOrder,
		&calories, &protein, &carbs, &fat,
		&product.CreatedAt, &product.UpdatedAt,
	}

	if withCategoryDescription {
		dest = append(dest, &categoryDescription)
	}

	if err = row.Scan(dest...); err != nil {
		log.Println(err)
		return
	}

	product.Description = description.String
	product.Category.Description = categoryDescription.String

	if product.Images == nil {
		product.Images = []string{}
	}
	if product.Ingredients == nil {
		product.Ingredients = []string{}
	}
	if product.Allergens == nil {
		product.Allergens = []string{}
	}

	if calories.Valid || protein.Valid || carbs.Valid || fat.Valid {
		info := &models.NutritionalInfo{}
		if calories.Valid {
			info.Calories = &calories.Float64
		}
		if protein.Valid {
			info.Protein = &protein.Float64
		}
		if carbs.Valid {
			info.Carbs = &carbs.Float64
		}
		if fat.Valid {
			info.Fat = &fat.Float64
		}
		product.Nutritional = info
	}

	return
}

func (api *API) fetchProduct(id string, withCategoryDescription bool) (models.Product, error) {
	q := productItemQ
	if withCategoryDescription {
		q = productDetailQ
	}

	return scanProduct(api.Db.QueryRow(q, id), withCategoryDescription)
}

func (api *API) queryProducts(q string, stms []interface{}) (products []models.Product, err error) {
	rows, err := api.Db.Query(q, stms...)
	if err != nil {
		log.Println(err)
		return
	}

	defer rows.Close()

	products = []models.Product{}

	for rows.Next() {
		var product models.Product
		product, err = scanProduct(rows, false)
		if err != nil {
			return
		}

		products = append(products, product)
	}

	return
}

func (api *API) GetProducts(c *gin.Context) {
	q := CompileProductQuery(c.Request.URL.Query())

	filterQ, stms := getFilterProduct(q)

	selectQ := productSelectQ + filterQ + orderProduct(q.Sort) + paginateProduct(q)
	countQ := productCountQ + filterQ

	log.Println(selectQ)

	products, err := api.queryProducts(selectQ, stms)
	if err != nil {
		sendServerError(c, err)
		return
	}

	total, err := api.GetTotal(countQ, stms)
	if err != nil {
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProductList{
		Success: true,
		Count:   len(products),
		Total:   total,
		Page:    q.Page,
		Pages:   totalPages(total, q.Limit),
		Data:    products,
	})
}

func (api *API) GetProductsByCategory(c *gin.Context) {
	categoryId := c.Param("categoryId")

	if _, err := uuid.FromString(categoryId); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-category-id")
		return
	}

	var categoryName string
	if err := api.Db.QueryRow("SELECT name FROM categories WHERE id = $1", categoryId).Scan(&categoryName); err != nil {
		if err == sql.ErrNoRows {
			sendError(c, http.StatusNotFound, "category-not-found")
			return
		}
		sendServerError(c, err)
		return
	}

	selectQ := productSelectQ + " AND p.category_id = $1" + orderProduct("")

	products, err := api.queryProducts(selectQ, []interface{}{categoryId})
	if err != nil {
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CategoryProductList{
		Success:  true,
		Count:    len(products),
		Category: categoryName,
		Data:     products,
	})
}

func (api *API) GetProduct(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-product-id")
		return
	}

	product, err := api.fetchProduct(id, true)
	if err != nil {
		if err == sql.ErrNoRows {
			sendError(c, http.StatusNotFound, "product-not-found")
			return
		}
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ItemResponse{Success: true, Data: product})
}

func (api *API) CreateProduct(c *gin.Context) {
	var payload models.ProductRequest

	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateProduct(payload); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := uuid.FromString(payload.CategoryId); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-category-id")
		return
	}

	exists, err := api.categoryExists(payload.CategoryId)
	if err != nil {
		sendServerError(c, err)
		return
	}

	if !exists {
		sendError(c, http.StatusNotFound, "category-not-found")
		return
	}

	id := uuid.Must(uuid.NewV4()).String()

	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}

	isPopular := false
	if payload.IsPopular != nil {
		isPopular = *payload.IsPopular
	}

	sortOrder := 0
	if payload.SortOrder != nil {
		sortOrder = *payload.SortOrder
	}

	if payload.Images == nil {
		payload.Images = []string{}
	}
	if payload.Ingredients == nil {
		payload.Ingredients = []string{}
	}
	if payload.Allergens == nil {
		payload.Allergens = []string{}
	}

	var calories, protein, carbs, fat *float64
	if payload.Nutritional != nil {
		calories = payload.Nutritional.Calories
		protein = payload.Nutritional.Protein
		carbs = payload.Nutritional.Carbs
		fat = payload.Nutritional.Fat
	}

	if _, err := api.Db.Exec(`
		INSERT INTO products
		(id, name, description, price, category_id, images, ingredients, allergens,
		is_active, is_popular, sort_order, calories, protein, carbs, fat, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`, id, payload.Name, payload.Description, *payload.Price, payload.CategoryId,
		pq.Array(payload.Images), pq.Array(payload.Ingredients), pq.Array(payload.Allergens),
		isActive, isPopular, sortOrder, calories, protein, carbs, fat); err != nil {
		sendServerError(c, err)
		return
	}

	product, err := api.fetchProduct(id, false)
	if err != nil {
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.ItemResponse{Success: true, Message: "product-created", Data: product})
}

func (api *API) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-product-id")
		return
	}

	var exists bool
	if err := api.Db.QueryRow("SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)", id).Scan(&exists); err != nil {
		sendServerError(c, err)
		return
	}

	if !exists {
		sendError(c, http.StatusNotFound, "product-not-found")
		return
	}

	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if patch.Has("categoryId") {
		if patch.CategoryId == nil {
			sendError(c, http.StatusBadRequest, "invalid-category-id")
			return
		}

		if _, err := uuid.FromString(*patch.CategoryId); err != nil {
			sendError(c, http.StatusBadRequest, "invalid-category-id")
			return
		}

		categoryExists, err := api.categoryExists(*patch.CategoryId)
		if err != nil {
			sendServerError(c, err)
			return
		}

		if !categoryExists {
			sendError(c, http.StatusNotFound, "category-not-found")
			return
		}
	}

	if err := validateProductPatch(patch); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	setQ, stms := getUpdateProduct(patch)
	if setQ != "" {
		stms = append(stms, id)
		q := "UPDATE products SET" + setQ + fmt.Sprintf(", updated_at = CURRENT_TIMESTAMP WHERE id = $%d", len(stms))

		if _, err := api.Db.Exec(q, stms...); err != nil {
			sendServerError(c, err)
			return
		}
	}

	product, err := api.fetchProduct(id, false)
	if err != nil {
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ItemResponse{Success: true, Message: "product-updated", Data: product})
}

func (api *API) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-product-id")
		return
	}

	tag, err := api.Db.Exec("DELETE FROM products WHERE id = $1", id)
	if err != nil {
		sendServerError(c, err)
		return
	}

	if n, _ := tag.RowsAffected(); n == 0 {
		sendError(c, http.StatusNotFound, "product-not-found")
		return
	}

	c.JSON(http.StatusOK, models.ActionResponse{Success: true, Message: "product-deleted"})
}

func (api *API) UpdateProductImages(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-product-id")
		return
	}

	var exists bool
	if err := api.Db.QueryRow("SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)", id).Scan(&exists); err != nil {
		sendServerError(c, err)
		return
	}

	if !exists {
		sendError(c, http.StatusNotFound, "product-not-found")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, "missing-images")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		sendError(c, http.StatusBadRequest, "missing-images")
		return
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := api.saveImage(file, "product")
		if err != nil {
			if err.Error() == "not-an-image" {
				sendError(c, http.StatusBadRequest, err.Error())
				return
			}
			sendServerError(c, err)
			return
		}
		urls = append(urls, url)
	}

	q := "UPDATE products SET images = array_cat(images, $1), updated_at = CURRENT_TIMESTAMP WHERE id = $2"
	if c.PostForm("replace") == "true" {
		q = "UPDATE products SET images = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2"
	}

	if _, err := api.Db.Exec(q, pq.Array(urls), id); err != nil {
		sendServerError(c, err)
		return
	}

	product, err := api.fetchProduct(id, false)
	if err != nil {
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ItemResponse{Success: true, Message: "product-images-updated", Data: product})
}

// ExportProducts dumps the whole filtered catalog as a spreadsheet, ignoring
// pagination.
func (api *API) ExportProducts(c *gin.Context) {
	q := CompileProductQuery(c.Request.URL.Query())

	filterQ, stms := getFilterProduct(q)
	selectQ := productSelectQ + filterQ + orderProduct(q.Sort)

	products, err := api.queryProducts(selectQ, stms)
	if err != nil {
		sendServerError(c, err)
		return
	}

	if len(products) == 0 {
		sendError(c, http.StatusNotFound, "products-not-found")
		return
	}

	f := excelize.NewFile()

	sheet := "List Products"
	f.NewSheet(sheet)
	// delete default sheet
	f.DeleteSheet("Sheet1")

	if err := f.SetColWidth(sheet, "A", "F", 50); err != nil {
		sendServerError(c, err)
		return
	}

	headerStyle, err := f.NewStyle(s1)
	if err != nil {
		sendServerError(c, err)
		return
	}

	dataStyle, err := f.NewStyle(s2)
	if err != nil {
		sendServerError(c, err)
		return
	}

	streamWriter, err := f.NewStreamWriter(sheet)
	if err != nil {
		sendServerError(c, err)
		return
	}

	if err = streamWriter.SetRow("A1", []interface{}{
		excelize.Cell{StyleID: headerStyle, Value: "Category"},
		excelize.Cell{StyleID: headerStyle, Value: "Name"},
		excelize.Cell{StyleID: headerStyle, Value: "Description"},
		excelize.Cell{StyleID: headerStyle, Value: "Price"},
		excelize.Cell{StyleID: headerStyle, Value: "Popular"},
		excelize.Cell{StyleID: headerStyle, Value: "Created At"}}); err != nil {
		sendServerError(c, err)
		return
	}

	for n, product := range products {
		row := make([]interface{}, 6)
		row[0] = excelize.Cell{StyleID: dataStyle, Value: product.Category.Name}
		row[1] = excelize.Cell{StyleID: dataStyle, Value: product.Name}
		row[2] = excelize.Cell{StyleID: dataStyle, Value: product.Description}
		row[3] = excelize.Cell{StyleID: dataStyle, Value: humanize.Commaf(product.Price)}
		row[4] = excelize.Cell{StyleID: dataStyle, Value: product.IsPopular}
		row[5] = excelize.Cell{StyleID: dataStyle, Value: product.CreatedAt.Format("2006-01-02 15:04:05")}

		cell, _ := excelize.CoordinatesToCellName(1, n+2)
		if err = streamWriter.SetRow(cell, row); err != nil {
			sendServerError(c, err)
			return
		}
	}

	if err := streamWriter.Flush(); err != nil {
		sendServerError(c, err)
		return
	}

	fileName := fmt.Sprintf("catalog_products_%s.xlsx", time.Now().Format("20060102_150405"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment;filename=\""+fileName+"\"")

	if _, err := f.WriteTo(c.Writer); err != nil {
		sendServerError(c, err)
		return
	}
}

func (api *API) categoryExists(id string) (exists bool, err error) {
	err = api.Db.QueryRow("SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		log.Println(err)
	}
	return
}

func validateProduct(product models.ProductRequest) error {

	if product.Name == "" {
		return errors.New("missing-name")
	}

	if utf8.RuneCountInString(product.Name) > 200 {
		return errors.New("name-too-long")
	}

	if utf8.RuneCountInString(product.Description) > 1000 {
		return errors.New("description-too-long")
	}

	if product.Price == nil {
		return errors.New("missing-price")
	}

	if *product.Price < 0 {
		return errors.New("negative-price")
	}

	if product.CategoryId == "" {
		return errors.New("missing-category-id")
	}

	return validateNutritional(product.Nutritional)
}

func validateProductPatch(patch models.ProductPatch) error {

	if patch.Has("name") {
		if patch.Name == nil || *patch.Name == "" {
			return errors.New("missing-name")
		}

		if utf8.RuneCountInString(*patch.Name) > 200 {
			return errors.New("name-too-long")
		}
	}

	if patch.Has("description") && patch.Description != nil && utf8.RuneCountInString(*patch.Description) > 1000 {
		return errors.New("description-too-long")
	}

	if patch.Has("price") {
		if patch.Price == nil {
			return errors.New("missing-price")
		}

		if *patch.Price < 0 {
			return errors.New("negative-price")
		}
	}

	if patch.Has("nutritionalInfo") {
		return validateNutritional(patch.Nutritional)
	}

	return nil
}

func validateNutritional(info *models.NutritionalInfo) error {
	if info == nil {
		return nil
	}

	for _, v := range []*float64{info.Calories, info.Protein, info.Carbs, info.Fat} {
		if v != nil && *v < 0 {
			return errors.New("negative-nutritional-value")
		}
	}

	return nil
}

// getUpdateProduct builds the SET fragment for the fields the patch actually
// carries. categoryId is validated by the caller before it lands here.
func getUpdateProduct(patch models.ProductPatch) (setQ string, stms []interface{}) {
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

	if patch.Has("price") {
		set("price", *patch.Price)
	}

	if patch.Has("categoryId") {
		set("category_id", *patch.CategoryId)
	}

	if patch.Has("images") {
		images := patch.Images
		if images == nil {
			images = []string{}
		}
		set("images", pq.Array(images))
	}

	if patch.Has("ingredients") {
		ingredients := patch.Ingredients
		if ingredients == nil {
			ingredients = []string{}
		}
		set("ingredients", pq.Array(ingredients))
	}

	if patch.Has("allergens") {
		allergens := patch.Allergens
		if allergens == nil {
			allergens = []string{}
		}
		set("allergens", pq.Array(allergens))
	}

	if patch.Has("isActive") {
		isActive := true
		if patch.IsActive != nil {
			isActive = *patch.IsActive
		}
		set("is_active", isActive)
	}

	if patch.Has("isPopular") {
		isPopular := false
		if patch.IsPopular != nil {
			isPopular = *patch.IsPopular
		}
		set("is_popular", isPopular)
	}

	if patch.Has("sortOrder") {
		sortOrder := 0
		if patch.SortOrder != nil {
			sortOrder = *patch.SortOrder
		}
		set("sort_order", sortOrder)
	}

	if patch.Has("nutritionalInfo") {
		var calories, protein, carbs, fat *float64
		if patch.Nutritional != nil {
			calories = patch.Nutritional.Calories
			protein = patch.Nutritional.Protein
			carbs = patch.Nutritional.Carbs
			fat = patch.Nutritional.Fat
		}
		set("calories", calories)
		set("protein", protein)
		set("carbs", carbs)
		set("fat", fat)
	}

	return
}
