package controllers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"restaurantapi/models"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const restaurantSelectQ = `SELECT
		id, name, description, phone, email, address, working_hours, social_media,
		logo, banner, created_at, updated_at
	FROM restaurant LIMIT 1`

func scanRestaurant(row scanner) (restaurant models.Restaurant, err error) {
	var description, email, logo, banner sql.NullString
	var address, workingHours, socialMedia []byte

	err = row.Scan(&restaurant.Id, &restaurant.Name, &description, &restaurant.Phone, &email,
		&address, &workingHours, &socialMedia, &logo, &banner,
		&restaurant.CreatedAt, &restaurant.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Println(err)
		}
		return
	}

	restaurant.Description = description.String
	restaurant.Email = email.String
	restaurant.Logo = logo.String
	restaurant.Banner = banner.String

	if err = json.Unmarshal(address, &restaurant.Address); err != nil {
		log.Println(err)
		return
	}
	if err = json.Unmarshal(workingHours, &restaurant.WorkingHours); err != nil {
		log.Println(err)
		return
	}
	if err = json.Unmarshal(socialMedia, &restaurant.SocialMedia); err != nil {
		log.Println(err)
		return
	}

	return
}

func (api *API) fetchRestaurant() (models.Restaurant, error) {
	return scanRestaurant(api.Db.QueryRow(restaurantSelectQ))
}

// createDefaultRestaurant seeds the singleton row the first time the public
// site asks for it.
func (api *API) createDefaultRestaurant() (models.Restaurant, error) {
	restaurant := models.Restaurant{
		Id:          uuid.Must(uuid.NewV4()).String(),
		Name:        "My Restaurant",
		Description: "Where taste and quality meet",
		Phone:       "000 000 00 00",
		Email:       "info@example.com",
		Address: models.Address{
			Street:  "Main Street 1",
			City:    "Istanbul",
			Country: "Turkiye",
		},
		WorkingHours: models.DefaultWorkingHours(),
	}

	address, _ := json.Marshal(restaurant.Address)
	workingHours, _ := json.Marshal(restaurant.WorkingHours)
	socialMedia, _ := json.Marshal(restaurant.SocialMedia)

	if _, err := api.Db.Exec(`
		INSERT INTO restaurant
		(id, name, description, phone, email, address, working_hours, social_media, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`, restaurant.Id, restaurant.Name, restaurant.Description, restaurant.Phone, restaurant.Email,
		address, workingHours, socialMedia); err != nil {
		log.Println(err)
		return restaurant, err
	}

	return api.fetchRestaurant()
}

func (api *API) GetRestaurantInfo(c *gin.Context) {
	restaurant, err := api.fetchRestaurant()
	if err == sql.ErrNoRows {
		restaurant, err = api.createDefaultRestaurant()
	}

	if err != nil {
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ItemResponse{Success: true, Data: restaurant})
}

// UpdateRestaurantInfo merges the provided fields over the stored record;
// nested objects are merged key by key instead of being replaced.
func (api *API) UpdateRestaurantInfo(c *gin.Context) {
	var patch models.RestaurantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	restaurant, err := api.fetchRestaurant()
	if err == sql.ErrNoRows {
		restaurant, err = api.createDefaultRestaurant()
	}

	if err != nil {
		sendServerError(c, err)
		return
	}

	if patch.Has("name") && patch.Name != nil {
		if *patch.Name == "" {
			sendError(c, http.StatusBadRequest, "missing-name")
			return
		}
		restaurant.Name = *patch.Name
	}

	if patch.Has("description") {
		restaurant.Description = ""
		if patch.Description != nil {
			restaurant.Description = *patch.Description
		}
	}

	if patch.Has("phone") && patch.Phone != nil {
		restaurant.Phone = *patch.Phone
	}

	if patch.Has("email") {
		restaurant.Email = ""
		if patch.Email != nil {
			restaurant.Email = *patch.Email
		}
	}

	// unmarshalling over the populated structs merges the provided keys and
	// keeps the rest
	if patch.Has("address") && patch.Address != nil {
		if err := json.Unmarshal(patch.Address, &restaurant.Address); err != nil {
			log.Println(err)
			sendError(c, http.StatusBadRequest, "invalid-address")
			return
		}
	}

	if patch.Has("workingHours") && patch.WorkingHours != nil {
		if err := json.Unmarshal(patch.WorkingHours, &restaurant.WorkingHours); err != nil {
			log.Println(err)
			sendError(c, http.StatusBadRequest, "invalid-working-hours")
			return
		}
	}

	if patch.Has("socialMedia") && patch.SocialMedia != nil {
		if err := json.Unmarshal(patch.SocialMedia, &restaurant.SocialMedia); err != nil {
			log.Println(err)
			sendError(c, http.StatusBadRequest, "invalid-social-media")
			return
		}
	}

	address, _ := json.Marshal(restaurant.Address)
	workingHours, _ := json.Marshal(restaurant.WorkingHours)
	socialMedia, _ := json.Marshal(restaurant.SocialMedia)

	if _, err := api.Db.Exec(`
		UPDATE restaurant SET
		name = $1, description = $2, phone = $3, email = $4,
		address = $5, working_hours = $6, social_media = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
	`, restaurant.Name, restaurant.Description, restaurant.Phone, restaurant.Email,
		address, workingHours, socialMedia, restaurant.Id); err != nil {
		sendServerError(c, err)
		return
	}

	restaurant, err = api.fetchRestaurant()
	if err != nil {
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ItemResponse{Success: true, Message: "restaurant-updated", Data: restaurant})
}

func (api *API) UpdateRestaurantLogo(c *gin.Context) {
	api.updateRestaurantImage(c, "logo")
}

func (api *API) UpdateRestaurantBanner(c *gin.Context) {
	api.updateRestaurantImage(c, "banner")
}

func (api *API) updateRestaurantImage(c *gin.Context, column string) {
	file, err := c.FormFile(column)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, "missing-"+column)
		return
	}

	restaurant, err := api.fetchRestaurant()
	if err != nil {
		if err == sql.ErrNoRows {
			sendError(c, http.StatusNotFound, "restaurant-not-found")
			return
		}
		sendServerError(c, err)
		return
	}

	url, err := api.saveImage(file, "restaurant")
	if err != nil {
		if err.Error() == "not-an-image" {
			sendError(c, http.StatusBadRequest, err.Error())
			return
		}
		sendServerError(c, err)
		return
	}

	if _, err := api.Db.Exec("UPDATE restaurant SET "+column+" = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
		url, restaurant.Id); err != nil {
		sendServerError(c, err)
		return
	}

	restaurant, err = api.fetchRestaurant()
	if err != nil {
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ItemResponse{Success: true, Message: column + "-updated", Data: restaurant})
}
