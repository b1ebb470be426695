package models

type ItemResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
