package models

// ErrorResponse โครงสร้าง error มาตรฐานของ API
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
