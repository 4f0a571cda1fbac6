package handler

import "github.com/demobank/banking-api/internal/core/domain"

type signupRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Password  string `json:"password" validate:"required,min=8"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signinResponse struct {
	ID int64 `json:"id"`
}

type profileData struct {
	User         domain.Customer      `json:"user"`
	Accounts     []domain.Account     `json:"accounts"`
	Transactions []domain.Transaction `json:"transactions"`
}

type profileResponse struct {
	Status string      `json:"status"`
	Data   profileData `json:"data"`
}

type usersData struct {
	Users []domain.Customer `json:"users"`
}

type listUsersResponse struct {
	Status  string    `json:"status"`
	Results int       `json:"results"`
	Data    usersData `json:"data"`
}
