package request

import "grooming-booking/internal/usecase/commands"

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required,max=100"`
}

func (r RegisterRequest) ToCommand() commands.RegisterRequest {
	return commands.RegisterRequest{
		Username:  r.Username,
		Password:  r.Password,
		FirstName: r.FirstName,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{Username: r.Username, Password: r.Password}
}
