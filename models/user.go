package models

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type User struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Lastname string  `json:"lastname"`
	Address  Address `json:"address"`
	Age      int     `json:"age,omitempty"`
	Gender   string  `json:"gender,omitempty"`
	UserRole string  `json:"userRole"`
	Featured bool    `json:"featured"`
}
