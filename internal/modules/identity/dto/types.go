package dto

type UserOutput struct {
	ID    string
	Email string
}
