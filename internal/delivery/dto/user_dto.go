package dto

// Request DTOs

type CreateUserRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	ExternalID string `json:"user_id" validate:"required"`
	Photo      string `json:"photo" validate:"omitempty"`
	BloodType  string `json:"bloodType" validate:"omitempty"`
	District   string `json:"dist" validate:"omitempty"`
	Upazila    string `json:"upazila" validate:"omitempty"`
}

// UpdateUserRequest replaces the profile fields of a user record; the
// upsert path also uses it to materialize a record that is not there yet.
type UpdateUserRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	ExternalID string `json:"user_id" validate:"required"`
	Photo      string `json:"photo" validate:"omitempty"`
	BloodType  string `json:"bloodType" validate:"omitempty"`
	District   string `json:"dist" validate:"omitempty"`
	Upazila    string `json:"upazila" validate:"omitempty"`
	Status     string `json:"status" validate:"omitempty,oneof=active blocked"`
}

// Response DTOs

type UserResponse struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ExternalID string `json:"user_id"`
	Photo      string `json:"photo"`
	BloodType  string `json:"bloodType"`
	District   string `json:"dist"`
	Upazila    string `json:"upazila"`
	Role       string `json:"role"`
	Status     string `json:"status"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

type BlockedStatusResponse struct {
	Blocked bool `json:"blocked"`
}
