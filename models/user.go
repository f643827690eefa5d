package models

import "time"

type UserProfile struct {
	User_Profile_ID int       `json:"userProfileId" db:"user_profile_id" goqu:"skipinsert"`
	Email           string    `json:"email" db:"email"`
	Password        string    `json:"-" db:"password"`
	First_Name      string    `json:"firstName" db:"first_name"`
	Last_Name       string    `json:"lastName" db:"last_name"`
	Role            string    `json:"role" db:"role"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

// DisplayName is the attribution name stamped onto authored content.
func (u UserProfile) DisplayName() string {
	if u.First_Name == "" && u.Last_Name == "" {
		return u.Email
	}
	if u.Last_Name == "" {
		return u.First_Name
	}
	return u.First_Name + " " + u.Last_Name
}

type Register struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	User_Profile_ID int    `json:"id"`
	Email           string `json:"email"`
	First_Name      string `json:"firstName"`
	Last_Name       string `json:"lastName"`
	Role            string `json:"role"`
	Created_At      string `json:"createdAt"`
	Updated_At      string `json:"updatedAt"`
}

func (u UserProfile) Shape() UserResponse {
	return UserResponse{
		User_Profile_ID: u.User_Profile_ID,
		Email:           u.Email,
		First_Name:      u.First_Name,
		Last_Name:       u.Last_Name,
		Role:            u.Role,
		Created_At:      FormatTime(u.Datetime_Create),
		Updated_At:      FormatTime(u.Datetime_Update),
	}
}
