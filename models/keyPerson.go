package models

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

type KeyPerson struct {
	Key_Person_ID   int       `json:"keyPersonId" db:"key_person_id" goqu:"skipinsert"`
	Name            string    `json:"name" db:"name"`
	Role            string    `json:"role" db:"role"`
	Bio             string    `json:"bio" db:"bio"`
	Photo_URL       string    `json:"photoUrl" db:"photo_url"`
	Contact_Email   string    `json:"contactEmail" db:"contact_email"`
	Created_By      int       `json:"createdBy" db:"created_by"`
	Author_Name     string    `json:"authorName" db:"author_name"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create"`
	Updated_By      int       `json:"updatedBy" db:"updated_by"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type KeyPersonCreate struct {
	Name          string `json:"name"`
	Role          string `json:"role"`
	Bio           string `json:"bio"`
	Photo_URL     string `json:"photoUrl"`
	Contact_Email string `json:"contactEmail"`
}

type KeyPersonUpdate struct {
	Name          *string `json:"name"`
	Role          *string `json:"role"`
	Bio           *string `json:"bio"`
	Photo_URL     *string `json:"photoUrl"`
	Contact_Email *string `json:"contactEmail"`
}

func (u KeyPersonUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Name != nil {
		r["name"] = *u.Name
	}
	if u.Role != nil {
		r["role"] = *u.Role
	}
	if u.Bio != nil {
		r["bio"] = *u.Bio
	}
	if u.Photo_URL != nil {
		r["photo_url"] = *u.Photo_URL
	}
	if u.Contact_Email != nil {
		r["contact_email"] = *u.Contact_Email
	}
	return r
}

type KeyPersonResponse struct {
	Key_Person_ID int    `json:"id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	Bio           string `json:"bio"`
	Photo_URL     string `json:"photoUrl"`
	Contact_Email string `json:"contactEmail"`
	Created_By    int    `json:"createdBy"`
	Author_Name   string `json:"authorName"`
	Created_At    string `json:"createdAt"`
	Updated_At    string `json:"updatedAt"`
}

func (k KeyPerson) Shape() KeyPersonResponse {
	return KeyPersonResponse{
		Key_Person_ID: k.Key_Person_ID,
		Name:          k.Name,
		Role:          k.Role,
		Bio:           k.Bio,
		Photo_URL:     k.Photo_URL,
		Contact_Email: k.Contact_Email,
		Created_By:    k.Created_By,
		Author_Name:   k.Author_Name,
		Created_At:    FormatTime(k.Datetime_Create),
		Updated_At:    FormatTime(k.Datetime_Update),
	}
}
