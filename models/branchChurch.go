package models

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

type BranchChurch struct {
	Branch_Church_ID int       `json:"branchChurchId" db:"branch_church_id" goqu:"skipinsert"`
	Name             string    `json:"name" db:"name"`
	Address          string    `json:"address" db:"address"`
	City             string    `json:"city" db:"city"`
	Pastor_Name      string    `json:"pastorName" db:"pastor_name"`
	Phone            string    `json:"phone" db:"phone"`
	Email            string    `json:"email" db:"email"`
	Service_Times    string    `json:"serviceTimes" db:"service_times"`
	Image_URL        string    `json:"imageUrl" db:"image_url"`
	Created_By       int       `json:"createdBy" db:"created_by"`
	Author_Name      string    `json:"authorName" db:"author_name"`
	Datetime_Create  time.Time `json:"datetimeCreate" db:"datetime_create"`
	Updated_By       int       `json:"updatedBy" db:"updated_by"`
	Datetime_Update  time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type BranchChurchCreate struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Pastor_Name   string `json:"pastorName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Service_Times string `json:"serviceTimes"`
	Image_URL     string `json:"imageUrl"`
}

type BranchChurchUpdate struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	Pastor_Name   *string `json:"pastorName"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Service_Times *string `json:"serviceTimes"`
	Image_URL     *string `json:"imageUrl"`
}

func (u BranchChurchUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Name != nil {
		r["name"] = *u.Name
	}
	if u.Address != nil {
		r["address"] = *u.Address
	}
	if u.City != nil {
		r["city"] = *u.City
	}
	if u.Pastor_Name != nil {
		r["pastor_name"] = *u.Pastor_Name
	}
	if u.Phone != nil {
		r["phone"] = *u.Phone
	}
	if u.Email != nil {
		r["email"] = *u.Email
	}
	if u.Service_Times != nil {
		r["service_times"] = *u.Service_Times
	}
	if u.Image_URL != nil {
		r["image_url"] = *u.Image_URL
	}
	return r
}

type BranchChurchResponse struct {
	Branch_Church_ID int    `json:"id"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	City             string `json:"city"`
	Pastor_Name      string `json:"pastorName"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Service_Times    string `json:"serviceTimes"`
	Image_URL        string `json:"imageUrl"`
	Created_By       int    `json:"createdBy"`
	Author_Name      string `json:"authorName"`
	Created_At       string `json:"createdAt"`
	Updated_At       string `json:"updatedAt"`
}

func (b BranchChurch) Shape() BranchChurchResponse {
	return BranchChurchResponse{
		Branch_Church_ID: b.Branch_Church_ID,
		Name:             b.Name,
		Address:          b.Address,
		City:             b.City,
		Pastor_Name:      b.Pastor_Name,
		Phone:            b.Phone,
		Email:            b.Email,
		Service_Times:    b.Service_Times,
		Image_URL:        b.Image_URL,
		Created_By:       b.Created_By,
		Author_Name:      b.Author_Name,
		Created_At:       FormatTime(b.Datetime_Create),
		Updated_At:       FormatTime(b.Datetime_Update),
	}
}
