package models

import "time"

// Attraction is a place of interest in the catalog. The planner only ever
// reads snapshots of these; mutation happens through the admin endpoints.
type Attraction struct {
	AttractionID string      `json:"attractionid" bson:"attractionid"`
	CategoryID   string      `json:"categoryid" bson:"categoryid"`
	Name         string      `json:"name" bson:"name"`
	Description  string      `json:"description" bson:"description"`
	Address      string      `json:"address" bson:"address"`
	Location     Coordinates `json:"location" bson:"location,omitempty"`
	Images       []string    `json:"images" bson:"images"`
	VideoURL     string      `json:"video_url,omitempty" bson:"video_url,omitempty"`
	Banner       string      `json:"banner,omitempty" bson:"banner,omitempty"`
	// Average visit duration in minutes; drives the auto-scheduler.
	AvgSpendTime int        `json:"avgSpendTime" bson:"avg_spend_time"`
	Buses        []string   `json:"buses" bson:"buses"`
	CreatedBy    string     `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt    time.Time  `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
	DeletedAt    *time.Time `json:"-" bson:"deletedAt,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
}

// Category groups attractions for filtering only; the planner never
// mutates these.
type Category struct {
	CategoryID  string `json:"categoryid" bson:"categoryid"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
}
