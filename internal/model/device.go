package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Device represents one catalog entry. The collection is read-only for this
// service; population happens through cmd/seeder or external imports.
type Device struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Brand        string             `json:"brand" bson:"brand"`
	Model        string             `json:"model" bson:"model"`
	ImageURL     string             `json:"imageUrl" bson:"imageUrl"`
	ReleaseDate  string             `json:"releaseDate" bson:"releaseDate"` // free-form text, possibly unparsable
	MarketStatus bool               `json:"marketStatus" bson:"marketStatus"`
	Display      string             `json:"display" bson:"display"`
	Processor    string             `json:"processor" bson:"processor"`
	FrontCamera  string             `json:"frontCamera" bson:"frontCamera"`
	RearCamera   string             `json:"rearCamera" bson:"rearCamera"`
	RAM          string             `json:"ram" bson:"ram"`
	Storage      string             `json:"storage" bson:"storage"`
	OS           string             `json:"os" bson:"os"`
}

// DeviceSummary is the dashboard projection of a Device
type DeviceSummary struct {
	ID          primitive.ObjectID `json:"_id"`
	Model       string             `json:"model"`
	ImageURL    string             `json:"imageUrl"`
	Brand       string             `json:"brand"`
	ReleaseDate string             `json:"releaseDate"` // formatted as "DD Month YYYY"
}

// DeviceSpec carries client-supplied device attributes for recommendations
type DeviceSpec struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Display     string `json:"display"`
	Processor   string `json:"processor"`
	FrontCamera string `json:"frontCamera"`
	RearCamera  string `json:"rearCamera"`
	RAM         string `json:"ram"`
	Storage     string `json:"storage"`
	OS          string `json:"os"`
}
