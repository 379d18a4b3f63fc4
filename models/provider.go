package models

import "time"

// ServiceCategories is the enumerated set a provider profile may be filed under.
var ServiceCategories = []string{
	"Plumbing",
	"Electrical",
	"Cleaning",
	"Gardening",
	"Home Repair",
	"Painting",
	"Moving",
	"Tutoring",
	"Pet Care",
	"Beauty & Wellness",
	"IT & Tech Support",
	"Child Care",
	"Cooking & Baking",
	"Event Planning",
	"Photography",
	"Legal Services",
	"Accounting",
}

// ValidCategory reports whether c is one of the enumerated service categories.
// Matching is case-sensitive.
func ValidCategory(c string) bool {
	for _, known := range ServiceCategories {
		if known == c {
			return true
		}
	}
	return false
}

// ProviderProfile is the public-facing profile a provider maintains.
// Its ID equals the owning user's ID.
type ProviderProfile struct {
	ID                string    `bson:"id" json:"id"`
	DisplayName       string    `bson:"displayName" json:"displayName"`
	Bio               string    `bson:"bio" json:"bio,omitempty"`
	Phone             string    `bson:"phone" json:"phone,omitempty"`
	Address           string    `bson:"address" json:"address,omitempty"`
	City              string    `bson:"city" json:"city,omitempty"`
	State             string    `bson:"state" json:"state,omitempty"`
	Zip               string    `bson:"zip" json:"zip,omitempty"`
	Category          string    `bson:"category" json:"category,omitempty"`
	HourlyRate        float64   `bson:"hourlyRate" json:"hourlyRate,omitempty"`
	YearsOfExperience int       `bson:"yearsOfExperience" json:"yearsOfExperience,omitempty"`
	PhotoURL          string    `bson:"photoURL" json:"photoURL,omitempty"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RatingSummary is the aggregate over a subject's reviews, recomputed on read.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// ProviderSummary is a profile joined with its computed rating aggregate,
// as returned by provider listings.
type ProviderSummary struct {
	ProviderProfile `bson:",inline"`
	Rating          RatingSummary `json:"rating"`
}
