package models

import "time"

// Counselor is a directory entry for a bookable counselor.
// Counselors are never hard-deleted; IsActive acts as a tombstone so
// historical appointments keep resolving.
type Counselor struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	Specialties    []string  `bson:"specialties" json:"specialties"`
	Availability   []string  `bson:"availability" json:"availability"` // subset of weekday names
	Languages      []string  `bson:"languages" json:"languages"`
	Institution    string    `bson:"institution" json:"institution"`
	ProfilePic     string    `bson:"profilePic" json:"profilePic"`
	Bio            string    `bson:"bio" json:"bio"`
	Qualifications []string  `bson:"qualifications" json:"qualifications"`
	Experience     int       `bson:"experience" json:"experience"` // years
	SessionFee     float64   `bson:"sessionFee" json:"sessionFee"`
	IsActive       bool      `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CounselorSummary is the subset of counselor fields attached to appointment reads.
type CounselorSummary struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Email       string   `bson:"email" json:"email"`
	Institution string   `bson:"institution" json:"institution"`
	Specialties []string `bson:"specialties" json:"specialties,omitempty"`
	ProfilePic  string   `bson:"profilePic" json:"profilePic,omitempty"`
	SessionFee  float64  `bson:"sessionFee" json:"sessionFee"`
}
