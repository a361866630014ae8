package models

import "time"

// Webinar is a scheduled group session hosted by an expert.
type Webinar struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Host        string    `bson:"host" json:"host"`
	Trait       string    `bson:"trait" json:"trait"` // topic label, e.g. "anxiety"
	Date        time.Time `bson:"date" json:"date"`
	Time        string    `bson:"time" json:"time"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	MeetingLink string    `bson:"meetingLink" json:"meetingLink"`
	CreatedBy   string    `bson:"createdBy" json:"createdBy"`
	Attendees   []string  `bson:"attendees" json:"attendees"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// WebinarDetail attaches the creator summary to a webinar read.
type WebinarDetail struct {
	Webinar `bson:",inline"`
	Creator *UserSummary `bson:"creator,omitempty" json:"creator,omitempty"`
}
