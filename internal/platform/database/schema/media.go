// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns used by the SQL repositories so
// queries never hard-code identifiers.
package schema

// CatalogMediaTable represents the 'catalog.media' table.
type CatalogMediaTable struct {
	Table          string
	ID             string
	Type           string
	Title          string
	Year           string
	CoverImage     string
	Rating         string
	Tags           string
	Description    string
	Creator        string
	ReviewText     string
	AdditionalInfo string
	DateAdded      string
	Position       string
}

// CatalogMedia is the schema definition for catalog.media.
var CatalogMedia = CatalogMediaTable{
	Table:          "catalog.media",
	ID:             "id",
	Type:           "type",
	Title:          "title",
	Year:           "year",
	CoverImage:     "coverimage",
	Rating:         "rating",
	Tags:           "tags",
	Description:    "description",
	Creator:        "creator",
	ReviewText:     "reviewtext",
	AdditionalInfo: "additionalinfo",
	DateAdded:      "dateadded",
	Position:       "position",
}

// Columns lists the selectable columns in scan order.
func (t CatalogMediaTable) Columns() []string {
	return []string{
		t.ID, t.Type, t.Title, t.Year, t.CoverImage, t.Rating, t.Tags,
		t.Description, t.Creator, t.ReviewText, t.AdditionalInfo, t.DateAdded,
	}
}

// CatalogReviewTable represents the 'catalog.review' table.
type CatalogReviewTable struct {
	Table        string
	ID           string
	MediaID      string
	MediaType    string
	Rating       string
	ReviewText   string
	Tags         string
	ReviewerID   string
	DateReviewed string
}

// CatalogReview is the schema definition for catalog.review.
var CatalogReview = CatalogReviewTable{
	Table:        "catalog.review",
	ID:           "id",
	MediaID:      "mediaid",
	MediaType:    "mediatype",
	Rating:       "rating",
	ReviewText:   "reviewtext",
	Tags:         "tags",
	ReviewerID:   "reviewerid",
	DateReviewed: "datereviewed",
}
