package model

import (
	gModel "portal/shared/model"
)

const (
	EntityName = "council member"
	TableName  = "council_members"

	FieldID        = "id"
	FieldName      = "name"
	FieldRole      = "role"
	FieldThumbnail = "thumbnail"
	FieldBio       = "bio"
	FieldOrder     = "display_order"
)

// CouncilMember is a governing council profile shown on the public site,
// sorted by display order.
type CouncilMember struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Role         string `db:"role"`
	ThumbnailURL string `db:"thumbnail"`
	Bio          string `db:"bio"`
	DisplayOrder int    `db:"display_order"`
	gModel.Metadata
}
