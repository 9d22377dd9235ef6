package model

import "portal/shared/model"

const (
	CategoryTableName  = "categories"
	CategoryEntityName = "category"

	ProgramTableName  = "programs"
	ProgramEntityName = "program"

	FieldID          = "id"
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldCategoryID  = "category_id"
	FieldTitle       = "title"
	FieldLevel       = "level"
	FieldAffiliation = "affiliation"
	FieldSummary     = "summary"
	FieldDescription = "description"
	FieldDuration    = "duration"
	FieldExternalURL = "external_url"
	FieldIsActive    = "is_active"
)

// Program levels.
const (
	LevelUndergraduate = "undergraduate"
	LevelPostgraduate  = "postgraduate"
	LevelProfessional  = "professional"
)

type Category struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
	model.Metadata
}

type Program struct {
	ID          string  `db:"id"`
	CategoryID  string  `db:"category_id"`
	Title       string  `db:"title"`
	Slug        string  `db:"slug"`
	Level       string  `db:"level"`
	Affiliation *string `db:"affiliation"`
	Summary     string  `db:"summary"`
	Description string  `db:"description"`
	Duration    string  `db:"duration"`
	ExternalURL *string `db:"external_url"`
	IsActive    bool    `db:"is_active"`
	model.Metadata
}
