package dto

import (
	"portal/internal/domains/catalog/model"
	"portal/shared"
	gDto "portal/shared/dto"
	gModel "portal/shared/model"
	"portal/shared/slug"
	"portal/shared/timezone"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"omitempty,max=120"`
}

// ToModel derives the slug from the name when the caller leaves it blank.
func (c *CreateCategoryRequest) ToModel(user string) model.Category {
	s := c.Slug
	if s == "" {
		s = slug.Make(c.Name)
	}

	return model.Category{
		ID:   uuid.NewString(),
		Name: c.Name,
		Slug: s,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	gDto.Metadata
}

func (c *CategoryResponse) FromModel(model model.Category) {
	c.ID = model.ID
	c.Name = model.Name
	c.Slug = model.Slug
	c.Metadata.FromModel(model.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (g *GetCategoriesResponse) FromModels(models []model.Category, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		g.Categories[i].FromModel(mod)
	}
}

type CreateProgramRequest struct {
	CategoryID  string  `json:"category_id"  validate:"required,uuid"`
	Title       string  `json:"title"        validate:"required,max=200"`
	Slug        string  `json:"slug"         validate:"omitempty,max=220"`
	Level       string  `json:"level"        validate:"required,oneof=undergraduate postgraduate professional"`
	Affiliation *string `json:"affiliation"  validate:"omitempty,max=200"`
	Summary     string  `json:"summary"      validate:"required"`
	Description string  `json:"description"  validate:"required"`
	Duration    string  `json:"duration"     validate:"omitempty,max=50"`
	ExternalURL *string `json:"external_url" validate:"omitempty,url,max=500"`
	IsActive    *bool   `json:"is_active"    validate:"omitempty"`
}

// ToModel derives the slug from the title exactly once, on creation. Later
// title edits never touch it.
func (c *CreateProgramRequest) ToModel(user string) model.Program {
	s := c.Slug
	if s == "" {
		s = slug.Make(c.Title)
	}

	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	duration := c.Duration
	if duration == "" {
		duration = "12 Months"
	}

	return model.Program{
		ID:          uuid.NewString(),
		CategoryID:  c.CategoryID,
		Title:       c.Title,
		Slug:        s,
		Level:       c.Level,
		Affiliation: c.Affiliation,
		Summary:     c.Summary,
		Description: c.Description,
		Duration:    duration,
		ExternalURL: c.ExternalURL,
		IsActive:    active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateProgramRequest deliberately has no slug field; slugs are stable once
// assigned.
type UpdateProgramRequest struct {
	CategoryID  string  `db:"category_id"  json:"category_id"  validate:"omitempty,uuid"`
	Title       string  `db:"title"        json:"title"        validate:"omitempty,max=200"`
	Level       string  `db:"level"        json:"level"        validate:"omitempty,oneof=undergraduate postgraduate professional"`
	Affiliation *string `db:"affiliation"  json:"affiliation"  validate:"omitempty,max=200"`
	Summary     string  `db:"summary"      json:"summary"      validate:"omitempty"`
	Description string  `db:"description"  json:"description"  validate:"omitempty"`
	Duration    string  `db:"duration"     json:"duration"     validate:"omitempty,max=50"`
	ExternalURL *string `db:"external_url" json:"external_url" validate:"omitempty,url,max=500"`
	IsActive    *bool   `db:"is_active"    json:"is_active"    validate:"omitempty"`
}

type ProgramResponse struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Level       string  `json:"level"`
	Affiliation *string `json:"affiliation,omitempty"`
	Summary     string  `json:"summary"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	ExternalURL *string `json:"external_url,omitempty"`
	IsActive    bool    `json:"is_active"`
	gDto.Metadata
}

func (p *ProgramResponse) FromModel(model model.Program) {
	p.ID = model.ID
	p.CategoryID = model.CategoryID
	p.Title = model.Title
	p.Slug = model.Slug
	p.Level = model.Level
	p.Affiliation = model.Affiliation
	p.Summary = model.Summary
	p.Description = model.Description
	p.Duration = model.Duration
	p.ExternalURL = model.ExternalURL
	p.IsActive = model.IsActive
	p.Metadata.FromModel(model.Metadata)
}

type GetProgramsResponse struct {
	Programs  []ProgramResponse `json:"programs"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetProgramsResponse) FromModels(models []model.Program, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Programs = make([]ProgramResponse, len(models))
	for i, mod := range models {
		g.Programs[i].FromModel(mod)
	}
}
