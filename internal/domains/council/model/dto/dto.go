package dto

import (
	"mime/multipart"

	"portal/internal/domains/council/model"
	"portal/shared"
	gDto "portal/shared/dto"
	gModel "portal/shared/model"
	"portal/shared/timezone"

	"github.com/google/uuid"
)

type CreateCouncilMemberRequest struct {
	Name          string                `json:"name"      validate:"required,max=255"`
	Role          string                `json:"role"      validate:"required,max=255"`
	Bio           string                `json:"bio"       validate:"omitempty"`
	DisplayOrder  *int                  `json:"order"     validate:"omitempty,min=0"`
	Thumbnail     *multipart.FileHeader `json:"thumbnail" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ThumbnailFile multipart.File        `json:"-"`
}

func (c *CreateCouncilMemberRequest) ToModel(thumbnailURL, user string) model.CouncilMember {
	order := 0
	if c.DisplayOrder != nil {
		order = *c.DisplayOrder
	}

	return model.CouncilMember{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Role:         c.Role,
		ThumbnailURL: thumbnailURL,
		Bio:          c.Bio,
		DisplayOrder: order,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCouncilMemberRequest struct {
	Name          string                `json:"name"      db:"name"          validate:"omitempty,max=255"`
	Role          string                `json:"role"      db:"role"          validate:"omitempty,max=255"`
	Bio           string                `json:"bio"       db:"bio"           validate:"omitempty"`
	DisplayOrder  *int                  `json:"order"     db:"display_order" validate:"omitempty,min=0"`
	Thumbnail     *multipart.FileHeader `json:"thumbnail" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ThumbnailFile multipart.File        `json:"-"`
}

type CouncilMemberResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	ThumbnailURL string `json:"thumbnail_url"`
	Bio          string `json:"bio"`
	DisplayOrder int    `json:"order"`
	gDto.Metadata
}

func (r *CouncilMemberResponse) FromModel(model model.CouncilMember) {
	r.ID = model.ID
	r.Name = model.Name
	r.Role = model.Role
	r.ThumbnailURL = model.ThumbnailURL
	r.Bio = model.Bio
	r.DisplayOrder = model.DisplayOrder
	r.Metadata.FromModel(model.Metadata)
}

type GetCouncilMembersResponse struct {
	Members   []CouncilMemberResponse `json:"members"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

func (g *GetCouncilMembersResponse) FromModels(models []model.CouncilMember, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Members = make([]CouncilMemberResponse, len(models))
	for i, mod := range models {
		g.Members[i].FromModel(mod)
	}
}
