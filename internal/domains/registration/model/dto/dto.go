package dto

import (
	"mime/multipart"

	"portal/internal/domains/registration/model"
	"portal/shared"
	gDto "portal/shared/dto"
	gModel "portal/shared/model"
	"portal/shared/timezone"

	"github.com/google/uuid"
)

type CreateRegistrationRequest struct {
	FullName         string                `json:"full_name"         validate:"required,max=255"`
	Email            string                `json:"email"             validate:"required,email"`
	PhoneNumber      string                `json:"phone_number"      validate:"required,max=20"`
	ProgramID        string                `json:"program_id"        validate:"required,uuid"`
	RegistrationType string                `json:"registration_type" validate:"omitempty,oneof=regular resit"`
	StudyMonth       string                `json:"study_month"       validate:"required,max=20"`
	PaymentProof     *multipart.FileHeader `json:"payment_proof"     validate:"omitempty,mimetypes=application/pdf image/png image/jpg image/jpeg,maxfilesize=5"`
	PaymentProofFile multipart.File        `json:"-"`
}

func (c *CreateRegistrationRequest) ToModel(proofURL string) model.CourseRegistration {
	registrationType := c.RegistrationType
	if registrationType == "" {
		registrationType = model.TypeRegular
	}

	return model.CourseRegistration{
		ID:               uuid.NewString(),
		FullName:         c.FullName,
		Email:            c.Email,
		PhoneNumber:      c.PhoneNumber,
		ProgramID:        c.ProgramID,
		RegistrationType: registrationType,
		StudyMonth:       c.StudyMonth,
		PaymentProof:     proofURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  c.FullName,
			ModifiedBy: c.FullName,
		},
	}
}

type RegistrationResponse struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`
	ProgramID        string `json:"program_id"`
	RegistrationType string `json:"registration_type"`
	StudyMonth       string `json:"study_month"`
	PaymentProof     string `json:"payment_proof"`
	gDto.Metadata
}

func (r *RegistrationResponse) FromModel(model model.CourseRegistration) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.PhoneNumber = model.PhoneNumber
	r.ProgramID = model.ProgramID
	r.RegistrationType = model.RegistrationType
	r.StudyMonth = model.StudyMonth
	r.PaymentProof = model.PaymentProof
	r.Metadata.FromModel(model.Metadata)
}

type GetRegistrationsResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (g *GetRegistrationsResponse) FromModels(models []model.CourseRegistration, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Registrations = make([]RegistrationResponse, len(models))
	for i, mod := range models {
		g.Registrations[i].FromModel(mod)
	}
}
