package dto

import (
	"frontdesk/internal/domains/gallery/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type UploadImageRequest struct {
	Image       *multipart.FileHeader `json:"image"       swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
	Description string                `json:"description" validate:"omitempty,max=500"`
}

// ObjectName is a fresh uuid keeping the extension of the uploaded file.
func (u *UploadImageRequest) ObjectName() string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(u.Image.Filename))
}

func (u *UploadImageRequest) ToModel(objectKey, url, user string) model.Image {
	return model.Image{
		ID:          uuid.NewString(),
		ImageURL:    url,
		ObjectKey:   objectKey,
		Description: u.Description,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

type BulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}

type ImageResponse struct {
	ID          string `json:"id"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *ImageResponse) FromModel(m model.Image) {
	r.ID = m.ID
	r.ImageURL = m.ImageURL
	r.Description = m.Description
	r.Metadata.FromModel(m.Metadata)
}

type GetImagesResponse struct {
	Images    []ImageResponse `json:"images"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetImagesResponse) FromModels(models []model.Image, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Images = make([]ImageResponse, len(models))
	for i, m := range models {
		r.Images[i].FromModel(m)
	}
}

func SearchFilter(search string) gDto.FilterGroup {
	if search == "" {
		return gDto.FilterGroup{}
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldDescription, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
		},
	}
}

func IDsFilter(ids []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorIn, Value: ids, Table: model.TableName},
		},
	}
}
