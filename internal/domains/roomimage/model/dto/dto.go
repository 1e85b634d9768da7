package dto

import (
	"frontdesk/internal/domains/roomimage/model"
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

func (u *UploadImageRequest) ObjectName() string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(u.Image.Filename))
}

func (u *UploadImageRequest) ToModel(roomID, objectKey, url, user string) model.Image {
	return model.Image{
		ID:          uuid.NewString(),
		RoomID:      roomID,
		ImageURL:    url,
		ObjectKey:   objectKey,
		Description: u.Description,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}
}

type ImageResponse struct {
	ID          string `json:"id"`
	RoomID      string `json:"room_id"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *ImageResponse) FromModel(m model.Image) {
	r.ID = m.ID
	r.RoomID = m.RoomID
	r.ImageURL = m.ImageURL
	r.Description = m.Description
	r.Metadata.FromModel(m.Metadata)
}

type GetRoomImagesResponse struct {
	Images []ImageResponse `json:"images"`
}

func (r *GetRoomImagesResponse) FromModels(models []model.Image) {
	r.Images = make([]ImageResponse, len(models))
	for i, m := range models {
		r.Images[i].FromModel(m)
	}
}

func RoomFilter(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomID, Operator: gDto.FilterOperatorEq, Value: roomID, Table: model.TableName},
		},
	}
}

// ImageFilter matches an image only under the room it belongs to.
func ImageFilter(roomID, imageID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: imageID, Table: model.TableName},
			gDto.Filter{Field: model.FieldRoomID, Operator: gDto.FilterOperatorEq, Value: roomID, Table: model.TableName},
		},
	}
}
