package persistent

import (
	"encoding/json"

	"photoshare/internal/entity"
	"photoshare/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Password:      m.Password,
		Role:          entity.UserRole(m.Role),
		Avatar:        m.Avatar,
		Bio:           m.Bio,
		PhotosCount:   m.PhotosCount,
		LikesReceived: m.LikesReceived,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Password:      e.Password,
		Role:          string(e.Role),
		Avatar:        e.Avatar,
		Bio:           e.Bio,
		PhotosCount:   e.PhotosCount,
		LikesReceived: e.LikesReceived,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToPhotoEntity(m *model.PhotoModel) *entity.Photo {
	if m == nil {
		return nil
	}

	photo := &entity.Photo{
		ID:        m.ID,
		Title:     m.Title,
		Caption:   m.Caption,
		ImageURL:  m.ImageURL,
		BlobName:  m.BlobName,
		Location:  m.Location,
		People:    []string(m.People),
		Tags:      []string(m.Tags),
		Category:  m.Category,
		Status:    entity.PhotoStatus(m.Status),
		CreatorID: m.CreatorID,
		Creator: entity.UserSnapshot{
			ID:     m.CreatorID,
			Name:   m.CreatorName,
			Avatar: m.CreatorAvatar,
		},
		Likes:       m.Likes,
		Rating:      m.Rating,
		RatingSum:   m.RatingSum,
		RatingCount: m.RatingCount,
		Comments:    m.Comments,
		Views:       m.Views,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if len(m.AIAnalysis) > 0 {
		var analysis entity.AIAnalysis
		if err := json.Unmarshal(m.AIAnalysis, &analysis); err == nil {
			photo.AIAnalysis = &analysis
		}
	}

	return photo
}

func ToPhotoModel(e *entity.Photo) *model.PhotoModel {
	if e == nil {
		return nil
	}

	photo := &model.PhotoModel{
		ID:            e.ID,
		CreatorID:     e.CreatorID,
		CreatorName:   e.Creator.Name,
		CreatorAvatar: e.Creator.Avatar,
		Title:         e.Title,
		Caption:       e.Caption,
		Location:      e.Location,
		People:        e.People,
		Tags:          e.Tags,
		Category:      e.Category,
		BlobName:      e.BlobName,
		ImageURL:      e.ImageURL,
		Status:        string(e.Status),
		Likes:         e.Likes,
		RatingSum:     e.RatingSum,
		RatingCount:   e.RatingCount,
		Rating:        e.Rating,
		Comments:      e.Comments,
		Views:         e.Views,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}

	if e.AIAnalysis != nil {
		if raw, err := json.Marshal(e.AIAnalysis); err == nil {
			photo.AIAnalysis = raw
		}
	}

	return photo
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:      m.ID,
		PhotoID: m.PhotoID,
		User: entity.UserSnapshot{
			ID:     m.UserID,
			Name:   m.UserName,
			Avatar: m.UserAvatar,
		},
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:         e.ID,
		PhotoID:    e.PhotoID,
		UserID:     e.User.ID,
		UserName:   e.User.Name,
		UserAvatar: e.User.Avatar,
		Text:       e.Text,
		CreatedAt:  e.CreatedAt,
	}
}
