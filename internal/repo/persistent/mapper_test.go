package persistent

import (
	"testing"

	"photoshare/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoMapperCarriesAnalysis(t *testing.T) {
	photo := &entity.Photo{
		ID:    "photo-1",
		Title: "Morning fog",
		Tags:  []string{"fog", "mountains"},
		Creator: entity.UserSnapshot{
			ID:     "creator-1",
			Name:   "Jane",
			Avatar: "a.png",
		},
		CreatorID: "creator-1",
		AIAnalysis: &entity.AIAnalysis{
			Tags:        []string{"fog", "mountains"},
			Description: "fog over a valley",
			Categories:  []string{"outdoor_mountain"},
		},
	}

	m := ToPhotoModel(photo)
	require.NotEmpty(t, m.AIAnalysis)
	assert.Equal(t, "Jane", m.CreatorName)

	back := ToPhotoEntity(m)
	require.NotNil(t, back.AIAnalysis)
	assert.Equal(t, "fog over a valley", back.AIAnalysis.Description)
	assert.Equal(t, []string{"fog", "mountains"}, back.Tags)
	assert.Equal(t, photo.Creator, back.Creator)
}

func TestPhotoMapperWithoutAnalysis(t *testing.T) {
	photo := &entity.Photo{ID: "photo-1", Title: "Bare"}

	m := ToPhotoModel(photo)
	assert.Empty(t, m.AIAnalysis)

	back := ToPhotoEntity(m)
	assert.Nil(t, back.AIAnalysis)
}

func TestCommentMapperSnapshot(t *testing.T) {
	comment := &entity.Comment{
		ID:      "comment-1",
		PhotoID: "photo-1",
		User:    entity.UserSnapshot{ID: "user-1", Name: "Jane", Avatar: "a.png"},
		Text:    "Lovely",
	}

	m := ToCommentModel(comment)
	assert.Equal(t, "user-1", m.UserID)
	assert.Equal(t, "Jane", m.UserName)

	back := ToCommentEntity(m)
	assert.Equal(t, comment.User, back.User)
}

func TestNilMappers(t *testing.T) {
	assert.Nil(t, ToPhotoEntity(nil))
	assert.Nil(t, ToPhotoModel(nil))
	assert.Nil(t, ToUserEntity(nil))
	assert.Nil(t, ToUserModel(nil))
	assert.Nil(t, ToCommentEntity(nil))
	assert.Nil(t, ToCommentModel(nil))
}
