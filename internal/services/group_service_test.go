package services

import (
	"testing"
	"time"

	"Showcase/internal/helpers"
	"Showcase/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mediaFiles(names ...string) []helpers.MediaFile {
	files := make([]helpers.MediaFile, 0, len(names))
	for _, name := range names {
		files = append(files, helpers.MediaFile{Name: name, Size: 1, ModTime: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)})
	}
	return files
}

func TestAssemble_GroupsAndIndividuals(t *testing.T) {
	metadata := models.Metadata{
		"a.jpg": imageRecord("group-1", 1),
		"b.jpg": imageRecord("group-1", 0),
		"c.jpg": imageRecord("", models.DefaultOrder),
		"link-1-aaaaaaaa": {
			Category: "clips",
			Type:     models.TypeVideo,
			GroupID:  "group-1",
			Order:    models.DefaultOrder,
			Link:     &models.ExternalLink{URL: "https://example.com/v", EmbedURL: "https://example.com/v", VideoType: models.VideoTypeUnknown},
		},
		"gone.jpg": imageRecord("", 0),
	}
	metadata["b.jpg"].Description = "holiday"

	individuals, groups := Assemble(metadata, mediaFiles("a.jpg", "b.jpg", "c.jpg", "untracked.mp4"))

	require.Len(t, individuals, 2)
	assert.Equal(t, "c.jpg", individuals[0].ID)
	assert.Equal(t, "untracked.mp4", individuals[1].ID)
	assert.Equal(t, models.TypeVideo, individuals[1].Record.Type)
	assert.Equal(t, models.DefaultCategory, individuals[1].Record.Category)
	assert.Equal(t, "2024-02-01T00:00:00.000Z", individuals[1].Record.UploadDate)

	require.Len(t, groups, 1)
	group := groups[0]
	assert.Equal(t, "group-1", group.ID)
	require.Len(t, group.Members, 3)
	assert.Equal(t, "b.jpg", group.Members[0].ID)
	assert.Equal(t, "a.jpg", group.Members[1].ID)
	assert.Equal(t, "link-1-aaaaaaaa", group.Members[2].ID)
	assert.Equal(t, "holiday", group.Description)
	assert.Equal(t, "b.jpg", group.Title.ID)

	assert.Len(t, metadata, 5)
	assert.Nil(t, metadata["untracked.mp4"])
}

func TestAssemble_TitleResolution(t *testing.T) {
	metadata := models.Metadata{
		"a.jpg": imageRecord("group-1", 0),
		"b.jpg": imageRecord("group-1", 1),
	}
	metadata["a.jpg"].TitleImageID = "b.jpg"
	metadata["b.jpg"].TitleImageID = "b.jpg"

	_, groups := Assemble(metadata, mediaFiles("a.jpg", "b.jpg"))
	require.Len(t, groups, 1)
	assert.Equal(t, "b.jpg", groups[0].Title.ID)

	metadata["a.jpg"].TitleImageID = "deleted.jpg"
	metadata["b.jpg"].TitleImageID = "deleted.jpg"
	_, groups = Assemble(metadata, mediaFiles("a.jpg", "b.jpg"))
	assert.Equal(t, "a.jpg", groups[0].Title.ID)
}

func TestGroupService_ListSummarizesGroups(t *testing.T) {
	env := newTestEnv(t)
	env.writeUpload(t, "a.jpg", jpegBytes)
	env.writeUpload(t, "b.jpg", jpegBytes)
	env.writeUpload(t, "c.jpg", jpegBytes)
	metadata := models.Metadata{
		"a.jpg": imageRecord("group-1", 0),
		"b.jpg": imageRecord("group-1", 1),
		"c.jpg": imageRecord("", models.DefaultOrder),
	}
	metadata["c.jpg"].UploadDate = "2024-03-01T00:00:00.000Z"
	require.NoError(t, env.repo.Save(metadata))

	listing, err := env.groups.List()
	require.NoError(t, err)
	require.Len(t, listing, 2)

	assert.Equal(t, "c.jpg", listing[0].ID)
	assert.Equal(t, "/uploads/c.jpg", listing[0].URL)
	assert.False(t, listing[0].IsGroup)

	assert.Equal(t, "group-1", listing[1].ID)
	assert.True(t, listing[1].IsGroup)
	assert.Equal(t, 2, listing[1].FileCount)
	assert.Equal(t, "a.jpg", listing[1].TitleImageID)
	assert.Equal(t, "/uploads/a.jpg", listing[1].URL)
}

func TestGroupService_GetGroupNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.groups.GetGroup("group-none")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGroupService_SetTitle(t *testing.T) {
	env := newTestEnv(t)
	env.writeUpload(t, "a.jpg", jpegBytes)
	env.writeUpload(t, "b.jpg", jpegBytes)
	env.writeUpload(t, "c.jpg", jpegBytes)
	require.NoError(t, env.repo.Save(models.Metadata{
		"a.jpg": imageRecord("group-1", 0),
		"b.jpg": imageRecord("group-1", 1),
		"c.jpg": imageRecord("group-2", 0),
	}))

	require.NoError(t, env.groups.SetTitle("group-1", "b.jpg"))
	group, err := env.groups.GetGroup("group-1")
	require.NoError(t, err)
	assert.Equal(t, "b.jpg", group.TitleImageID)
	assert.False(t, group.Files[0].IsTitle)
	assert.True(t, group.Files[1].IsTitle)

	assert.ErrorIs(t, env.groups.SetTitle("group-1", "c.jpg"), ErrValidation)
	assert.ErrorIs(t, env.groups.SetTitle("group-1", ""), ErrValidation)
	assert.ErrorIs(t, env.groups.SetTitle("group-9", "a.jpg"), ErrNotFound)
	assert.Empty(t, env.repo.Load()["c.jpg"].TitleImageID)
}

func TestGroupService_SetOrder(t *testing.T) {
	env := newTestEnv(t)
	env.writeUpload(t, "a.jpg", jpegBytes)
	env.writeUpload(t, "b.jpg", jpegBytes)
	env.writeUpload(t, "c.jpg", jpegBytes)
	env.writeUpload(t, "x.jpg", jpegBytes)
	require.NoError(t, env.repo.Save(models.Metadata{
		"a.jpg": imageRecord("group-1", 0),
		"b.jpg": imageRecord("group-1", 1),
		"c.jpg": imageRecord("group-1", 2),
		"x.jpg": imageRecord("group-2", 5),
	}))

	updated, err := env.groups.SetOrder("group-1", []string{"c.jpg", "unknown.jpg", "x.jpg", "a.jpg"})
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	metadata := env.repo.Load()
	assert.Equal(t, 0, metadata["c.jpg"].Order)
	assert.Equal(t, 3, metadata["a.jpg"].Order)
	assert.Equal(t, 1, metadata["b.jpg"].Order)
	assert.Equal(t, 5, metadata["x.jpg"].Order)

	group, err := env.groups.GetGroup("group-1")
	require.NoError(t, err)
	ids := []string{group.Files[0].ID, group.Files[1].ID, group.Files[2].ID}
	assert.Equal(t, []string{"c.jpg", "b.jpg", "a.jpg"}, ids)

	_, err = env.groups.SetOrder("group-9", []string{"a.jpg"})
	assert.ErrorIs(t, err, ErrNotFound)
}
