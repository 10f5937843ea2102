package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFile_NeedsUpload(t *testing.T) {
	assert.False(t, FileID("CAACAgIAAxkBAAO2").NeedsUpload())
	assert.False(t, FileURL("https://example.com/cat.png").NeedsUpload())
	assert.True(t, FileReader("cat.png", strings.NewReader("png")).NeedsUpload())

	var nilFile *InputFile
	assert.False(t, nilFile.NeedsUpload())
}

func TestInputFile_Ref(t *testing.T) {
	assert.Equal(t, "CAACAgIAAxkBAAO2", FileID("CAACAgIAAxkBAAO2").Ref())
	assert.Equal(t, "https://example.com/cat.png", FileURL("https://example.com/cat.png").Ref())

	f := FileReader("cat.png", strings.NewReader("png"))
	assert.Empty(t, f.Ref())

	f.AttachName = "photo"
	assert.Equal(t, "attach://photo", f.Ref())
}

func TestInputFile_MarshalJSON(t *testing.T) {
	got, err := Marshal(FileID("CAACAgIAAxkBAAO2"))
	require.NoError(t, err)
	assert.Equal(t, `"CAACAgIAAxkBAAO2"`, string(got))

	attached := &InputFile{Name: "cat.png", Reader: strings.NewReader("png"), AttachName: "photo"}
	got, err = Marshal(attached)
	require.NoError(t, err)
	assert.Equal(t, `"attach://photo"`, string(got))
}

// ── UploadFiles wiring ───────────────────────────────────────────────────────

func TestSendPhotoParams_UploadFiles(t *testing.T) {
	upload := &SendPhotoParams{
		ChatID: ChatInt(1),
		Photo:  FileReader("cat.png", strings.NewReader("png")),
	}
	files := upload.UploadFiles()
	require.Len(t, files, 1)
	assert.Same(t, upload.Photo, files["photo"])
	assert.Equal(t, "photo", upload.Photo.AttachName)

	byID := &SendPhotoParams{ChatID: ChatInt(1), Photo: FileID("CAACAg")}
	assert.Empty(t, byID.UploadFiles())
}

func TestSendDocumentParams_UploadFiles_WithThumb(t *testing.T) {
	params := &SendDocumentParams{
		ChatID:   ChatInt(1),
		Document: FileReader("report.pdf", strings.NewReader("pdf")),
		Thumb:    FileReader("thumb.jpg", strings.NewReader("jpg")),
	}
	files := params.UploadFiles()
	require.Len(t, files, 2)
	assert.Equal(t, "document", params.Document.AttachName)
	assert.Equal(t, "thumb", params.Thumb.AttachName)
}

func TestSendMediaGroupParams_UploadFiles(t *testing.T) {
	params := &SendMediaGroupParams{
		ChatID: ChatInt(1),
		Media: []InputMedia{
			&InputMediaPhoto{Type: "photo", Media: FileReader("a.png", strings.NewReader("a"))},
			&InputMediaPhoto{Type: "photo", Media: FileID("CAACAg")},
			&InputMediaVideo{
				Type:  "video",
				Media: FileReader("b.mp4", strings.NewReader("b")),
				Thumb: FileReader("b.jpg", strings.NewReader("t")),
			},
		},
	}

	files := params.UploadFiles()
	require.Len(t, files, 3)
	assert.Contains(t, files, "file-0")
	assert.Contains(t, files, "file-2")
	assert.Contains(t, files, "thumb-2")
	assert.NotContains(t, files, "file-1")

	// Marshaled media must now carry attach:// references for the uploads.
	body, err := Marshal(params.Media)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"attach://file-0"`)
	assert.Contains(t, string(body), `"CAACAg"`)
	assert.Contains(t, string(body), `"attach://thumb-2"`)
}
