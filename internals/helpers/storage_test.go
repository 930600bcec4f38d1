package helper

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestValidateImageUpload(t *testing.T) {
	tests := []struct {
		name    string
		header  *multipart.FileHeader
		wantErr bool
	}{
		{"jpeg ok", fileHeader("foto.jpg", "image/jpeg", 1024), false},
		{"png ok", fileHeader("foto.png", "image/png", 4*1024*1024), false},
		{"gif ok", fileHeader("anim.gif", "image/gif", 1024), false},
		{"terlalu besar", fileHeader("besar.jpg", "image/jpeg", 6*1024*1024), true},
		{"pdf ditolak", fileHeader("dokumen.pdf", "application/pdf", 1024), true},
		{"webp ditolak di input", fileHeader("foto.webp", "image/webp", 1024), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageUpload(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := GenerateUniqueFilename("albums", "foto liburan (1).jpg")
	b := GenerateUniqueFilename("albums", "foto liburan (1).jpg")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "albums/"))
	// karakter di luar [a-zA-Z0-9.-_] harus hilang
	assert.NotContains(t, a, " ")
	assert.NotContains(t, a, "(")
	assert.True(t, strings.HasSuffix(a, ".jpg"))
}

func TestExtractSupabaseStoragePath(t *testing.T) {
	url := "https://xyz.supabase.co/storage/v1/object/public/image/albums/20240331-abc-foto.webp"
	require.Equal(t, "albums/20240331-abc-foto.webp", ExtractSupabaseStoragePath(url))

	assert.Equal(t, "", ExtractSupabaseStoragePath("https://example.com/foto.webp"))
}
