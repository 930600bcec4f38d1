package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxUploadBytes = 5 * 1024 * 1024 // 5MB per file
	maxImageSide   = 1600            // downscale sisi terpanjang
	webpQuality    = 80
)

type ImageMeta struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	SizeBytes    int    `json:"sizeBytes"`
	OriginalName string `json:"originalName"`
	ContentType  string `json:"contentType"`
}

// ValidateImageUpload menolak file di luar JPG/PNG/GIF atau > 5MB
// sebelum ada byte yang diproses.
func ValidateImageUpload(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > maxUploadBytes {
		return fmt.Errorf("ukuran file %s melebihi 5MB", fileHeader.Filename)
	}
	ct := fileHeader.Header.Get("Content-Type")
	switch ct {
	case "image/jpeg", "image/png", "image/gif":
		return nil
	}
	return fmt.Errorf("tipe file %s tidak didukung, hanya JPG/PNG/GIF", fileHeader.Filename)
}

// ProcessImage membaca upload, decode, kecilkan bila perlu, lalu
// encode ulang ke WebP supaya storage hemat.
func ProcessImage(fileHeader *multipart.FileHeader) ([]byte, ImageMeta, error) {
	var meta ImageMeta

	src, err := fileHeader.Open()
	if err != nil {
		return nil, meta, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return nil, meta, fmt.Errorf("gagal membaca file gambar: %w", err)
	}

	img, err := decodeImage(all, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		return nil, meta, err
	}

	img = imaging.Fit(img, maxImageSide, maxImageSide, imaging.CatmullRom)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, meta, fmt.Errorf("gagal encode webp: %w", err)
	}

	b := img.Bounds()
	meta = ImageMeta{
		Width:        b.Dx(),
		Height:       b.Dy(),
		SizeBytes:    buf.Len(),
		OriginalName: fileHeader.Filename,
		ContentType:  "image/webp",
	}
	return buf.Bytes(), meta, nil
}

func decodeImage(data []byte, contentType, filename string) (image.Image, error) {
	switch contentType {
	case "image/jpeg":
		return jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		return png.Decode(bytes.NewReader(data))
	case "image/gif":
		return gif.Decode(bytes.NewReader(data))
	}
	// fallback by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(data))
	case ".png":
		return png.Decode(bytes.NewReader(data))
	case ".gif":
		return gif.Decode(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("format tidak didukung: %s / %s", contentType, filename)
}

// UploadImageToSupabase memproses lalu mengunggah satu gambar,
// mengembalikan URL publik + metadata hasil proses.
func UploadImageToSupabase(folder string, fileHeader *multipart.FileHeader) (string, ImageMeta, error) {
	data, meta, err := ProcessImage(fileHeader)
	if err != nil {
		return "", meta, err
	}

	base := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	filename := GenerateUniqueFilename(folder, base+".webp")

	if err := UploadToSupabase("image", filename, "image/webp", bytes.NewBuffer(data)); err != nil {
		return "", meta, fmt.Errorf("upload gambar gagal: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/image/%s",
		os.Getenv("SUPABASE_PROJECT_URL"),
		url.PathEscape(filename),
	)
	return publicURL, meta, nil
}

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, sanitizeFilename(originalFilename))
}

func UploadToSupabase(bucket, filename, contentType string, data *bytes.Buffer) error {
	supabaseURL := os.Getenv("SUPABASE_PROJECT_URL")
	supabaseKey := os.Getenv("SUPABASE_SERVICE_ROLE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL atau SUPABASE_SERVICE_ROLE_KEY belum diset")
	}

	target := fmt.Sprintf("%s/storage/v1/object/%s/%s", supabaseURL, bucket, filename)

	req, err := http.NewRequest(http.MethodPut, target, data)
	if err != nil {
		return fmt.Errorf("gagal membuat request upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("gagal mengirim request upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// ✅ Hapus file dari Supabase
func DeleteFromSupabase(bucket, path string) error {
	target := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		os.Getenv("SUPABASE_PROJECT_URL"), bucket, path)

	req, err := http.NewRequest(http.MethodDelete, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+os.Getenv("SUPABASE_SERVICE_ROLE_KEY"))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// ✅ Ambil path dari URL publik
func ExtractSupabaseStoragePath(fullURL string) string {
	parts := strings.Split(fullURL, "/storage/v1/object/public/image/")
	if len(parts) == 2 {
		return parts[1]
	}
	return ""
}
