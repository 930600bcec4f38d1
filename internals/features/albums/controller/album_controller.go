package controller

import (
	"encoding/json"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/albums/dto"
	"gerejaku_backend/internals/features/albums/model"
	helper "gerejaku_backend/internals/helpers"
)

type AlbumController struct {
	DB *gorm.DB
}

func NewAlbumController(db *gorm.DB) *AlbumController {
	return &AlbumController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/albums/get
func (ctrl *AlbumController) GetAll(c *fiber.Ctx) error {
	var albums []model.AlbumModel
	if err := ctrl.DB.Preload("Images").Order("album_created_at DESC").Find(&albums).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data album")
	}
	return helper.Success(c, dto.ToAlbumResponseList(albums))
}

/* ===================== DETAIL ===================== */
// GET /api/albums/:id
func (ctrl *AlbumController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID album tidak valid")
	}

	var album model.AlbumModel
	if err := ctrl.DB.Preload("Images").First(&album, "album_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Album tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data album")
	}
	return helper.Success(c, dto.ToAlbumResponse(&album))
}

/* ===================== CREATE (multipart) ===================== */
// POST /api/albums/create
// Field form: title, description, images[] (JPG/PNG/GIF ≤ 5MB).
// Gambar dikonversi ke WebP lalu diunggah satu per satu; baris DB
// dibuat dalam satu transaksi setelah semua upload berhasil.
func (ctrl *AlbumController) Create(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Judul album wajib diisi")
	}
	description := strings.TrimSpace(c.FormValue("description"))

	form, err := c.MultipartForm()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Form upload tidak valid")
	}
	files := form.File["images"]
	if len(files) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Minimal satu gambar harus diunggah")
	}

	// validasi semua file dulu, baru upload
	for _, f := range files {
		if err := helper.ValidateImageUpload(f); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
	}

	type uploaded struct {
		URL  string
		Meta helper.ImageMeta
	}
	var results []uploaded
	for _, f := range files {
		url, meta, err := helper.UploadImageToSupabase("albums", f)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah gambar: "+err.Error())
		}
		results = append(results, uploaded{URL: url, Meta: meta})
	}

	album := model.AlbumModel{AlbumTitle: title}
	if description != "" {
		album.AlbumDescription = &description
	}

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	if err := tx.Create(&album).Error; err != nil {
		tx.Rollback()
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan album")
	}
	for _, r := range results {
		metaJSON, _ := json.Marshal(r.Meta)
		img := model.AlbumImageModel{
			AlbumImageAlbumID: album.AlbumID,
			AlbumImageURL:     r.URL,
			AlbumImageMeta:    datatypes.JSON(metaJSON),
		}
		if err := tx.Create(&img).Error; err != nil {
			tx.Rollback()
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar album")
		}
		album.Images = append(album.Images, img)
	}
	if err := tx.Commit().Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan album")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, dto.ToAlbumResponse(&album))
}

/* ===================== UPDATE (multipart) ===================== */
// PUT /api/albums/:id
// Judul/deskripsi diganti; file di field images ditambahkan ke album.
func (ctrl *AlbumController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID album tidak valid")
	}

	var album model.AlbumModel
	if err := ctrl.DB.Preload("Images").First(&album, "album_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Album tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data album")
	}

	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		album.AlbumTitle = title
	}
	if description := strings.TrimSpace(c.FormValue("description")); description != "" {
		album.AlbumDescription = &description
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, f := range form.File["images"] {
			if err := helper.ValidateImageUpload(f); err != nil {
				return helper.Error(c, fiber.StatusBadRequest, err.Error())
			}
			files = append(files, f)
		}
	}

	if err := ctrl.DB.Save(&album).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui album")
	}

	for _, f := range files {
		url, meta, err := helper.UploadImageToSupabase("albums", f)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah gambar: "+err.Error())
		}
		metaJSON, _ := json.Marshal(meta)
		img := model.AlbumImageModel{
			AlbumImageAlbumID: album.AlbumID,
			AlbumImageURL:     url,
			AlbumImageMeta:    datatypes.JSON(metaJSON),
		}
		if err := ctrl.DB.Create(&img).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar album")
		}
		album.Images = append(album.Images, img)
	}

	return helper.Success(c, dto.ToAlbumResponse(&album))
}

/* ===================== DELETE ALBUM ===================== */
// DELETE /api/albums/delete/:id
func (ctrl *AlbumController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID album tidak valid")
	}

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	if err := tx.Where("album_image_album_id = ?", id).Delete(&model.AlbumImageModel{}).Error; err != nil {
		tx.Rollback()
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus gambar album")
	}
	res := tx.Where("album_id = ?", id).Delete(&model.AlbumModel{})
	if res.Error != nil {
		tx.Rollback()
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus album")
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return helper.Error(c, fiber.StatusNotFound, "Album tidak ditemukan")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus album")
	}

	return helper.SuccessMessage(c, "Album berhasil dihapus")
}

/* ===================== DELETE IMAGE ===================== */
// DELETE /api/albums/:id/images/:imageId
// Baris dihapus dulu; pembersihan file di storage best-effort.
func (ctrl *AlbumController) DeleteImage(c *fiber.Ctx) error {
	albumID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID album tidak valid")
	}
	imageID, err := uuid.Parse(c.Params("imageId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID gambar tidak valid")
	}

	var img model.AlbumImageModel
	if err := ctrl.DB.First(&img, "album_image_id = ? AND album_image_album_id = ?", imageID, albumID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Gambar tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data gambar")
	}

	if err := ctrl.DB.Delete(&img).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus gambar")
	}

	if path := helper.ExtractSupabaseStoragePath(img.AlbumImageURL); path != "" {
		_ = helper.DeleteFromSupabase("image", path)
	}

	return helper.SuccessMessage(c, "Gambar berhasil dihapus")
}
