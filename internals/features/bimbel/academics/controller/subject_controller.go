// file: internals/features/bimbel/academics/controller/subject_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/bimbel/academics/dto"
	m "bimbelku_backend/internals/features/bimbel/academics/model"
	helper "bimbelku_backend/internals/helpers"
	authHelper "bimbelku_backend/internals/helpers/auth"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

// POST /api/a/:bimbel_id/subjects
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	subject := m.SubjectModel{
		SubjectBimbelID: bimbelID,
		SubjectName:     req.SubjectName,
		SubjectCode:     req.SubjectCode,
		SubjectIsActive: true,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&subject).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat subject")
	}
	return helper.JsonCreated(c, "Subject berhasil dibuat", dto.FromSubjectModel(&subject))
}

// GET /api/u/:bimbel_id/subjects
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 100)

	var total int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.SubjectModel{}).
		Where("subject_bimbel_id = ? AND subject_is_active = TRUE", bimbelID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung subject")
	}

	var rows []m.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("subject_bimbel_id = ? AND subject_is_active = TRUE", bimbelID).
		Order("subject_name ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil subject")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromSubjectModels(rows), &pagination)
}

// GET /api/u/:bimbel_id/subjects/:id
func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	var subject m.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("subject_id = ? AND subject_bimbel_id = ?", subjectID, bimbelID).
		First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "NOT_FOUND", "subject tidak ditemukan", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil subject")
	}
	return helper.JsonOK(c, "OK", dto.FromSubjectModel(&subject))
}

// PUT /api/a/:bimbel_id/subjects/:id
func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var subject m.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("subject_id = ? AND subject_bimbel_id = ?", subjectID, bimbelID).
		First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "NOT_FOUND", "subject tidak ditemukan", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil subject")
	}

	if req.SubjectName != nil {
		subject.SubjectName = *req.SubjectName
	}
	if req.SubjectCode != nil {
		subject.SubjectCode = req.SubjectCode
	}
	if req.IsActive != nil {
		subject.SubjectIsActive = *req.IsActive
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&subject).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memperbarui subject")
	}
	return helper.JsonUpdated(c, "Subject berhasil diperbarui", dto.FromSubjectModel(&subject))
}

// DELETE /api/a/:bimbel_id/subjects/:id (soft)
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("subject_id = ? AND subject_bimbel_id = ?", subjectID, bimbelID).
		Delete(&m.SubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "NOT_FOUND", "subject tidak ditemukan", nil)
	}
	return helper.JsonDeleted(c, "Subject berhasil dihapus", fiber.Map{"subject_id": subjectID})
}
