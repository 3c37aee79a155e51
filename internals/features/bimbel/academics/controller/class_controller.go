// file: internals/features/bimbel/academics/controller/class_controller.go
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

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validate: validator.New()}
}

// POST /api/a/:bimbel_id/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	class := m.ClassModel{
		ClassBimbelID: bimbelID,
		ClassName:     req.ClassName,
		ClassLevel:    req.ClassLevel,
		ClassIsActive: true,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat class")
	}
	return helper.JsonCreated(c, "Class berhasil dibuat", dto.FromClassModel(&class))
}

// GET /api/u/:bimbel_id/classes
func (ctl *ClassController) List(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 100)

	var total int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.ClassModel{}).
		Where("class_bimbel_id = ? AND class_is_active = TRUE", bimbelID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung class")
	}

	var rows []m.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_bimbel_id = ? AND class_is_active = TRUE", bimbelID).
		Order("class_name ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil class")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromClassModels(rows), &pagination)
}

// GET /api/u/:bimbel_id/classes/:id
func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	var class m.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ? AND class_bimbel_id = ?", classID, bimbelID).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "NOT_FOUND", "class tidak ditemukan", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil class")
	}
	return helper.JsonOK(c, "OK", dto.FromClassModel(&class))
}

// PUT /api/a/:bimbel_id/classes/:id
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var class m.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ? AND class_bimbel_id = ?", classID, bimbelID).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "NOT_FOUND", "class tidak ditemukan", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil class")
	}

	if req.ClassName != nil {
		class.ClassName = *req.ClassName
	}
	if req.ClassLevel != nil {
		class.ClassLevel = req.ClassLevel
	}
	if req.IsActive != nil {
		class.ClassIsActive = *req.IsActive
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memperbarui class")
	}
	return helper.JsonUpdated(c, "Class berhasil diperbarui", dto.FromClassModel(&class))
}

// DELETE /api/a/:bimbel_id/classes/:id (soft)
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ? AND class_bimbel_id = ?", classID, bimbelID).
		Delete(&m.ClassModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "NOT_FOUND", "class tidak ditemukan", nil)
	}
	return helper.JsonDeleted(c, "Class berhasil dihapus", fiber.Map{"class_id": classID})
}
