// file: internals/features/bimbel/academics/controller/teacher_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/bimbel/academics/dto"
	m "bimbelku_backend/internals/features/bimbel/academics/model"
	svc "bimbelku_backend/internals/features/bimbel/academics/service"
	helper "bimbelku_backend/internals/helpers"
	authHelper "bimbelku_backend/internals/helpers/auth"
)

type TeacherController struct {
	DB       *gorm.DB
	Qual     *svc.QualificationIndex
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, qual *svc.QualificationIndex) *TeacherController {
	return &TeacherController{DB: db, Qual: qual, Validate: validator.New()}
}

// POST /api/a/:bimbel_id/teachers
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	teacher := m.TeacherModel{
		TeacherBimbelID:          bimbelID,
		TeacherName:              req.TeacherName,
		TeacherEmail:             req.TeacherEmail,
		TeacherPhone:             req.TeacherPhone,
		TeacherSubjectNamesCache: pq.StringArray{},
		TeacherIsActive:          true,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat teacher")
	}
	return helper.JsonCreated(c, "Teacher berhasil dibuat", dto.FromTeacherModel(&teacher))
}

// GET /api/u/:bimbel_id/teachers
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 100)

	var total int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.TeacherModel{}).
		Where("teacher_bimbel_id = ? AND teacher_is_active = TRUE", bimbelID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung teacher")
	}

	var rows []m.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("teacher_bimbel_id = ? AND teacher_is_active = TRUE", bimbelID).
		Order("teacher_name ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil teacher")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromTeacherModels(rows), &pagination)
}

// GET /api/u/:bimbel_id/teachers/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	var teacher m.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("teacher_id = ? AND teacher_bimbel_id = ?", teacherID, bimbelID).
		First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "NOT_FOUND", "teacher tidak ditemukan", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil teacher")
	}
	return helper.JsonOK(c, "OK", dto.FromTeacherModel(&teacher))
}

// PUT /api/a/:bimbel_id/teachers/:id
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var teacher m.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("teacher_id = ? AND teacher_bimbel_id = ?", teacherID, bimbelID).
		First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "NOT_FOUND", "teacher tidak ditemukan", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil teacher")
	}

	if req.TeacherName != nil {
		teacher.TeacherName = *req.TeacherName
	}
	if req.TeacherEmail != nil {
		teacher.TeacherEmail = req.TeacherEmail
	}
	if req.TeacherPhone != nil {
		teacher.TeacherPhone = req.TeacherPhone
	}
	if req.IsActive != nil {
		teacher.TeacherIsActive = *req.IsActive
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memperbarui teacher")
	}
	return helper.JsonUpdated(c, "Teacher berhasil diperbarui", dto.FromTeacherModel(&teacher))
}

// DELETE /api/a/:bimbel_id/teachers/:id (soft)
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("teacher_id = ? AND teacher_bimbel_id = ?", teacherID, bimbelID).
		Delete(&m.TeacherModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus teacher")
	}
	if res.RowsAffected == 0 {
		return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "NOT_FOUND", "teacher tidak ditemukan", nil)
	}
	ctl.Qual.Invalidate(teacherID)
	return helper.JsonDeleted(c, "Teacher berhasil dihapus", fiber.Map{"teacher_id": teacherID})
}

/* =======================================================
   Kualifikasi (teacher_subjects)
   ======================================================= */

// POST /api/a/:bimbel_id/teachers/:id/subjects
func (ctl *TeacherController) AddSubject(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	var req dto.AddTeacherSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_id is not a valid uuid")
	}

	var link m.TeacherSubjectModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var teacher m.TeacherModel
		if err := tx.
			Where("teacher_id = ? AND teacher_bimbel_id = ?", teacherID, bimbelID).
			First(&teacher).Error; err != nil {
			return err
		}
		var subject m.SubjectModel
		if err := tx.
			Where("subject_id = ? AND subject_bimbel_id = ?", subjectID, bimbelID).
			First(&subject).Error; err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&m.TeacherSubjectModel{}).
			Where("teacher_subject_teacher_id = ? AND teacher_subject_subject_id = ?", teacherID, subjectID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return gorm.ErrDuplicatedKey
		}

		link = m.TeacherSubjectModel{
			TeacherSubjectBimbelID:  bimbelID,
			TeacherSubjectTeacherID: teacherID,
			TeacherSubjectSubjectID: subjectID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		return refreshSubjectNamesCacheTx(tx, ctl.Qual, teacherID)
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "NOT_FOUND", "teacher atau subject tidak ditemukan", nil)
		case errors.Is(txErr, gorm.ErrDuplicatedKey):
			return helper.JsonErrorWithCode(c, fiber.StatusConflict, "DUPLICATE_ASSIGNMENT", "teacher sudah qualified untuk subject ini", nil)
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menambah kualifikasi")
		}
	}

	ctl.Qual.Invalidate(teacherID)
	return helper.JsonCreated(c, "Kualifikasi berhasil ditambahkan", link)
}

// DELETE /api/a/:bimbel_id/teachers/:id/subjects/:subject_id
func (ctl *TeacherController) RemoveSubject(c *fiber.Ctx) error {
	bimbelID, err := authHelper.GetBimbelID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := authHelper.EnsureBimbelScope(c, bimbelID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}
	subjectID, err := uuid.Parse(c.Params("subject_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_id is not a valid uuid")
	}

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("teacher_subject_teacher_id = ? AND teacher_subject_subject_id = ? AND teacher_subject_bimbel_id = ?",
				teacherID, subjectID, bimbelID).
			Delete(&m.TeacherSubjectModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return refreshSubjectNamesCacheTx(tx, ctl.Qual, teacherID)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "NOT_FOUND", "kualifikasi tidak ditemukan", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus kualifikasi")
	}

	ctl.Qual.Invalidate(teacherID)
	return helper.JsonDeleted(c, "Kualifikasi berhasil dihapus", fiber.Map{
		"teacher_id": teacherID,
		"subject_id": subjectID,
	})
}

// GET /api/u/:bimbel_id/teachers/:id/subjects
func (ctl *TeacherController) ListSubjects(c *fiber.Ctx) error {
	if _, err := authHelper.GetBimbelID(c); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid uuid")
	}

	refs, err := ctl.Qual.QualifiedSubjects(teacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil kualifikasi")
	}
	return helper.JsonList(c, "OK", refs, nil)
}

// refreshSubjectNamesCacheTx: sinkronkan kolom denormalized
// teacher_subject_names_cache dengan isi teacher_subjects.
func refreshSubjectNamesCacheTx(tx *gorm.DB, qual *svc.QualificationIndex, teacherID uuid.UUID) error {
	refs, err := qual.QualifiedSubjectsTx(tx, teacherID)
	if err != nil {
		return err
	}
	names := make(pq.StringArray, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.SubjectName)
	}
	return tx.Model(&m.TeacherModel{}).
		Where("teacher_id = ?", teacherID).
		Update("teacher_subject_names_cache", names).Error
}
