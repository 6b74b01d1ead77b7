package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"swaram_backend/internals/features/academics/courses/dto"
	"swaram_backend/internals/features/academics/courses/model"
	helper "swaram_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /courses)
// -----------------------------------------
func (h *CourseController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.Course{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Course
	if err := q.
		Preload("FeeStructures", func(db *gorm.DB) *gorm.DB {
			return db.Order("year_number ASC")
		}).
		Order("name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToCourseResponses(list), helper.BuildPagination(total, p.Page, p.PerPage))
}

// -----------------------------------------
// GetByID (GET /courses/:id)
// -----------------------------------------
func (h *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	var m model.Course
	err = h.DB.WithContext(c.UserContext()).
		Preload("FeeStructures", func(db *gorm.DB) *gorm.DB {
			return db.Order("year_number ASC")
		}).
		Where("id = ?", id).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToCourseResponse(m))
}

// -----------------------------------------
// Create (POST /courses)
// Fee rows come later through the fee editor (PUT /courses/:id/fees).
// -----------------------------------------
func (h *CourseController) Create(c *fiber.Ctx) error {
	var in dto.CourseCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := dto.CourseCreateDTOToModel(in)
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "course already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "course created", dto.ToCourseResponse(m))
}

// -----------------------------------------
// Update (PATCH /courses/:id)
// -----------------------------------------
func (h *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	var in dto.CourseUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.DurationYears != nil {
		updates["duration_years"] = *in.DurationYears
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "nothing to update")
	}

	res := h.DB.WithContext(c.UserContext()).
		Model(&model.Course{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}

	return h.GetByID(c)
}

// -----------------------------------------
// Delete (DELETE /courses/:id)
// -----------------------------------------
func (h *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&model.FeeStructure{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Course{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}
	if err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "course is still referenced by batches")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "course removed", fiber.Map{"id": id})
}

// -----------------------------------------
// GetFeeStructure (GET /courses/:id/fees)
// -----------------------------------------
func (h *CourseController) GetFeeStructure(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	var list []model.FeeStructure
	if err := h.DB.WithContext(c.UserContext()).
		Where("course_id = ?", id).
		Order("year_number ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.FeeStructureView, 0, len(list))
	for _, fs := range list {
		out = append(out, dto.FeeStructureView{ID: fs.ID, YearNumber: fs.YearNumber, TotalFee: fs.TotalFee})
	}
	return helper.JsonOK(c, "", out)
}

// -----------------------------------------
// UpsertFeeStructure (PUT /courses/:id/fees)
// All year rows arrive together; validator enforces total_fee > 0 on each
// before anything is written (the console blocks invalid amounts the same way).
// -----------------------------------------
func (h *CourseController) UpsertFeeStructure(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	var in dto.FeeStructureUpsertDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	rows := make([]model.FeeStructure, 0, len(in.Rows))
	courseID := id
	for _, r := range in.Rows {
		row := model.FeeStructure{
			CourseID:   &courseID,
			YearNumber: r.YearNumber,
			TotalFee:   r.TotalFee,
		}
		if r.ID != nil {
			row.ID = *r.ID
		}
		rows = append(rows, row)
	}

	if err := h.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "course_id"}, {Name: "year_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_fee"}),
		}).
		Create(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return h.GetFeeStructure(c)
}
