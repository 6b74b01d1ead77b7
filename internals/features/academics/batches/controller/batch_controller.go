package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"swaram_backend/internals/features/academics/batches/dto"
	"swaram_backend/internals/features/academics/batches/model"
	helper "swaram_backend/internals/helpers"
)

type BatchController struct {
	DB *gorm.DB
}

func preloadBatch(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Schedules", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Preload("YearCourses").
		Preload("YearCourses.Course")
}

// validateSchedules runs the HH:MM checks the struct validator can't.
func validateSchedules(rows []dto.ScheduleDTO) map[string][]string {
	var msgs []string
	for _, r := range rows {
		if err := r.Validate(); err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return map[string][]string{"schedules": msgs}
}

// -----------------------------------------
// List (GET /batches)
// -----------------------------------------
func (h *BatchController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.Batch{})
	if s := c.Query("q"); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(s))+"%")
	}
	if y := c.QueryInt("academic_year"); y > 0 {
		q = q.Where("academic_year = ?", y)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Batch
	if err := preloadBatch(q).
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToBatchResponses(list), helper.BuildPagination(total, p.Page, p.PerPage))
}

// -----------------------------------------
// GetByID (GET /batches/:id)
// -----------------------------------------
func (h *BatchController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid batch id")
	}

	var m model.Batch
	err = preloadBatch(h.DB.WithContext(c.UserContext())).
		Where("id = ?", id).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "batch not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToBatchResponse(m))
}

// -----------------------------------------
// Create (POST /batches)
// Batch, its weekly schedule and its course-year links land in one
// transaction so a half-created batch never shows up in lists.
// -----------------------------------------
func (h *BatchController) Create(c *fiber.Ctx) error {
	var in dto.BatchCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if fieldErrs := validateSchedules(in.Schedules); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := dto.BatchCreateDTOToModel(in)
	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, sc := range in.Schedules {
			row := model.BatchSchedule{
				BatchID:   m.ID,
				DayOfWeek: model.DayOfWeek(sc.DayOfWeek),
				StartTime: sc.StartTime,
				EndTime:   sc.EndTime,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, yc := range in.YearCourses {
			courseID := yc.CourseID
			batchID := m.ID
			row := model.BatchYearCourse{
				BatchID:    &batchID,
				CourseID:   &courseID,
				YearNumber: yc.YearNumber,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "duplicate course-year link")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown course")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var out model.Batch
	if err := preloadBatch(h.DB.WithContext(c.UserContext())).First(&out, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "batch created", dto.ToBatchResponse(out))
}

// -----------------------------------------
// Update (PATCH /batches/:id)
// When schedules or year_courses are sent they replace the existing set.
// -----------------------------------------
func (h *BatchController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid batch id")
	}

	var in dto.BatchUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if fieldErrs := validateSchedules(in.Schedules); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{}
		if in.Name != nil {
			updates["name"] = *in.Name
		}
		if in.AcademicYear != nil {
			updates["academic_year"] = *in.AcademicYear
		}
		if in.Description != nil {
			updates["description"] = *in.Description
		}
		if in.StartDate != nil {
			updates["start_date"] = dto.ParseDate(in.StartDate)
		}
		if in.EndDate != nil {
			updates["end_date"] = dto.ParseDate(in.EndDate)
		}

		if len(updates) > 0 {
			res := tx.Model(&model.Batch{}).Where("id = ?", id).Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		} else {
			var count int64
			if err := tx.Model(&model.Batch{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		if in.Schedules != nil {
			if err := tx.Where("batch_id = ?", id).Delete(&model.BatchSchedule{}).Error; err != nil {
				return err
			}
			for _, sc := range in.Schedules {
				row := model.BatchSchedule{
					BatchID:   id,
					DayOfWeek: model.DayOfWeek(sc.DayOfWeek),
					StartTime: sc.StartTime,
					EndTime:   sc.EndTime,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		if in.YearCourses != nil {
			if err := tx.Where("batch_id = ?", id).Delete(&model.BatchYearCourse{}).Error; err != nil {
				return err
			}
			for _, yc := range in.YearCourses {
				courseID := yc.CourseID
				batchID := id
				row := model.BatchYearCourse{
					BatchID:    &batchID,
					CourseID:   &courseID,
					YearNumber: yc.YearNumber,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "batch not found")
	}
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "duplicate course-year link")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown course")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return h.GetByID(c)
}

// -----------------------------------------
// Delete (DELETE /batches/:id)
// -----------------------------------------
func (h *BatchController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid batch id")
	}

	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("batch_id = ?", id).Delete(&model.BatchSchedule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("batch_id = ?", id).Delete(&model.BatchYearCourse{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Batch{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "batch not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "batch removed", fiber.Map{"id": id})
}
