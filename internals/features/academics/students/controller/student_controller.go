package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"swaram_backend/internals/features/academics/students/dto"
	"swaram_backend/internals/features/academics/students/model"
	helper "swaram_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /students)
// Query filters (optional):
// - q: case-insensitive match on the joined full name
// - gender: Male|Female
// - page, per_page
// -----------------------------------------
func (h *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.Student{})

	if v := strings.TrimSpace(c.Query("q")); v != "" {
		pattern := "%" + strings.ToLower(v) + "%"
		q = q.Where(
			"LOWER(TRIM(CONCAT_WS(' ', first_name, middle_name, last_name))) LIKE ?",
			pattern,
		)
	}
	if v := c.Query("gender"); v == string(model.GenderMale) || v == string(model.GenderFemale) {
		q = q.Where("gender = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Student
	if err := q.
		Order("gr_no ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToStudentResponses(list), helper.BuildPagination(total, p.Page, p.PerPage))
}

// -----------------------------------------
// GetByID (GET /students/:id) — contacts + address included
// -----------------------------------------
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var m model.Student
	err = h.DB.WithContext(c.UserContext()).
		Preload("Address").
		Preload("Contacts").
		Preload("Contacts.Contact").
		Where("id = ?", id).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Create (POST /students)
// Address and contacts ride along in one transaction.
// -----------------------------------------
func (h *StudentController) Create(c *fiber.Ctx) error {
	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := dto.StudentCreateDTOToModel(in)

	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if in.Address != nil {
			addr := dto.AddressDTOToModel(*in.Address)
			if err := tx.Create(&addr).Error; err != nil {
				return err
			}
			m.AddressID = &addr.ID
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, cd := range in.Contacts {
			contact := model.Contact{
				ContactName: cd.ContactName,
				Phone:       cd.Phone,
				WhatsappNum: cd.WhatsappNum,
				Email:       cd.Email,
			}
			if err := tx.Create(&contact).Error; err != nil {
				return err
			}
			link := model.StudentContact{
				StudentID:    m.ID,
				ContactID:    contact.ID,
				Relationship: cd.Relationship,
				Occupation:   cd.Occupation,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "duplicate student record")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "student created", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Update (PATCH /students/:id)
// -----------------------------------------
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.Student
	err = h.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.MiddleName != nil {
		updates["middle_name"] = *in.MiddleName
	}
	if in.LastName != nil {
		updates["last_name"] = *in.LastName
	}
	if in.Gender != nil {
		updates["gender"] = *in.Gender
	}
	if in.DateOfBirth != nil {
		updates["date_of_birth"] = *in.DateOfBirth
	}
	if in.AdmissionDate != nil {
		updates["admission_date"] = *in.AdmissionDate
	}
	if in.FormURL != nil {
		updates["form_url"] = *in.FormURL
	}

	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if in.Address != nil {
			addr := dto.AddressDTOToModel(*in.Address)
			if m.AddressID != nil {
				addr.ID = *m.AddressID
				if err := tx.Save(&addr).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Create(&addr).Error; err != nil {
					return err
				}
				updates["address_id"] = addr.ID
			}
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&m).Updates(updates).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return h.GetByID(c)
}

// -----------------------------------------
// Delete (DELETE /students/:id) — contact links go with the record
// -----------------------------------------
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&model.StudentContact{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Student{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "student removed", fiber.Map{"id": id})
}

// -----------------------------------------
// UploadAvatar (POST /students/:id/avatar) — multipart "avatar" field
// -----------------------------------------
func (h *StudentController) UploadAvatar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "avatar file is required")
	}

	url, err := helper.UploadAvatarImage("students", fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	res := h.DB.WithContext(c.UserContext()).
		Model(&model.Student{}).
		Where("id = ?", id).
		Update("avatar_url", url)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}

	return helper.JsonOK(c, "avatar updated", fiber.Map{"avatar_url": url})
}
