package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swaram_backend/internals/constants"
	batchController "swaram_backend/internals/features/academics/batches/controller"
	courseController "swaram_backend/internals/features/academics/courses/controller"
	studentController "swaram_backend/internals/features/academics/students/controller"
	authMiddleware "swaram_backend/internals/middlewares/auth"
)

// AcademicRoutes wires students, courses and batches. Reads are open to
// all staff; writes are admin and above.
func AcademicRoutes(private fiber.Router, admin fiber.Router, db *gorm.DB) {
	students := &studentController.StudentController{DB: db}
	courses := &courseController.CourseController{DB: db}
	batches := &batchController.BatchController{DB: db}

	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("academic records"),
		constants.AdminAndAbove...,
	)

	// ---------- Students ----------
	private.Get("/students", students.List)
	private.Get("/students/:id", students.GetByID)
	private.Get("/students/:id/admission-form", students.GetAdmissionForm)

	admin.Post("/students", adminOnly, students.Create)
	admin.Patch("/students/:id", adminOnly, students.Update)
	admin.Delete("/students/:id", adminOnly, students.Delete)
	admin.Post("/students/:id/avatar", adminOnly, students.UploadAvatar)

	// ---------- Courses ----------
	private.Get("/courses", courses.List)
	private.Get("/courses/:id", courses.GetByID)
	private.Get("/courses/:id/fees", courses.GetFeeStructure)

	admin.Post("/courses", adminOnly, courses.Create)
	admin.Patch("/courses/:id", adminOnly, courses.Update)
	admin.Delete("/courses/:id", adminOnly, courses.Delete)
	admin.Put("/courses/:id/fees", adminOnly, courses.UpsertFeeStructure)

	// ---------- Batches ----------
	private.Get("/batches", batches.List)
	private.Get("/batches/:id", batches.GetByID)

	admin.Post("/batches", adminOnly, batches.Create)
	admin.Patch("/batches/:id", adminOnly, batches.Update)
	admin.Delete("/batches/:id", adminOnly, batches.Delete)
}
