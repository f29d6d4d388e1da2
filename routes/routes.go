package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ChetanKaturde/smart-college/config"
	"github.com/ChetanKaturde/smart-college/database"
	"github.com/ChetanKaturde/smart-college/handlers"
	"github.com/ChetanKaturde/smart-college/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	std := handlers.NewStudentHandler()
	tch := handlers.NewTeacherHandler()
	crs := handlers.NewCourseHandler()
	enr := handlers.NewEnrollmentHandler()
	tt := handlers.NewTimetableHandler()
	att := handlers.NewAttendanceSessionHandler(database.DB)
	ros := handlers.NewRosterHandler(database.DB)
	dash := handlers.NewDashboardHandler(database.DB)

	// ===== Public =====
	e.GET("/healthz", handlers.Health)
	e.POST("/auth/staff/login", auth.StaffLogin)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Admin routes =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))

	admin.GET("/students", std.List)
	admin.POST("/students", std.Create)
	admin.PUT("/students/:id", std.Update)
	admin.DELETE("/students/:id", std.Delete)

	admin.GET("/teachers", tch.List)
	admin.POST("/teachers", tch.Create)
	admin.PUT("/teachers/:id", tch.Update)
	admin.DELETE("/teachers/:id", tch.Delete)

	admin.GET("/courses", crs.List)
	admin.POST("/courses", crs.Create)
	admin.PUT("/courses/:id", crs.Update)
	admin.DELETE("/courses/:id", crs.Delete)

	admin.GET("/subjects", crs.ListSubjects)
	admin.POST("/subjects", crs.CreateSubject)
	admin.DELETE("/subjects/:id", crs.DeleteSubject)

	admin.GET("/enrollments", enr.List)
	admin.POST("/enrollments", enr.Create)
	admin.POST("/enrollments/:id/drop", enr.Drop)
	admin.DELETE("/enrollments/:id", enr.Delete)

	admin.GET("/timetables", tt.List)
	admin.POST("/timetables", tt.Create)
	admin.POST("/timetables/:id/publish", tt.Publish)
	admin.DELETE("/timetables/:id", tt.Delete)
	admin.GET("/timetables/:id/slots", tt.ListSlots)
	admin.POST("/slots", tt.CreateSlot)
	admin.DELETE("/slots/:id", tt.DeleteSlot)

	// ===== Teacher routes =====
	teacher := e.Group("/teacher", authMW, middlewares.RequireRole("teacher", "admin"))

	// Attendance session workflow
	teacher.POST("/attendance/sessions", att.Create)
	teacher.GET("/attendance/sessions", att.List)
	teacher.GET("/attendance/sessions/:id", att.Get)
	teacher.POST("/attendance/sessions/:id/close", att.Close)
	teacher.POST("/attendance/sessions/:id/mark-attendance", att.Mark)
	teacher.PUT("/attendance/sessions/:id/records", att.EditRecords)
	teacher.GET("/attendance/students", ros.List)

	// Dashboard + read-only basics used by the teacher UI
	teacher.GET("/dashboard/daily", dash.Daily)
	teacher.GET("/students", std.List)
	teacher.GET("/courses", crs.List)
	teacher.GET("/timetables", tt.List)
	teacher.GET("/timetables/:id/slots", tt.ListSlots)
}
