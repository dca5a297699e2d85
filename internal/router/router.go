package router

import (
	"github.com/redis/go-redis/v9"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/middleware"
	"workforce/backend/internal/pkg/config"
	"workforce/backend/internal/pkg/repository/postgresql"

	"workforce/backend/internal/repository/postgres/attendance"
	"workforce/backend/internal/repository/postgres/team"
	"workforce/backend/internal/repository/postgres/todo"
	"workforce/backend/internal/repository/postgres/user"

	attendance_controller "workforce/backend/internal/controller/http/v1/attendance"
	auth_controller "workforce/backend/internal/controller/http/v1/auth"
	team_controller "workforce/backend/internal/controller/http/v1/team"
	todo_controller "workforce/backend/internal/controller/http/v1/todo"
	user_controller "workforce/backend/internal/controller/http/v1/user"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	port       string
	auth       *auth.Auth
	cfg        *config.Config
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	cfg *config.Config,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		cfg,
	}
}

func (r Router) Init() error {
	r.HandleMethodNotAllowed = true
	r.Use(middleware.CORSMiddleware(nil))

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB)
	todoPostgres := todo.NewRepository(r.postgresDB)
	teamPostgres := team.NewRepository(r.postgresDB)

	// controller
	authController := auth_controller.NewController(userPostgres, r.redisDB, r.auth, r.cfg.JWTKey)
	userController := user_controller.NewController(userPostgres, r.cfg.BaseUrl)
	attendanceController := attendance_controller.NewController(attendancePostgres)
	todoController := todo_controller.NewController(todoPostgres)
	teamController := team_controller.NewController(teamPostgres)

	// #auth
	r.Post("/api/v1/sign-up", authController.SignUp)
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)
	r.Post("/api/v1/sign-out", authController.SignOut, middleware.Authenticate(r.auth))
	r.Get("/api/v1/me", authController.Me)

	// #user
	r.Get("/api/v1/user/list", userController.GetUserList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/user/qrcode", userController.GetQrCode, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/user/:id", userController.GetUserDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/user/:id", userController.UpdateUserColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/user/:id", userController.DeleteUser, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/admin/users/badges", userController.GetBadgeSheet, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #attendance
	r.Post("/api/v1/attendance/checkin", attendanceController.CheckIn, middleware.Authenticate(r.auth))
	r.Post("/api/v1/attendance/checkout", attendanceController.CheckOut, middleware.Authenticate(r.auth))
	r.Get("/api/v1/attendance/list", attendanceController.GetMonthList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/attendance/graph", attendanceController.GetGraph, middleware.Authenticate(r.auth))

	// #todo
	r.Get("/api/v1/todo/list", todoController.GetDayList, middleware.Authenticate(r.auth))
	r.Post("/api/v1/todo/create", todoController.CreateTodo, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/todo/:id", todoController.UpdateTodoColumns, middleware.Authenticate(r.auth))
	r.Delete("/api/v1/todo/:id", todoController.DeleteTodo, middleware.Authenticate(r.auth))

	// #team
	r.Get("/api/v1/team/todos", teamController.GetMemberTodoRows, middleware.Authenticate(r.auth, auth.RoleLead))
	r.Get("/api/v1/team/members", teamController.GetMemberRows, middleware.Authenticate(r.auth))
	r.Get("/api/v1/admin/todos/teams", teamController.GetTodoTeams, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/admin/attendance/teams", teamController.GetAttendanceTeams, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/admin/attendance/export", teamController.ExportAttendanceTeams, middleware.Authenticate(r.auth, auth.RoleAdmin))

	return r.Run(r.port)
}
