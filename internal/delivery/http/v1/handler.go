package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/study-board/internal/repository"
	"github.com/adanyl0v/study-board/internal/services"
	"github.com/adanyl0v/study-board/internal/translator"
)

type Handler interface {
	HandleLogin(c *gin.Context)
	HandleMe(c *gin.Context)
	HandleListUsers(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleListMyTasks(c *gin.Context)
	HandleListAssignedByMe(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleCreateNote(c *gin.Context)
	HandleListNotes(c *gin.Context)
	HandleUpdateNote(c *gin.Context)
	HandleDeleteNote(c *gin.Context)

	HandleHealth(c *gin.Context)
	HandleNoRoute(c *gin.Context)

	HandleAuthMiddleware(c *gin.Context)
	HandleLanguageMiddleware(c *gin.Context)
	HandleLoggerMiddleware(c *gin.Context)
}

type handlerImpl struct {
	logger     zerolog.Logger
	translator *translator.Translator
	store      repository.Pinger
	auth       services.AuthService
	users      services.UserService
	tasks      services.TaskService
	notes      services.NoteService
}

func New(
	logger zerolog.Logger,
	tr *translator.Translator,
	store repository.Pinger,
	authService services.AuthService,
	userService services.UserService,
	taskService services.TaskService,
	noteService services.NoteService,
) Handler {
	return &handlerImpl{
		logger:     logger,
		translator: tr,
		store:      store,
		auth:       authService,
		users:      userService,
		tasks:      taskService,
		notes:      noteService,
	}
}

// RegisterRoutes mounts the API on router. Everything except login and the
// health check requires a bearer assertion.
func RegisterRoutes(router gin.IRouter, h Handler) {
	api := router.Group("/api", h.HandleLanguageMiddleware)
	api.GET("/health", h.HandleHealth)

	authRouter := api.Group("/auth")
	authRouter.POST("/login", h.HandleLogin)
	authRouter.GET("/me", h.HandleAuthMiddleware, h.HandleMe)

	protected := api.Group("", h.HandleAuthMiddleware)
	protected.GET("/users", h.HandleListUsers)

	tasksRouter := protected.Group("/tasks")
	tasksRouter.POST("", h.HandleCreateTask)
	tasksRouter.GET("/my-tasks", h.HandleListMyTasks)
	tasksRouter.GET("/assigned-by-me", h.HandleListAssignedByMe)
	tasksRouter.PATCH("/:id", h.HandleUpdateTask)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)

	notesRouter := protected.Group("/notes")
	notesRouter.POST("", h.HandleCreateNote)
	notesRouter.GET("", h.HandleListNotes)
	notesRouter.PATCH("/:id", h.HandleUpdateNote)
	notesRouter.DELETE("/:id", h.HandleDeleteNote)
}
