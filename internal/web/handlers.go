package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"todoapp/internal/dto"
	"todoapp/internal/model"
	"todoapp/internal/service"
)

// Handler wires the HTTP surface to the services. Handlers stay thin:
// parse, call the service, translate negative results to status codes with
// generic messages.
type Handler struct {
	tasks      *service.TaskService
	users      *service.UserService
	priorities *service.PriorityService
	categories *service.CategoryService
	secret     []byte
	tokenTTL   time.Duration
}

func NewHandler(tasks *service.TaskService, users *service.UserService,
	priorities *service.PriorityService, categories *service.CategoryService,
	secret []byte, tokenTTL time.Duration) *Handler {
	return &Handler{
		tasks:      tasks,
		users:      users,
		priorities: priorities,
		categories: categories,
		secret:     secret,
		tokenTTL:   tokenTTL,
	}
}

// Register mounts all routes.
func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/register", h.register)
	api.POST("/login", h.login)
	api.GET("/timezones", h.timezones)

	auth := api.Group("", h.authMiddleware)
	auth.GET("/tasks", h.listTasks)
	auth.GET("/tasks/done", h.listDone)
	auth.GET("/tasks/new", h.listNew)
	auth.GET("/tasks/:id", h.getTask)
	auth.POST("/tasks", h.createTask)
	auth.PUT("/tasks/:id", h.updateTask)
	auth.POST("/tasks/:id/done", h.setDone)
	auth.DELETE("/tasks/:id", h.deleteTask)
	auth.GET("/priorities", h.listPriorities)
	auth.GET("/categories", h.listCategories)
}

type registerRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Timezone string `json:"timezone"`
}

func (h *Handler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if req.Login == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "login and password are required"})
	}

	user := model.User{Name: req.Name, Login: req.Login, Password: req.Password, Timezone: req.Timezone}
	if !h.users.Save(c.Request().Context(), &user) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "login already taken"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": user.ID})
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (h *Handler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	user, ok := h.users.FindByLoginAndPassword(c.Request().Context(), req.Login, req.Password)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid login or password"})
	}

	token, err := h.signToken(user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func (h *Handler) timezones(c echo.Context) error {
	return c.JSON(http.StatusOK, listTimeZones(time.Now()))
}

func (h *Handler) listTasks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.tasks.FindAll(c.Request().Context(), viewerFrom(c)))
}

func (h *Handler) listDone(c echo.Context) error {
	return c.JSON(http.StatusOK, h.tasks.FindDone(c.Request().Context(), viewerFrom(c)))
}

func (h *Handler) listNew(c echo.Context) error {
	return c.JSON(http.StatusOK, h.tasks.FindNew(c.Request().Context(), viewerFrom(c)))
}

func (h *Handler) getTask(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	task, ok := h.tasks.FindByID(c.Request().Context(), id, viewerFrom(c))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
	}
	return c.JSON(http.StatusOK, task)
}

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriorityID  uint   `json:"priority_id"`
	CategoryIDs []uint `json:"category_ids"`
}

func (h *Handler) createTask(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}

	viewer := viewerFrom(c)
	saved := h.tasks.Save(c.Request().Context(), dto.Task{
		Title:       req.Title,
		Description: req.Description,
		UserID:      viewer.ID,
		PriorityID:  req.PriorityID,
		CategoryIDs: req.CategoryIDs,
	})
	if !saved {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save task"})
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) updateTask(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	viewer := viewerFrom(c)
	updated := h.tasks.Update(c.Request().Context(), dto.Task{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		UserID:      viewer.ID,
		PriorityID:  req.PriorityID,
		CategoryIDs: req.CategoryIDs,
	})
	if !updated {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) setDone(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if !h.tasks.SetDoneByID(c.Request().Context(), id) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) deleteTask(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if !h.tasks.DeleteByID(c.Request().Context(), id) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) listPriorities(c echo.Context) error {
	return c.JSON(http.StatusOK, h.priorities.FindAll(c.Request().Context()))
}

func (h *Handler) listCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.categories.FindAll(c.Request().Context()))
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
