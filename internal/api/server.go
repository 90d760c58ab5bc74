package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/standops/stand-status-api/docs"
	v1 "github.com/standops/stand-status-api/internal/api/handler/v1"
	"github.com/standops/stand-status-api/internal/api/middleware"
	"github.com/standops/stand-status-api/internal/config"
	"github.com/standops/stand-status-api/internal/repository"
	"github.com/standops/stand-status-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, store repository.Store) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	standHandler, circuitHandler, userHandler := buildHandlers(store)
	s.MountHandlers(standHandler, circuitHandler, userHandler)

	return s
}

func buildHandlers(store repository.Store) (*v1.StandHandler, *v1.CircuitHandler, *v1.UserHandler) {
	standRepo := repository.NewStandRepository(store)
	circuitRepo := repository.NewCircuitRepository(store)
	userRepo := repository.NewUserRepository(store)

	standHandler := v1.NewStandHandler(service.NewStandService(standRepo))
	circuitHandler := v1.NewCircuitHandler(service.NewCircuitService(circuitRepo, userRepo))
	userHandler := v1.NewUserHandler(service.NewUserService(userRepo))

	return standHandler, circuitHandler, userHandler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(standHandler *v1.StandHandler, circuitHandler *v1.CircuitHandler, userHandler *v1.UserHandler) {
	const basePath = "/api/v1"

	stands := s.Router.Group(basePath)
	{
		stands.GET("/stands", standHandler.HandleListStands)
		stands.POST("/stands/:standID/toggle", standHandler.HandleToggleStand)
	}

	circuits := s.Router.Group(basePath)
	{
		circuits.GET("/circuits", circuitHandler.HandleListCircuits)
		circuits.GET("/circuits/:circuitID", circuitHandler.HandleGetCircuit)
		circuits.POST("/circuits/:circuitID/toggle", circuitHandler.HandleToggleCircuit)
		circuits.POST("/circuits/:circuitID/toggle-active", circuitHandler.HandleToggleCircuitActive)
		circuits.PUT("/circuits/:circuitID/assignee", circuitHandler.HandleAssignUser)
		circuits.PUT("/circuits/:circuitID/task-number", circuitHandler.HandleUpdateTaskNumber)
	}

	users := s.Router.Group(basePath)
	{
		users.GET("/users", userHandler.HandleListUsers)
		users.GET("/users/:userID", userHandler.HandleGetUser)
		users.POST("/users", userHandler.HandleCreateUser)
		users.DELETE("/users/:userID", userHandler.HandleDeleteUser)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Stand Status API"
	docs.SwaggerInfo.Description = "Occupancy and assignment tracking for test stands."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
