package api

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
	"github.com/PayRipple/PayRipple-Backend/models"
	"github.com/PayRipple/PayRipple-Backend/services/monitoring/logging"
	"github.com/PayRipple/PayRipple-Backend/services/notification"
	"github.com/PayRipple/PayRipple-Backend/services/redis"
	"github.com/PayRipple/PayRipple-Backend/services/security"
	"github.com/PayRipple/PayRipple-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// / If there's a better place to access this
// / TODO, I feel the config should be the one accessible like this
var TokenController *utils.JWTToken

// validPIN accepts exactly four digits, the shape of a transaction PIN.
var validPIN validator.Func = func(fl validator.FieldLevel) bool {
	pin := fl.Field().String()
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

type Server struct {
	router   *gin.Engine
	store    db.Store
	config   *utils.Config
	logger   *logging.Logger
	redis    *redis.RedisService
	pinGuard *security.Cache
	sms      notification.SMSSender
	mail     *notification.Plunk
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	conn, err := sql.Open(c.DBDriver, utils.GetDBSource(c, c.DBName))
	if err != nil {
		panic(fmt.Sprintf("Could not load DB: %v", err))
	}

	m, err := migrate.New(
		"file://db/migrations",
		utils.GetDBSource(c, c.DBName),
	)
	if err != nil {
		log.Fatalf("Unable to instantiate the database schema migrator - %v", err)
	}

	if err := m.Up(); err != nil {
		if err != migrate.ErrNoChange {
			log.Fatalf("Unable to migrate up to the latest database schema - %v", err)
		}
	}

	l := logging.NewLogger()

	r, err := redis.NewRedisService(&redis.RedisConfig{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPassword,
	})
	if err != nil {
		log.Fatalf("Unable to connect to redis - %v", err)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("pin", validPIN); err != nil {
			log.Fatalf("Unable to register the PIN validator - %v", err)
		}
	}

	g := gin.Default()
	g.Use(CORSMiddleware())
	g.Use(l.LoggingMiddleWare())

	TokenController = utils.NewJWTToken(c)

	return &Server{
		router:   g,
		store:    db.NewStore(conn),
		config:   c,
		logger:   l,
		redis:    r,
		pinGuard: security.NewCache(),
		sms:      newSMSSender(c, l),
		mail:     &notification.Plunk{HttpClient: http.DefaultClient, Config: c},
	}
}

// newSMSSender picks the configured SMS channel, falling back to log-only
// delivery for local development.
func newSMSSender(c *utils.Config, l *logging.Logger) notification.SMSSender {
	if c.TwilioAccountSID != "" {
		return &notification.TwilioSMS{Config: c}
	}
	if c.AWSAccessKeyID != "" {
		return &notification.SNSSMS{Config: c}
	}
	return &notification.LogSMS{Logger: l}
}

func (s *Server) Start() {

	dr := models.SuccessResponse{
		Success: true,
		Message: "Welcome to PayRipple!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	/// Register Object Routers Below
	Auth{}.router(s)
	Wallet{}.router(s)
	Transfer{}.router(s)
	Bank{}.router(s)
	QR{}.router(s)

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}
