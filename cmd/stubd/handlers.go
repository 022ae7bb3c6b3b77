package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// newRouter wires the slice of the marketplace API the mobile client
// consumes. Response shapes match what the client decodes, including
// the two bare-boolean bodies the navigation resolver depends on.
func newRouter(st *memory, secret string, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	api := r.Group("/api")
	{
		authn := api.Group("/Authentication")
		authn.POST("/login", login(st, secret, log))
		authn.POST("/register", register(st, log))
		authn.GET("/user/:username", userProfile(st))
		authn.GET("/user/role/:username", userRole(st))

		markets := api.Group("/Markets")
		markets.GET("", listMarkets(st))
		markets.GET("/owner-exists/:username", ownerExists(st))
		markets.GET("/Owner/:owner", ownerMarket(st))

		api.GET("/Categories", listCategories(st))
		api.GET("/Products", listProducts(st))
		api.GET("/Products/:id", getProduct(st))
		api.POST("/Products", createProduct(st, log))
	}

	return r
}

type loginInput struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func login(st *memory, secret string, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		u, ok := st.userByName(input.UserName)
		if !ok || u.Password != input.Password {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
			return
		}

		claims := jwt.MapClaims{
			"sub":  u.Username,
			"role": u.Role,
			"exp":  time.Now().Add(24 * time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
			return
		}

		log.Info("login", slog.String("username", u.Username))
		c.JSON(http.StatusOK, gin.H{"token": token, "message": "logged in"})
	}
}

type registerInput struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	UserName    string `json:"userName" binding:"required"`
	Image       string `json:"image"`
	Role        string `json:"role"`
}

func register(st *memory, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		if input.Role == "" {
			input.Role = "CLIENT"
		}

		ok := st.addUser(user{
			Username:    input.UserName,
			Password:    input.Password,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Email:       input.Email,
			PhoneNumber: input.PhoneNumber,
			Image:       input.Image,
			Role:        input.Role,
		})
		if !ok {
			c.JSON(http.StatusConflict, gin.H{"message": "Username already taken"})
			return
		}

		log.Info("registered", slog.String("username", input.UserName), slog.String("role", input.Role))
		c.JSON(http.StatusCreated, gin.H{"message": "account created"})
	}
}

func userProfile(st *memory) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := st.userByName(c.Param("username"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":          u.ID,
			"userName":    u.Username,
			"firstName":   u.FirstName,
			"lastName":    u.LastName,
			"email":       u.Email,
			"phoneNumber": u.PhoneNumber,
			"image":       u.Image,
		})
	}
}

// userRole answers with a bare boolean, exactly what the tab-bar
// resolver expects.
func userRole(st *memory) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := st.userByName(c.Param("username"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, u.Role == "MARKET")
	}
}

func listMarkets(st *memory) gin.HandlerFunc {
	return func(c *gin.Context) {
		out := make([]gin.H, 0)
		for _, m := range st.listMarkets() {
			out = append(out, gin.H{
				"id":          m.ID,
				"name":        m.Name,
				"description": m.Description,
				"owner":       m.Owner,
				"phoneNumber": m.PhoneNumber,
				"image":       m.Image,
				"latitude":    m.Latitude,
				"longitude":   m.Longitude,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

func ownerExists(st *memory) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := st.marketByOwner(c.Param("username"))
		c.JSON(http.StatusOK, ok)
	}
}

func ownerMarket(st *memory) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := st.marketByOwner(c.Param("owner"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "No market for owner"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"marketId": m.ID})
	}
}

func listCategories(st *memory) gin.HandlerFunc {
	return func(c *gin.Context) {
		out := make([]gin.H, 0)
		for _, cat := range st.listCategories() {
			out = append(out, gin.H{"id": cat.ID, "name": cat.Name})
		}
		c.JSON(http.StatusOK, out)
	}
}

func productJSON(p product) gin.H {
	return gin.H{
		"id":            p.ID,
		"name":          p.Name,
		"description":   p.Description,
		"price":         p.Price,
		"stockQuantity": p.StockQuantity,
		"image":         p.Image,
		"categoryId":    p.CategoryID,
		"marketId":      p.MarketID,
	}
}

func listProducts(st *memory) gin.HandlerFunc {
	return func(c *gin.Context) {
		out := make([]gin.H, 0)
		for _, p := range st.listProducts() {
			out = append(out, productJSON(p))
		}
		c.JSON(http.StatusOK, out)
	}
}

func getProduct(st *memory) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := st.productByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, productJSON(p))
	}
}

type productInput struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	StockQuantity int             `json:"stockQuantity" binding:"min=0"`
	Image         string          `json:"image"`
	CategoryID    string          `json:"categoryId" binding:"required"`
	MarketID      string          `json:"marketId" binding:"required"`
}

func createProduct(st *memory, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input productInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		if input.Price.IsNegative() || input.Price.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be positive"})
			return
		}

		p := st.addProduct(product{
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			StockQuantity: input.StockQuantity,
			Image:         input.Image,
			CategoryID:    input.CategoryID,
			MarketID:      input.MarketID,
		})

		log.Info("product created", slog.Int64("id", p.ID), slog.String("name", p.Name))
		c.JSON(http.StatusCreated, productJSON(p))
	}
}
