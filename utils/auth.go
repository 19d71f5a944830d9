package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aurumchit/agent_end/config"
	"github.com/aurumchit/agent_end/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

var jwtSecret = []byte(config.LoadConfig().JWTKey)

// GenerateToken issues a JWT for a resolved agent.
func GenerateToken(agent models.AgentInfo, line models.ProductLine) (string, error) {
	Logger.Info().
		Str("_id", agent.ID).
		Str("name", agent.Name).
		Str("productLine", string(line)).
		Msg("generating token")

	claims := jwt.MapClaims{
		"id":          agent.ID,
		"name":        agent.Name,
		"designation": agent.DesignationID,
		"line":        string(line),
		"exp":         time.Now().Add(time.Hour * 24 * 30).Unix(), // 30 days
		"iat":         time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		Logger.Error().Err(err).Msg("token signing failed")
		return "", err
	}

	return tokenString, nil
}

// ParseToken parses and validates a JWT.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// LoginUser is the identity extracted from the request context.
type LoginUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	ProductLine string `json:"line"`
}

// GetUser extracts the authenticated agent from the gin context.
func GetUser(c *gin.Context) (*LoginUser, error) {
	currentUser, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("GetUser: unauthorized access")
	}

	var claims map[string]interface{}
	switch v := currentUser.(type) {
	case jwt.MapClaims:
		claims = make(map[string]interface{})
		for key, val := range v {
			claims[key] = val
		}
	case map[string]interface{}:
		claims = v
	default:
		data, err := json.Marshal(currentUser)
		if err != nil {
			return nil, fmt.Errorf("marshal user claims: %v", err)
		}
		if err := json.Unmarshal(data, &claims); err != nil {
			return nil, fmt.Errorf("unmarshal user claims: %v", err)
		}
	}

	id, ok := claims["id"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid agent id in token")
	}

	name, _ := claims["name"].(string)
	designation, _ := claims["designation"].(string)

	line, ok := claims["line"].(string)
	if !ok || line == "" {
		line = string(models.ProductLineChit)
	}

	return &LoginUser{
		ID:          id,
		Name:        name,
		Designation: designation,
		ProductLine: line,
	}, nil
}
