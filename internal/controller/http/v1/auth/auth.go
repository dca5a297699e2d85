package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/commands"
	"workforce/backend/internal/repository/postgres/user"
)

const refreshKeyPrefix = "refresh_token:"

type Controller struct {
	user      User
	redisDB   *redis.Client
	tokenAuth *auth.Auth
	secret    string
}

func NewController(user User, redisDB *redis.Client, tokenAuth *auth.Auth, secret string) *Controller {
	return &Controller{user: user, redisDB: redisDB, tokenAuth: tokenAuth, secret: secret}
}

func (uc Controller) SignUp(c *web.Context) error {
	var request user.SignUpRequest

	if err := c.BindFunc(&request, "Username", "Email", "Password"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.SignUp(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) SignIn(c *web.Context) error {
	var data user.SignInRequest

	if err := c.BindFunc(&data, "Email", "Password"); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetByEmail(c.Ctx, data.Email)
	if err != nil {
		return c.RespondError(err)
	}

	if detail.Password == nil || detail.Role == nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid credentials"), http.StatusUnauthorized))
	}
	if detail.IsActive != nil && !*detail.IsActive {
		return c.RespondError(web.NewRequestError(errors.New("invalid credentials"), http.StatusUnauthorized))
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid credentials"), http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := commands.GenToken(commands.TokenData{
		ID:   detail.ID,
		Role: *detail.Role,
	}, uc.secret)
	if err != nil {
		return c.RespondError(err)
	}

	if err = uc.storeRefreshToken(c, refreshToken, detail.ID); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

// RefreshToken rotates the token pair. The presented refresh token must still
// be on the Redis allow-list; rotation removes it so a token replays exactly
// once.
func (uc Controller) RefreshToken(c *web.Context) error {
	var data user.RefreshTokenRequest

	if err := c.BindFunc(&data, "AccessToken", "RefreshToken"); err != nil {
		return c.RespondError(err)
	}

	if _, err := uc.redisDB.Get(c.Ctx, refreshKeyPrefix+data.RefreshToken).Result(); err != nil {
		if errors.Is(err, redis.Nil) {
			return c.RespondError(web.NewRequestError(errors.New("refresh token revoked"), http.StatusUnauthorized))
		}
		return c.RespondError(err)
	}

	_, refreshTokenClaims, err := commands.VerifyTokens(data.AccessToken, data.RefreshToken, uc.secret)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := commands.GenToken(commands.TokenData{
		ID:   refreshTokenClaims.UserId,
		Role: refreshTokenClaims.Role,
	}, uc.secret)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating new tokens"), http.StatusInternalServerError))
	}

	if err = uc.redisDB.Del(c.Ctx, refreshKeyPrefix+data.RefreshToken).Err(); err != nil {
		return c.RespondError(err)
	}
	if err = uc.storeRefreshToken(c, refreshToken, refreshTokenClaims.UserId); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

func (uc Controller) SignOut(c *web.Context) error {
	var data struct {
		RefreshToken string `json:"refresh_token" form:"refresh_token"`
	}

	if err := c.BindFunc(&data, "RefreshToken"); err != nil {
		return c.RespondError(err)
	}

	if err := uc.redisDB.Del(c.Ctx, refreshKeyPrefix+data.RefreshToken).Err(); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// Me resolves the current identity. An absent or invalid token is not an
// error here: the caller gets user=null and decides what to render.
func (uc Controller) Me(c *web.Context) error {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		return c.Respond(map[string]interface{}{"user": nil}, http.StatusOK)
	}

	claims, err := uc.tokenAuth.ValidateToken(token)
	if err != nil || claims.Type != "access" {
		return c.Respond(map[string]interface{}{"user": nil}, http.StatusOK)
	}

	detail, err := uc.user.GetById(c.Ctx, claims.UserId)
	if err != nil {
		return c.Respond(map[string]interface{}{"user": nil}, http.StatusOK)
	}

	return c.Respond(map[string]interface{}{
		"user": map[string]interface{}{
			"id":         detail.ID,
			"username":   detail.Username,
			"email":      detail.Email,
			"role":       detail.Role,
			"isActive":   detail.IsActive,
			"teamLeadId": detail.TeamLeadID,
		},
	}, http.StatusOK)
}

func (uc Controller) storeRefreshToken(c *web.Context, refreshToken string, userID int) error {
	return uc.redisDB.Set(c.Ctx, refreshKeyPrefix+refreshToken, strconv.Itoa(userID), commands.RefreshTokenTTL).Err()
}
