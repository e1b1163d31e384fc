// Package middleware - autenticação das rotas protegidas.
//
// O middleware valida o JWT, carrega a conta e monta a Session imutável da
// requisição em c.Locals. Sessões recentes ficam em cache por alguns minutos
// para não bater no banco a cada request.
package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"

	authmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/models"
	authsvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/service"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/global"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/utility"
)

// sessionLocalKey é a chave da Session no contexto da requisição
const sessionLocalKey = "session"

// AuthManager valida tokens e resolve a Session da requisição
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager retorna a instância única do AuthManager
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

func newAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &AuthManager{
		UserCRUD: userService,
		Cache:    utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// resolveSession valida o token e devolve a Session correspondente
func (am *AuthManager) resolveSession(ctx context.Context, token string) (*authmodels.Session, error) {
	if cached, ok := am.Cache.Get("session:" + token); ok {
		if sess, ok := cached.(*authmodels.Session); ok {
			return sess, nil
		}
	}

	claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token)
	if err != nil {
		return nil, err
	}

	userID := utility.String2ObjectID(claims.UserID)
	if userID.IsZero() {
		return nil, common.ErrTokenInvalid
	}

	user, err := am.UserCRUD.FindOneById(ctx, userID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}
	if user.Status == authmodels.StatusDeleted {
		return nil, common.ErrTokenInvalid
	}

	// Fotografia imutável da conta no momento da autenticação
	sess := &authmodels.Session{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role,
		Name:        user.Name,
		CompanyName: user.CompanyName,
	}
	am.Cache.Set("session:"+token, sess)
	return sess, nil
}

// Authenticate protege a rota: exige Bearer token válido e injeta a Session
func (am *AuthManager) Authenticate() fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}
		token := strings.TrimPrefix(header, "Bearer ")

		sess, err := am.resolveSession(c.Context(), token)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		c.Locals(sessionLocalKey, sess)
		return c.Next()
	}
}

// GetSession lê a Session montada pelo Authenticate; nil fora de rota protegida
func GetSession(c fiber.Ctx) *authmodels.Session {
	sess, _ := c.Locals(sessionLocalKey).(*authmodels.Session)
	return sess
}

// InvalidateToken remove a sessão em cache (logout)
func (am *AuthManager) InvalidateToken(token string) {
	am.Cache.Delete("session:" + token)
}
