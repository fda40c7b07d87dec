package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const CtxUsuarioID ctxKey = "usuarioID"

// MiddlewareAutenticacao valida o Bearer token e injeta o id do usuário no contexto.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUsuarioID, claims.UsuarioID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UsuarioIDDoContexto extrai o id do usuário autenticado.
func UsuarioIDDoContexto(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxUsuarioID).(string)
	return id, ok && id != ""
}
