package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers"
)

// AdminCookieName имя сессионной куки администратора
const AdminCookieName = "salas_admin"

const msgAdminRequired = "se requiere acceso administrativo"

// AdminGate пропускает запрос только при валидной административной сессии.
// Пустой adminCode означает, что административный доступ выключен целиком.
func AdminGate(adminCode string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminCode == "" {
				handlers.RespondUnauthorized(w, msgAdminRequired)
				return
			}

			cookie, err := r.Cookie(AdminCookieName)
			if err != nil || subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(adminCode)) != 1 {
				handlers.RespondUnauthorized(w, msgAdminRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
