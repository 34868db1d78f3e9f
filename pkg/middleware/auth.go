package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"anonfeed/pkg/session"

	"go.uber.org/zap"
)

var authRoutes = map[string]string{
	"/api/posts":    http.MethodPost,
	"/api/logout":   http.MethodPost,
	"/api/me/bio":   http.MethodPut,
	"/api/cooldown": http.MethodGet,
}

func needsAuth(r *http.Request) bool {
	if m, ok := authRoutes[r.URL.Path]; ok && m == r.Method {
		return true
	}

	if strings.HasPrefix(r.URL.Path, "/api/post/") {
		if r.Method == http.MethodDelete {
			return true
		}
		if strings.HasSuffix(r.URL.Path, "vote") ||
			strings.HasSuffix(r.URL.Path, "/me") ||
			strings.Contains(r.URL.Path, "/react/") {
			return true
		}
	}

	return false
}

func Auth(logger *zap.SugaredLogger, sm session.SessionManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !needsAuth(r) {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		sess, err := sm.Check(ctx, r)
		if err != nil {
			logger.Error(err.Error())
			w.Header().Set("Content-type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			errorBody, _ := json.Marshal(map[string]string{"message": "unauthorized"})
			w.Write(errorBody)

			return
		}

		ctx = context.WithValue(r.Context(), session.SessionKey, sess)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
