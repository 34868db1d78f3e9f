package handlers

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"anonfeed/pkg/identity"
	"anonfeed/pkg/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/argon2"
)

const (
	sessionTTL = 30 * 24 * time.Hour
	maxBioLen  = 160
)

type IdentityHandler struct {
	Sm     session.SessionManager
	Repo   IdentitiesRepo
	Logger *zap.SugaredLogger

	AdminID       string
	AdminPassHash []byte
}

type IdentitiesRepo interface {
	GetByID(id string) (*identity.Identity, error)
	Add(ident *identity.Identity) error
	UpdateBio(id, bio string) error
}

type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

type AdminAuthReq struct {
	ID       *string `json:"id"`
	Password *string `json:"password"`
}

type BioReq struct {
	Bio *string `json:"bio"`
}

func (r *AdminAuthReq) validate() []*CustomError {
	id := &Validator{value: r.ID, location: "body", field: "id"}
	idErr := func() *CustomError {
		err := id.Required()
		if err != nil {
			return err
		}
		return id.Empty()
	}()

	pwd := &Validator{value: r.Password, location: "body", field: "password"}
	pwdErr := func() *CustomError {
		err := pwd.Required()
		if err != nil {
			return err
		}
		return pwd.Empty()
	}()

	return mergeErrors(idErr, pwdErr)
}

func (r *BioReq) validate() []*CustomError {
	bio := &Validator{value: r.Bio, location: "body", field: "bio"}
	bioErr := func() *CustomError {
		err := bio.Required()
		if err != nil {
			return err
		}
		return bio.MaxLength(maxBioLen)
	}()

	return mergeErrors(bioErr)
}

// Login issues a brand new anonymous identity every time, there is nothing
// to prove and no password to check.
func (u *IdentityHandler) Login(w http.ResponseWriter, r *http.Request) {
	ident := &identity.Identity{ID: identity.NewAnonID()}

	err := u.Repo.Add(ident)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	u.writeAuthResponse(w, r, ident.ID, false, http.StatusCreated)
}

func (u *IdentityHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var authReq AdminAuthReq
	err = json.Unmarshal(body, &authReq)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := authReq.validate()
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	if *authReq.ID != u.AdminID || !checkPass(u.AdminPassHash, *authReq.Password) {
		WriteResponse(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	u.writeAuthResponse(w, r, u.AdminID, true, http.StatusOK)
}

func (u *IdentityHandler) Logout(w http.ResponseWriter, r *http.Request) {
	err := u.Sm.Destroy(r.Context(), r)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteResponse(w, "logged out", http.StatusOK)
}

func (u *IdentityHandler) UpdateBio(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var bioReq BioReq
	err = json.Unmarshal(body, &bioReq)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := bioReq.validate()
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = u.Repo.UpdateBio(sess.UserID, *bioReq.Bio)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteResponse(w, "bio updated", http.StatusOK)
}

func HashPass(salt []byte, plainPassword string) []byte {
	hashedPass := argon2.IDKey([]byte(plainPassword), []byte(salt), 1, 64*1024, 4, 32)
	return append(salt, hashedPass...)
}

func checkPass(passHash []byte, plainPassword string) bool {
	if len(passHash) < 8 {
		return false
	}

	salt := passHash[0:8]
	newSalt := make([]byte, len(salt))
	copy(newSalt, salt)
	usersPassHash := HashPass(newSalt, plainPassword)
	return bytes.Equal(usersPassHash, passHash)
}

// NewPassHash is used at startup to derive the admin credential from config.
func NewPassHash(plainPassword string) []byte {
	salt := make([]byte, 8)
	rand.Read(salt)
	return HashPass(salt, plainPassword)
}

func (u *IdentityHandler) writeAuthResponse(w http.ResponseWriter, r *http.Request, userID string, admin bool, status int) {
	sessID := uuid.New().String()
	expiresAt := time.Now().Add(sessionTTL).Unix()
	token, err := u.Sm.Create(r.Context(), userID, admin, sessID, expiresAt)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := &AuthResponse{Token: token, UserID: userID}
	respBytes, err := json.Marshal(resp)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(respBytes)
}
