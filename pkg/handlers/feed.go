package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"anonfeed/pkg/posts"
	"anonfeed/pkg/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type FeedHandler struct {
	Store  FeedStore
	Logger *zap.SugaredLogger
}

type FeedStore interface {
	GetAll() []*posts.Post
	Add(ctx context.Context, authorID, content string) (*posts.Post, error)
	Delete(ctx context.Context, postID string) error
	Vote(ctx context.Context, userID, postID string, kind posts.VoteKind) (*posts.Post, error)
	React(ctx context.Context, userID, postID string, kind posts.ReactionKind) (*posts.Post, error)
	UserState(ctx context.Context, userID, postID string) (*posts.LedgerEntry, error)
	CooldownRemaining(ctx context.Context, userID string, now time.Time) (int, error)
	Subscribe(fn func()) func()
}

type PostResponse struct {
	ID        string                     `json:"id"`
	AuthorID  string                     `json:"userId"`
	Content   string                     `json:"content"`
	CreatedAt time.Time                  `json:"createdAt"`
	Upvotes   int                        `json:"upvotes"`
	Downvotes int                        `json:"downvotes"`
	Score     int                        `json:"score"`
	Reactions map[posts.ReactionKind]int `json:"reactions"`
}

type CreatePostReq struct {
	Content *string `json:"content"`
}

type CooldownResponse struct {
	Remaining int `json:"remaining"`
}

func (p *CreatePostReq) validate() []*CustomError {
	content := &Validator{value: p.Content, location: "body", field: "content"}
	contentErr := func() *CustomError {
		err := content.Required()
		if err != nil {
			return err
		}
		err = content.Empty()
		if err != nil {
			return err
		}
		return content.MaxLength(posts.MaxContentLength)
	}()

	return mergeErrors(contentErr)
}

func MapToPostResponse(post *posts.Post) *PostResponse {
	return &PostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		Upvotes:   post.Upvotes,
		Downvotes: post.Downvotes,
		Score:     post.Upvotes - post.Downvotes,
		Reactions: post.Reactions,
	}
}

func (h *FeedHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	feed := h.Store.GetAll()

	result := make([]*PostResponse, 0, len(feed))
	for _, p := range feed {
		result = append(result, MapToPostResponse(p))
	}

	postsBytes, err := json.Marshal(result)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(postsBytes)
}

func (h *FeedHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CreatePostReq
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := req.validate()
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	post, err := h.Store.Add(r.Context(), sess.UserID, *req.Content)
	if err != nil {
		writeStoreError(w, h.Logger, err)
		return
	}

	if post == nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	respBytes, err := json.Marshal(MapToPostResponse(post))
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write(respBytes)
}

// Delete is admin tooling: removing an already removed post still reports
// success.
func (h *FeedHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !sess.Admin {
		WriteResponse(w, "forbidden", http.StatusForbidden)
		return
	}

	err = h.Store.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, h.Logger, err)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}

func (h *FeedHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, posts.Upvote)
}

func (h *FeedHandler) Downvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, posts.Downvote)
}

func (h *FeedHandler) React(w http.ResponseWriter, r *http.Request) {
	kind := posts.ReactionKind(mux.Vars(r)["kind"])
	if !posts.ValidReaction(kind) {
		WriteResponse(w, "unknown reaction", http.StatusBadRequest)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	post, err := h.Store.React(r.Context(), sess.UserID, mux.Vars(r)["post_id"], kind)
	if err != nil {
		writeStoreError(w, h.Logger, err)
		return
	}

	h.writePost(w, post)
}

func (h *FeedHandler) UserState(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	entry, err := h.Store.UserState(r.Context(), sess.UserID, mux.Vars(r)["post_id"])
	if err != nil {
		writeStoreError(w, h.Logger, err)
		return
	}

	entryBytes, err := json.Marshal(entry)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(entryBytes)
}

func (h *FeedHandler) Cooldown(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	remaining, err := h.Store.CooldownRemaining(r.Context(), sess.UserID, time.Now())
	if err != nil {
		writeStoreError(w, h.Logger, err)
		return
	}

	respBytes, err := json.Marshal(&CooldownResponse{Remaining: remaining})
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(respBytes)
}

func (h *FeedHandler) vote(w http.ResponseWriter, r *http.Request, kind posts.VoteKind) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	post, err := h.Store.Vote(r.Context(), sess.UserID, mux.Vars(r)["post_id"], kind)
	if err != nil {
		writeStoreError(w, h.Logger, err)
		return
	}

	h.writePost(w, post)
}

func (h *FeedHandler) writePost(w http.ResponseWriter, post *posts.Post) {
	if post == nil {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}

	respBytes, err := json.Marshal(MapToPostResponse(post))
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(respBytes)
}
