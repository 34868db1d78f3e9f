package posts

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"anonfeed/pkg/ratelimit"
	"anonfeed/pkg/storage"

	"github.com/google/uuid"
)

const postsKey = "posts"

// Store owns the canonical post list and the per-user interaction ledger.
// One instance is shared by every caller in the process; all mutations are
// serialized by a single mutex, so no partial effect of one operation is
// ever observable by another.
type Store struct {
	mu      *sync.Mutex
	kv      storage.KV
	limiter *ratelimit.Limiter

	posts   []*Post
	subs    map[int]func()
	nextSub int
}

// NewStore loads the persisted list, seeding the feed when the record is
// absent or unreadable.
func NewStore(ctx context.Context, kv storage.KV, limiter *ratelimit.Limiter) (*Store, error) {
	s := &Store{
		mu:      &sync.Mutex{},
		kv:      kv,
		limiter: limiter,
		subs:    make(map[int]func()),
	}

	raw, err := kv.Get(ctx, postsKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if err == nil {
		err = json.Unmarshal([]byte(raw), &s.posts)
	}

	if err != nil {
		s.posts = seedPosts(time.Now().UTC())
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// GetAll returns the feed newest-first. Every element is a copy; mutating it
// has no effect on the store.
func (s *Store) GetAll() []*Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*Post, 0, len(s.posts))
	for _, p := range s.posts {
		result = append(result, p.clone())
	}

	return result
}

// Add validates content, consults the rate limiter and prepends a fresh
// post. An empty authorID is an unauthenticated caller and the call is a
// no-op returning (nil, nil).
func (s *Store) Add(ctx context.Context, authorID, content string) (*Post, error) {
	if authorID == "" {
		return nil, nil
	}

	if err := validateContent(content); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// UTC keeps timestamps stable across a marshal round trip
	now := time.Now().UTC()
	if err := s.limiter.CheckAndRecord(ctx, authorID, now); err != nil {
		return nil, err
	}

	post := &Post{
		ID:        uuid.New().String(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now,
		Reactions: newReactions(),
	}

	s.posts = append([]*Post{post}, s.posts...)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.notify()
	return post.clone(), nil
}

// Delete removes the post with the given id. A missing id is a no-op, so the
// call is idempotent.
func (s *Store) Delete(ctx context.Context, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]*Post, 0, len(s.posts))
	for _, p := range s.posts {
		if p.ID != postID {
			kept = append(kept, p)
		}
	}
	s.posts = kept

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.notify()
	return nil
}

// Vote applies the caller's selection on the vote axis:
// same selection clears it, a different one switches, none adds.
// Unknown post ids and unauthenticated callers are no-ops.
func (s *Store) Vote(ctx context.Context, userID, postID string, kind VoteKind) (*Post, error) {
	if userID == "" || (kind != Upvote && kind != Downvote) {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.find(postID)
	if idx < 0 {
		return nil, nil
	}

	entry, err := s.ledgerEntry(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	post := s.posts[idx].clone()

	switch {
	case entry.Vote == kind:
		if kind == Upvote {
			post.Upvotes = dec(post.Upvotes)
		} else {
			post.Downvotes = dec(post.Downvotes)
		}
		entry.Vote = VoteNone
	case entry.Vote != VoteNone:
		if kind == Upvote {
			post.Upvotes++
			post.Downvotes = dec(post.Downvotes)
		} else {
			post.Downvotes++
			post.Upvotes = dec(post.Upvotes)
		}
		entry.Vote = kind
	default:
		if kind == Upvote {
			post.Upvotes++
		} else {
			post.Downvotes++
		}
		entry.Vote = kind
	}

	return s.commit(ctx, idx, post, userID, entry)
}

// React is Vote over the six-way reaction axis.
func (s *Store) React(ctx context.Context, userID, postID string, kind ReactionKind) (*Post, error) {
	if userID == "" || !ValidReaction(kind) {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.find(postID)
	if idx < 0 {
		return nil, nil
	}

	entry, err := s.ledgerEntry(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	post := s.posts[idx].clone()

	switch {
	case entry.Reaction == kind:
		post.Reactions[kind] = dec(post.Reactions[kind])
		entry.Reaction = ReactionNone
	case entry.Reaction != ReactionNone:
		post.Reactions[entry.Reaction] = dec(post.Reactions[entry.Reaction])
		post.Reactions[kind]++
		entry.Reaction = kind
	default:
		post.Reactions[kind]++
		entry.Reaction = kind
	}

	return s.commit(ctx, idx, post, userID, entry)
}

// UserState reports the caller's current vote and reaction for one post.
func (s *Store) UserState(ctx context.Context, userID, postID string) (*LedgerEntry, error) {
	if userID == "" {
		return newLedgerEntry(), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledgerEntry(ctx, userID, postID)
}

// CooldownRemaining is the display-only posting countdown for the user.
func (s *Store) CooldownRemaining(ctx context.Context, userID string, now time.Time) (int, error) {
	if userID == "" {
		return 0, nil
	}

	return s.limiter.Remaining(ctx, userID, now)
}

// Subscribe registers fn to run after every successful mutation and returns
// the matching unsubscribe. Callbacks run synchronously while the store is
// locked and must not call back into the store.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) commit(ctx context.Context, idx int, post *Post, userID string, entry *LedgerEntry) (*Post, error) {
	if err := s.saveLedger(ctx, userID, post.ID, entry); err != nil {
		return nil, err
	}

	s.posts[idx] = post

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.notify()
	return post.clone(), nil
}

func (s *Store) find(postID string) int {
	for i, p := range s.posts {
		if p.ID == postID {
			return i
		}
	}

	return -1
}

func (s *Store) ledgerEntry(ctx context.Context, userID, postID string) (*LedgerEntry, error) {
	raw, err := s.kv.Get(ctx, ledgerKey(userID, postID))
	if errors.Is(err, storage.ErrNotFound) {
		return newLedgerEntry(), nil
	}
	if err != nil {
		return nil, err
	}

	entry := newLedgerEntry()
	if err := json.Unmarshal([]byte(raw), entry); err != nil {
		// unreadable record, treat as no interaction yet
		return newLedgerEntry(), nil
	}

	return entry, nil
}

func (s *Store) saveLedger(ctx context.Context, userID, postID string, entry *LedgerEntry) error {
	key := ledgerKey(userID, postID)
	if entry.empty() {
		return s.kv.Remove(ctx, key)
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return s.kv.Set(ctx, key, string(raw))
}

func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.posts)
	if err != nil {
		return err
	}

	return s.kv.Set(ctx, postsKey, string(raw))
}

func (s *Store) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

func ledgerKey(userID, postID string) string {
	return "ledger:" + userID + ":" + postID
}

func dec(n int) int {
	if n <= 0 {
		return 0
	}

	return n - 1
}
