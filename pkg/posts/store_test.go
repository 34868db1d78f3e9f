package posts

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"anonfeed/pkg/ratelimit"
	"anonfeed/pkg/storage"
)

const testUser = "anon42"

func newTestStore(t *testing.T) (*Store, *storage.MemoryKV) {
	kv := storage.NewMemoryKV()
	store, err := NewStore(context.Background(), kv, ratelimit.New(kv, time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	return store, kv
}

func addTestPost(t *testing.T, store *Store, content string) *Post {
	post, err := store.Add(context.Background(), testUser, content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if post == nil {
		t.Fatal("expected a post but was nil")
	}

	// outwait the 1ms test cooldown
	time.Sleep(2 * time.Millisecond)
	return post
}

func TestSeedOnEmptyStorage(t *testing.T) {
	store, _ := newTestStore(t)

	feed := store.GetAll()
	if len(feed) != 3 {
		t.Fatalf("expected 3 seed posts but was %d", len(feed))
	}

	if feed[0].ID != "3" || feed[1].ID != "2" || feed[2].ID != "1" {
		t.Errorf("seed posts out of order: %v, %v, %v", feed[0].ID, feed[1].ID, feed[2].ID)
	}
}

func TestSeedOnCorruptedStorage(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	kv.Set(ctx, "posts", "{not json")

	store, err := NewStore(ctx, kv, ratelimit.New(kv, time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if len(store.GetAll()) != 3 {
		t.Fatal("expected reseeded feed after corrupted payload")
	}

	raw, err := kv.Get(ctx, "posts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	var persisted []*Post
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("reseeded payload not readable: %v", err.Error())
	}
}

func TestAddPrependsAndPersists(t *testing.T) {
	store, kv := newTestStore(t)

	first := addTestPost(t, store, "first post")
	second := addTestPost(t, store, "second post")

	feed := store.GetAll()
	if len(feed) != 5 {
		t.Fatalf("expected 5 posts but was %d", len(feed))
	}

	if feed[0].ID != second.ID || feed[1].ID != first.ID {
		t.Error("expected newest post at the head of the feed")
	}

	reloaded, err := NewStore(context.Background(), kv, ratelimit.New(kv, time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if !reflect.DeepEqual(store.GetAll(), reloaded.GetAll()) {
		t.Error("reloaded feed differs from the live one")
	}
}

func TestAddValidation(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "Empty", content: "", wantErr: true},
		{name: "MaxLength", content: strings.Repeat("i", 280), wantErr: false},
		{name: "Oversized", content: strings.Repeat("i", 281), wantErr: true},
	}

	for _, c := range cases {
		post, err := store.Add(ctx, testUser, c.content)

		if c.wantErr {
			vErr, ok := err.(*ValidationError)
			if !ok {
				t.Errorf("%s: expected validation error but was %v", c.name, err)
			} else if vErr.Field != "content" {
				t.Errorf("%s: unexpected field %v", c.name, vErr.Field)
			}
			continue
		}

		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err.Error())
		}
		if post == nil {
			t.Errorf("%s: expected a post but was nil", c.name)
		}

		time.Sleep(2 * time.Millisecond)
	}
}

func TestAddUnauthenticated(t *testing.T) {
	store, _ := newTestStore(t)

	post, err := store.Add(context.Background(), "", "should not appear")
	if post != nil || err != nil {
		t.Fatalf("expected no-op but was %v, %v", post, err)
	}

	if len(store.GetAll()) != 3 {
		t.Error("unauthenticated add must not change the feed")
	}
}

func TestAddRateLimited(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	store, err := NewStore(ctx, kv, ratelimit.New(kv, ratelimit.DefaultCooldown))
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	_, err = store.Add(ctx, testUser, "first")
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	post, err := store.Add(ctx, testUser, "too soon")
	if post != nil {
		t.Fatal("expected rejected post")
	}

	rlErr, ok := err.(*ratelimit.Error)
	if !ok {
		t.Fatalf("expected rate limit error but was %v", err)
	}

	if rlErr.RetryAfterSeconds <= 0 || rlErr.RetryAfterSeconds > 69 {
		t.Errorf("retry after out of range: %d", rlErr.RetryAfterSeconds)
	}

	if len(store.GetAll()) != 4 {
		t.Error("rejected post must not change the feed")
	}
}

func TestDeleteIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	post := addTestPost(t, store, "to be removed")

	if err := store.Delete(ctx, post.ID); err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	after := store.GetAll()
	if len(after) != 3 {
		t.Fatalf("expected 3 posts but was %d", len(after))
	}

	if err := store.Delete(ctx, post.ID); err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if !reflect.DeepEqual(after, store.GetAll()) {
		t.Error("second delete must leave the feed unchanged")
	}

	// relative order of the rest is preserved
	if after[0].ID != "3" || after[1].ID != "2" || after[2].ID != "1" {
		t.Error("delete changed relative order of remaining posts")
	}
}

type voteStep struct {
	kind          VoteKind
	wantUpvotes   int
	wantDownvotes int
	wantLedger    VoteKind
}

func TestVoteExclusivity(t *testing.T) {
	cases := []struct {
		name  string
		steps []voteStep
	}{
		{
			name: "AddThenToggleOff",
			steps: []voteStep{
				{kind: Upvote, wantUpvotes: 1, wantDownvotes: 0, wantLedger: Upvote},
				{kind: Upvote, wantUpvotes: 0, wantDownvotes: 0, wantLedger: VoteNone},
			},
		},
		{
			name: "SwitchSides",
			steps: []voteStep{
				{kind: Upvote, wantUpvotes: 1, wantDownvotes: 0, wantLedger: Upvote},
				{kind: Downvote, wantUpvotes: 0, wantDownvotes: 1, wantLedger: Downvote},
				{kind: Upvote, wantUpvotes: 1, wantDownvotes: 0, wantLedger: Upvote},
			},
		},
		{
			name: "RapidDoubleToggle",
			steps: []voteStep{
				{kind: Downvote, wantUpvotes: 0, wantDownvotes: 1, wantLedger: Downvote},
				{kind: Downvote, wantUpvotes: 0, wantDownvotes: 0, wantLedger: VoteNone},
				{kind: Downvote, wantUpvotes: 0, wantDownvotes: 1, wantLedger: Downvote},
				{kind: Downvote, wantUpvotes: 0, wantDownvotes: 0, wantLedger: VoteNone},
			},
		},
	}

	for _, c := range cases {
		store, _ := newTestStore(t)
		ctx := context.Background()
		post := addTestPost(t, store, "vote target")

		for i, step := range c.steps {
			res, err := store.Vote(ctx, testUser, post.ID, step.kind)
			if err != nil {
				t.Fatalf("%s step %d: unexpected error: %v", c.name, i, err.Error())
			}
			if res == nil {
				t.Fatalf("%s step %d: expected a post but was nil", c.name, i)
			}

			if res.Upvotes != step.wantUpvotes || res.Downvotes != step.wantDownvotes {
				t.Errorf("%s step %d: expected %d/%d but was %d/%d",
					c.name, i, step.wantUpvotes, step.wantDownvotes, res.Upvotes, res.Downvotes)
			}

			entry, err := store.UserState(ctx, testUser, post.ID)
			if err != nil {
				t.Fatalf("%s step %d: unexpected error: %v", c.name, i, err.Error())
			}
			if entry.Vote != step.wantLedger {
				t.Errorf("%s step %d: expected ledger %v but was %v", c.name, i, step.wantLedger, entry.Vote)
			}
		}
	}
}

func TestVoteMissingPostOrUser(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	res, err := store.Vote(ctx, testUser, "no-such-post", Upvote)
	if res != nil || err != nil {
		t.Fatalf("expected no-op but was %v, %v", res, err)
	}

	res, err = store.Vote(ctx, "", "1", Upvote)
	if res != nil || err != nil {
		t.Fatalf("expected no-op but was %v, %v", res, err)
	}

	feed := store.GetAll()
	if feed[2].Upvotes != 15 {
		t.Error("no-op vote must not change counters")
	}
}

func TestVoteCountersNeverNegative(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	post := addTestPost(t, store, "clamp target")

	// a second voter clears a vote it never cast, then toggles off twice
	for i := 0; i < 3; i++ {
		res, err := store.Vote(ctx, "anon99", post.ID, Upvote)
		if err != nil {
			t.Fatalf("unexpected error: %v", err.Error())
		}

		if res.Upvotes < 0 || res.Downvotes < 0 {
			t.Fatalf("negative counter: %d/%d", res.Upvotes, res.Downvotes)
		}
	}
}

type reactStep struct {
	kind       ReactionKind
	want       map[ReactionKind]int
	wantLedger ReactionKind
}

func TestReactionExclusivity(t *testing.T) {
	steps := []reactStep{
		{kind: Love, want: map[ReactionKind]int{Love: 1}, wantLedger: Love},
		{kind: Haha, want: map[ReactionKind]int{Haha: 1}, wantLedger: Haha},
		{kind: Haha, want: map[ReactionKind]int{}, wantLedger: ReactionNone},
		{kind: Angry, want: map[ReactionKind]int{Angry: 1}, wantLedger: Angry},
	}

	store, _ := newTestStore(t)
	ctx := context.Background()
	post := addTestPost(t, store, "react target")

	for i, step := range steps {
		res, err := store.React(ctx, testUser, post.ID, step.kind)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err.Error())
		}

		total := 0
		for _, k := range ReactionKinds {
			if res.Reactions[k] < 0 {
				t.Fatalf("step %d: negative counter for %v", i, k)
			}
			total += res.Reactions[k]
			if res.Reactions[k] != step.want[k] {
				t.Errorf("step %d: expected %d %v but was %d", i, step.want[k], k, res.Reactions[k])
			}
		}

		if total > 1 {
			t.Errorf("step %d: one user holds %d reactions", i, total)
		}

		entry, err := store.UserState(ctx, testUser, post.ID)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err.Error())
		}
		if entry.Reaction != step.wantLedger {
			t.Errorf("step %d: expected ledger %v but was %v", i, step.wantLedger, entry.Reaction)
		}
	}
}

func TestReactUnknownKind(t *testing.T) {
	store, _ := newTestStore(t)

	res, err := store.React(context.Background(), testUser, "1", ReactionKind("meh"))
	if res != nil || err != nil {
		t.Fatalf("expected no-op but was %v, %v", res, err)
	}
}

func TestVoteAndReactionAxesIndependent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	post := addTestPost(t, store, "both axes")

	if _, err := store.Vote(ctx, testUser, post.ID, Upvote); err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if _, err := store.React(ctx, testUser, post.ID, Wow); err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	entry, err := store.UserState(ctx, testUser, post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	expected := &LedgerEntry{Vote: Upvote, Reaction: Wow}
	if !reflect.DeepEqual(entry, expected) {
		t.Errorf("expected %v but was %v", expected, entry)
	}

	// clearing the vote keeps the reaction
	if _, err := store.Vote(ctx, testUser, post.ID, Upvote); err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	entry, err = store.UserState(ctx, testUser, post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if entry.Vote != VoteNone || entry.Reaction != Wow {
		t.Errorf("expected none/wow but was %v/%v", entry.Vote, entry.Reaction)
	}
}

func TestRoundTripPersistence(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()

	post := addTestPost(t, store, "survives restarts")
	if _, err := store.Vote(ctx, testUser, post.ID, Upvote); err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if _, err := store.React(ctx, testUser, post.ID, Like); err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	before := store.GetAll()

	reloaded, err := NewStore(ctx, kv, ratelimit.New(kv, time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if !reflect.DeepEqual(before, reloaded.GetAll()) {
		t.Error("reloaded feed differs from the persisted one")
	}

	entry, err := reloaded.UserState(ctx, testUser, post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if entry.Vote != Upvote || entry.Reaction != Like {
		t.Errorf("ledger lost on reload: %v/%v", entry.Vote, entry.Reaction)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	store, _ := newTestStore(t)

	feed := store.GetAll()
	feed[0].Upvotes = 10000
	feed[0].Reactions[Like] = 10000

	again := store.GetAll()
	if again[0].Upvotes == 10000 || again[0].Reactions[Like] == 10000 {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestSubscribeNotify(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	notified := 0
	unsubscribe := store.Subscribe(func() { notified++ })

	post := addTestPost(t, store, "observable")
	if notified != 1 {
		t.Fatalf("expected 1 notification but was %d", notified)
	}

	if _, err := store.Vote(ctx, testUser, post.ID, Upvote); err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if _, err := store.React(ctx, testUser, post.ID, Sad); err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if err := store.Delete(ctx, post.ID); err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if notified != 4 {
		t.Fatalf("expected 4 notifications but was %d", notified)
	}

	unsubscribe()

	if _, err := store.Add(ctx, testUser, "after unsubscribe"); err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if notified != 4 {
		t.Errorf("expected no notification after unsubscribe but was %d", notified)
	}
}

func TestFailedMutationDoesNotNotify(t *testing.T) {
	store, _ := newTestStore(t)

	notified := 0
	store.Subscribe(func() { notified++ })

	if _, err := store.Add(context.Background(), testUser, ""); err == nil {
		t.Fatal("expected validation error")
	}

	if notified != 0 {
		t.Errorf("expected no notification for a failed mutation but was %d", notified)
	}
}
