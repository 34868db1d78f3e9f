package posts

import (
	"time"
)

type VoteKind string

const (
	VoteNone VoteKind = "none"
	Upvote   VoteKind = "upvote"
	Downvote VoteKind = "downvote"
)

type ReactionKind string

const (
	ReactionNone ReactionKind = "none"
	Like         ReactionKind = "like"
	Love         ReactionKind = "love"
	Haha         ReactionKind = "haha"
	Wow          ReactionKind = "wow"
	Sad          ReactionKind = "sad"
	Angry        ReactionKind = "angry"
)

// ReactionKinds is the closed set of reactions a post can carry.
var ReactionKinds = []ReactionKind{Like, Love, Haha, Wow, Sad, Angry}

func ValidReaction(kind ReactionKind) bool {
	for _, k := range ReactionKinds {
		if k == kind {
			return true
		}
	}

	return false
}

type Post struct {
	ID        string               `json:"id"`
	AuthorID  string               `json:"userId"`
	Content   string               `json:"content"`
	CreatedAt time.Time            `json:"createdAt"`
	Upvotes   int                  `json:"upvotes"`
	Downvotes int                  `json:"downvotes"`
	Reactions map[ReactionKind]int `json:"reactions"`
}

func (p *Post) clone() *Post {
	c := *p
	c.Reactions = make(map[ReactionKind]int, len(p.Reactions))
	for k, v := range p.Reactions {
		c.Reactions[k] = v
	}

	return &c
}

func newReactions() map[ReactionKind]int {
	reactions := make(map[ReactionKind]int, len(ReactionKinds))
	for _, k := range ReactionKinds {
		reactions[k] = 0
	}

	return reactions
}

// LedgerEntry is one user's current selections for one post, at most one per
// axis. A cleared selection is stored explicitly as "none".
type LedgerEntry struct {
	Vote     VoteKind     `json:"vote"`
	Reaction ReactionKind `json:"reaction"`
}

func newLedgerEntry() *LedgerEntry {
	return &LedgerEntry{Vote: VoteNone, Reaction: ReactionNone}
}

func (e *LedgerEntry) empty() bool {
	return e.Vote == VoteNone && e.Reaction == ReactionNone
}
