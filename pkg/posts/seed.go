package posts

import (
	"time"
)

// seedPosts is the feed shown before anyone has posted, and the fallback
// when the persisted list cannot be read. Newest first, like the live list.
func seedPosts(now time.Time) []*Post {
	return []*Post{
		{
			ID:        "3",
			AuthorID:  "anon789",
			Content:   "Is anyone else concerned about the state of privacy online? Even with anonymity, how secure are we really?",
			CreatedAt: now.Add(-10 * time.Minute),
			Upvotes:   4,
			Downvotes: 0,
			Reactions: map[ReactionKind]int{Like: 1, Love: 0, Haha: 0, Wow: 2, Sad: 1, Angry: 0},
		},
		{
			ID:        "2",
			AuthorID:  "anon456",
			Content:   "Freedom of expression without judgment. Finally a place where thoughts matter more than identity.",
			CreatedAt: now.Add(-30 * time.Minute),
			Upvotes:   8,
			Downvotes: 1,
			Reactions: map[ReactionKind]int{Like: 2, Love: 4, Haha: 0, Wow: 0, Sad: 0, Angry: 0},
		},
		{
			ID:        "1",
			AuthorID:  "anon123",
			Content:   "Just discovered this platform. Love the anonymity!",
			CreatedAt: now.Add(-2 * time.Hour),
			Upvotes:   15,
			Downvotes: 2,
			Reactions: map[ReactionKind]int{Like: 5, Love: 3, Haha: 0, Wow: 1, Sad: 0, Angry: 0},
		},
	}
}
