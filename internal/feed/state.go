package feed

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"marketbrief/internal/core"
)

// The collections below are owned by the caller. Every helper is a pure
// value-in/value-out transform; the caller sequences mutations.

// ToggleBookmark adds the article id to the bookmark list, or removes it if
// already present.
func ToggleBookmark(bookmarks []string, articleID string) []string {
	for i, id := range bookmarks {
		if id == articleID {
			return append(append([]string{}, bookmarks[:i]...), bookmarks[i+1:]...)
		}
	}
	return append(append([]string{}, bookmarks...), articleID)
}

// IsBookmarked reports whether the article id is in the bookmark list.
func IsBookmarked(bookmarks []string, articleID string) bool {
	for _, id := range bookmarks {
		if id == articleID {
			return true
		}
	}
	return false
}

// MarkRead appends the article id to the read history once; marking an
// already-read article is a no-op.
func MarkRead(history []string, articleID string) []string {
	for _, id := range history {
		if id == articleID {
			return history
		}
	}
	return append(append([]string{}, history...), articleID)
}

// AddComment appends a new comment to the article's thread and returns the
// updated comment map. The author is an anonymous pseudonym, matching the
// app's no-auth model.
func AddComment(comments map[string][]core.Comment, articleID, text string) map[string][]core.Comment {
	updated := make(map[string][]core.Comment, len(comments)+1)
	for id, thread := range comments {
		updated[id] = thread
	}

	updated[articleID] = append(append([]core.Comment{}, comments[articleID]...), core.Comment{
		ID:        uuid.NewString(),
		User:      fmt.Sprintf("User%d", rand.Intn(1000)),
		Text:      text,
		TimeLabel: "Just now",
		Likes:     0,
	})
	return updated
}

// LikeComment increments the like count of one comment in the article's
// thread and returns the updated comment map.
func LikeComment(comments map[string][]core.Comment, articleID, commentID string) map[string][]core.Comment {
	updated := make(map[string][]core.Comment, len(comments))
	for id, thread := range comments {
		if id != articleID {
			updated[id] = thread
			continue
		}
		liked := make([]core.Comment, len(thread))
		for i, comment := range thread {
			if comment.ID == commentID {
				comment.Likes++
			}
			liked[i] = comment
		}
		updated[id] = liked
	}
	return updated
}
